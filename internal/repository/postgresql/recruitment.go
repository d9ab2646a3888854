package postgresql

import (
	"context"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// collect scans every row with dest, closing rows when done.
func collect[T any](rows pgx.Rows, op string, dest func(*T) []interface{}) ([]T, error) {
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var v T
		if err := rows.Scan(dest(&v)...); err != nil {
			return nil, apperror.Store(op, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Store(op, err)
	}
	return out, nil
}

func deleteByID(ctx context.Context, q database.Querier, table, id string, notFound error, op string) error {
	tag, err := q.Exec(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return execError(err, notFound, op)
	}
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}

// ========== APPLICANTS ==========

type applicantRepository struct {
	db *database.DB
}

func NewApplicantRepository(db *database.DB) recruitment.ApplicantRepository {
	return &applicantRepository{db: db}
}

const applicantColumns = `id, first_name, last_name, email, contact_number, position_applied,
	application_date, status, created_at, updated_at`

func applicantDest(a *recruitment.Applicant) []interface{} {
	return []interface{}{
		&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.ContactNumber, &a.PositionApplied,
		&a.ApplicationDate, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	}
}

func (r *applicantRepository) List(ctx context.Context) ([]recruitment.Applicant, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, "SELECT "+applicantColumns+" FROM applicants ORDER BY created_at DESC")
	if err != nil {
		return nil, apperror.Store("applicant.list", err)
	}
	return collect(rows, "applicant.list", applicantDest)
}

func (r *applicantRepository) Create(ctx context.Context, a recruitment.Applicant) (recruitment.Applicant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO applicants (first_name, last_name, email, contact_number, position_applied, application_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + applicantColumns

	var created recruitment.Applicant
	err := q.QueryRow(ctx, query,
		a.FirstName, a.LastName, a.Email, a.ContactNumber, a.PositionApplied, a.ApplicationDate, a.Status,
	).Scan(applicantDest(&created)...)
	if err != nil {
		return recruitment.Applicant{}, apperror.Store("applicant.create", err)
	}
	return created, nil
}

func (r *applicantRepository) Update(ctx context.Context, id string, req recruitment.UpdateApplicantRequest) (recruitment.Applicant, error) {
	q := GetQuerier(ctx, r.db)

	p := newPatch()
	setRequiredString(p, "first_name", req.FirstName)
	setRequiredString(p, "last_name", req.LastName)
	setRequiredString(p, "email", req.Email)
	setString(p, "contact_number", req.ContactNumber)
	setRequiredString(p, "position_applied", req.PositionApplied)
	setDate(p, "application_date", req.ApplicationDate)
	setRequiredString(p, "status", req.Status)

	query, args := p.update("applicants", id, applicantColumns)

	var updated recruitment.Applicant
	if err := q.QueryRow(ctx, query, args...).Scan(applicantDest(&updated)...); err != nil {
		return recruitment.Applicant{}, rowError(err, recruitment.ErrApplicantNotFound, "applicant.update")
	}
	return updated, nil
}

func (r *applicantRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, GetQuerier(ctx, r.db), "applicants", id, recruitment.ErrApplicantNotFound, "applicant.delete")
}

// ========== JOB OFFERS ==========

type jobOfferRepository struct {
	db *database.DB
}

func NewJobOfferRepository(db *database.DB) recruitment.JobOfferRepository {
	return &jobOfferRepository{db: db}
}

const jobOfferColumns = `id, applicant_id, position, salary_offered, offer_date, status, created_at, updated_at`

func jobOfferDest(o *recruitment.JobOffer) []interface{} {
	return []interface{}{
		&o.ID, &o.ApplicantID, &o.Position, &o.SalaryOffered, &o.OfferDate, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	}
}

func (r *jobOfferRepository) List(ctx context.Context) ([]recruitment.JobOffer, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, "SELECT "+jobOfferColumns+" FROM job_offers ORDER BY created_at DESC")
	if err != nil {
		return nil, apperror.Store("job_offer.list", err)
	}
	return collect(rows, "job_offer.list", jobOfferDest)
}

func (r *jobOfferRepository) Create(ctx context.Context, o recruitment.JobOffer) (recruitment.JobOffer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_offers (applicant_id, position, salary_offered, offer_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + jobOfferColumns

	var created recruitment.JobOffer
	err := q.QueryRow(ctx, query, o.ApplicantID, o.Position, o.SalaryOffered, o.OfferDate, o.Status).
		Scan(jobOfferDest(&created)...)
	if err != nil {
		return recruitment.JobOffer{}, apperror.Store("job_offer.create", err)
	}
	return created, nil
}

func (r *jobOfferRepository) Update(ctx context.Context, id string, req recruitment.UpdateJobOfferRequest) (recruitment.JobOffer, error) {
	q := GetQuerier(ctx, r.db)

	p := newPatch()
	setString(p, "applicant_id", req.ApplicantID)
	setRequiredString(p, "position", req.Position)
	setField(p, "salary_offered", req.SalaryOffered)
	setDate(p, "offer_date", req.OfferDate)
	setRequiredString(p, "status", req.Status)

	query, args := p.update("job_offers", id, jobOfferColumns)

	var updated recruitment.JobOffer
	if err := q.QueryRow(ctx, query, args...).Scan(jobOfferDest(&updated)...); err != nil {
		return recruitment.JobOffer{}, rowError(err, recruitment.ErrJobOfferNotFound, "job_offer.update")
	}
	return updated, nil
}

func (r *jobOfferRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, GetQuerier(ctx, r.db), "job_offers", id, recruitment.ErrJobOfferNotFound, "job_offer.delete")
}

// ========== ONBOARDING ==========

type onboardingRepository struct {
	db *database.DB
}

func NewOnboardingRepository(db *database.DB) recruitment.OnboardingRepository {
	return &onboardingRepository{db: db}
}

const onboardingColumns = `id, employee_id, start_date, completion_date, tasks_completed, total_tasks, status, created_at, updated_at`

func onboardingDest(o *recruitment.Onboarding) []interface{} {
	return []interface{}{
		&o.ID, &o.EmployeeID, &o.StartDate, &o.CompletionDate, &o.TasksCompleted, &o.TotalTasks,
		&o.Status, &o.CreatedAt, &o.UpdatedAt,
	}
}

func (r *onboardingRepository) List(ctx context.Context) ([]recruitment.Onboarding, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, "SELECT "+onboardingColumns+" FROM onboarding ORDER BY created_at DESC")
	if err != nil {
		return nil, apperror.Store("onboarding.list", err)
	}
	return collect(rows, "onboarding.list", onboardingDest)
}

func (r *onboardingRepository) Create(ctx context.Context, o recruitment.Onboarding) (recruitment.Onboarding, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO onboarding (employee_id, start_date, completion_date, tasks_completed, total_tasks, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + onboardingColumns

	var created recruitment.Onboarding
	err := q.QueryRow(ctx, query, o.EmployeeID, o.StartDate, o.CompletionDate, o.TasksCompleted, o.TotalTasks, o.Status).
		Scan(onboardingDest(&created)...)
	if err != nil {
		return recruitment.Onboarding{}, apperror.Store("onboarding.create", err)
	}
	return created, nil
}

func (r *onboardingRepository) Update(ctx context.Context, id string, req recruitment.UpdateOnboardingRequest) (recruitment.Onboarding, error) {
	q := GetQuerier(ctx, r.db)

	p := newPatch()
	setString(p, "employee_id", req.EmployeeID)
	setDate(p, "start_date", req.StartDate)
	setDate(p, "completion_date", req.CompletionDate)
	setField(p, "tasks_completed", req.TasksCompleted)
	setField(p, "total_tasks", req.TotalTasks)
	setRequiredString(p, "status", req.Status)

	query, args := p.update("onboarding", id, onboardingColumns)

	var updated recruitment.Onboarding
	if err := q.QueryRow(ctx, query, args...).Scan(onboardingDest(&updated)...); err != nil {
		return recruitment.Onboarding{}, rowError(err, recruitment.ErrOnboardingNotFound, "onboarding.update")
	}
	return updated, nil
}

func (r *onboardingRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, GetQuerier(ctx, r.db), "onboarding", id, recruitment.ErrOnboardingNotFound, "onboarding.delete")
}

// ========== REGULARIZATION ==========

type regularizationRepository struct {
	db *database.DB
}

func NewRegularizationRepository(db *database.DB) recruitment.RegularizationRepository {
	return &regularizationRepository{db: db}
}

const regularizationColumns = `id, employee_id, probation_start_date, probation_end_date, regularization_date,
	evaluation_score, status, created_at, updated_at`

func regularizationDest(g *recruitment.Regularization) []interface{} {
	return []interface{}{
		&g.ID, &g.EmployeeID, &g.ProbationStartDate, &g.ProbationEndDate, &g.RegularizationDate,
		&g.EvaluationScore, &g.Status, &g.CreatedAt, &g.UpdatedAt,
	}
}

func (r *regularizationRepository) List(ctx context.Context) ([]recruitment.Regularization, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, "SELECT "+regularizationColumns+" FROM regularization ORDER BY created_at DESC")
	if err != nil {
		return nil, apperror.Store("regularization.list", err)
	}
	return collect(rows, "regularization.list", regularizationDest)
}

func (r *regularizationRepository) Create(ctx context.Context, g recruitment.Regularization) (recruitment.Regularization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO regularization (
			employee_id, probation_start_date, probation_end_date, regularization_date, evaluation_score, status
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + regularizationColumns

	var created recruitment.Regularization
	err := q.QueryRow(ctx, query,
		g.EmployeeID, g.ProbationStartDate, g.ProbationEndDate, g.RegularizationDate, g.EvaluationScore, g.Status,
	).Scan(regularizationDest(&created)...)
	if err != nil {
		return recruitment.Regularization{}, apperror.Store("regularization.create", err)
	}
	return created, nil
}

func (r *regularizationRepository) Update(ctx context.Context, id string, req recruitment.UpdateRegularizationRequest) (recruitment.Regularization, error) {
	q := GetQuerier(ctx, r.db)

	p := newPatch()
	setString(p, "employee_id", req.EmployeeID)
	setDate(p, "probation_start_date", req.ProbationStartDate)
	setDate(p, "probation_end_date", req.ProbationEndDate)
	setDate(p, "regularization_date", req.RegularizationDate)
	setField(p, "evaluation_score", req.EvaluationScore)
	setRequiredString(p, "status", req.Status)

	query, args := p.update("regularization", id, regularizationColumns)

	var updated recruitment.Regularization
	if err := q.QueryRow(ctx, query, args...).Scan(regularizationDest(&updated)...); err != nil {
		return recruitment.Regularization{}, rowError(err, recruitment.ErrRegularizationNotFound, "regularization.update")
	}
	return updated, nil
}

func (r *regularizationRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, GetQuerier(ctx, r.db), "regularization", id, recruitment.ErrRegularizationNotFound, "regularization.delete")
}
