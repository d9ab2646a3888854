package http

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/hris-admin-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/form"
)

type RecruitmentHandler interface {
	ListApplicants(w http.ResponseWriter, r *http.Request)
	CreateApplicant(w http.ResponseWriter, r *http.Request)
	UpdateApplicant(w http.ResponseWriter, r *http.Request)
	DeleteApplicant(w http.ResponseWriter, r *http.Request)

	ListJobOffers(w http.ResponseWriter, r *http.Request)
	CreateJobOffer(w http.ResponseWriter, r *http.Request)
	UpdateJobOffer(w http.ResponseWriter, r *http.Request)
	DeleteJobOffer(w http.ResponseWriter, r *http.Request)

	ListOnboarding(w http.ResponseWriter, r *http.Request)
	CreateOnboarding(w http.ResponseWriter, r *http.Request)
	UpdateOnboarding(w http.ResponseWriter, r *http.Request)
	DeleteOnboarding(w http.ResponseWriter, r *http.Request)

	ListRegularizations(w http.ResponseWriter, r *http.Request)
	CreateRegularization(w http.ResponseWriter, r *http.Request)
	UpdateRegularization(w http.ResponseWriter, r *http.Request)
	DeleteRegularization(w http.ResponseWriter, r *http.Request)
}

type recruitmentHandlerImpl struct {
	svc recruitment.RecruitmentService
}

func NewRecruitmentHandler(svc recruitment.RecruitmentService) RecruitmentHandler {
	return &recruitmentHandlerImpl{svc: svc}
}

// addOnly binds an add-only dialog; these records are edited through PATCH.
func addOnly[D interface{ Validate() error }, R any](entity string, create func(context.Context, D) (R, error)) form.Binding[D, R] {
	return form.Binding[D, R]{
		Entity:   entity,
		Empty:    func() D { var d D; return d },
		Validate: func(d D) error { return d.Validate() },
		Create:   create,
	}
}

func list[T any](w http.ResponseWriter, r *http.Request, fn func(context.Context) ([]T, error)) {
	result, err := fn(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if result == nil {
		result = []T{}
	}
	response.SuccessWithMeta(w, result, &response.Meta{TotalItems: len(result), Matched: len(result)})
}

func patch[Req, R any](w http.ResponseWriter, r *http.Request, entity string, fn func(context.Context, string, Req) (R, error)) {
	id, ok := urlID(w, r, form.Capitalize(entity))
	if !ok {
		return
	}
	var req Req
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := fn(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, form.Capitalize(entity)+" updated successfully", result)
}

func (h *recruitmentHandlerImpl) ListApplicants(w http.ResponseWriter, r *http.Request) {
	list(w, r, h.svc.ListApplicants)
}

func (h *recruitmentHandlerImpl) CreateApplicant(w http.ResponseWriter, r *http.Request) {
	submitAdd(w, r, addOnly("applicant", h.svc.CreateApplicant))
}

func (h *recruitmentHandlerImpl) UpdateApplicant(w http.ResponseWriter, r *http.Request) {
	patch(w, r, "applicant", h.svc.UpdateApplicant)
}

func (h *recruitmentHandlerImpl) DeleteApplicant(w http.ResponseWriter, r *http.Request) {
	deleteRecord(w, r, "applicant", h.svc.DeleteApplicant)
}

func (h *recruitmentHandlerImpl) ListJobOffers(w http.ResponseWriter, r *http.Request) {
	list(w, r, h.svc.ListJobOffers)
}

func (h *recruitmentHandlerImpl) CreateJobOffer(w http.ResponseWriter, r *http.Request) {
	submitAdd(w, r, addOnly("job offer", h.svc.CreateJobOffer))
}

func (h *recruitmentHandlerImpl) UpdateJobOffer(w http.ResponseWriter, r *http.Request) {
	patch(w, r, "job offer", h.svc.UpdateJobOffer)
}

func (h *recruitmentHandlerImpl) DeleteJobOffer(w http.ResponseWriter, r *http.Request) {
	deleteRecord(w, r, "job offer", h.svc.DeleteJobOffer)
}

func (h *recruitmentHandlerImpl) ListOnboarding(w http.ResponseWriter, r *http.Request) {
	list(w, r, h.svc.ListOnboarding)
}

func (h *recruitmentHandlerImpl) CreateOnboarding(w http.ResponseWriter, r *http.Request) {
	submitAdd(w, r, addOnly("onboarding record", h.svc.CreateOnboarding))
}

func (h *recruitmentHandlerImpl) UpdateOnboarding(w http.ResponseWriter, r *http.Request) {
	patch(w, r, "onboarding record", h.svc.UpdateOnboarding)
}

func (h *recruitmentHandlerImpl) DeleteOnboarding(w http.ResponseWriter, r *http.Request) {
	deleteRecord(w, r, "onboarding record", h.svc.DeleteOnboarding)
}

func (h *recruitmentHandlerImpl) ListRegularizations(w http.ResponseWriter, r *http.Request) {
	list(w, r, h.svc.ListRegularizations)
}

func (h *recruitmentHandlerImpl) CreateRegularization(w http.ResponseWriter, r *http.Request) {
	submitAdd(w, r, addOnly("regularization", h.svc.CreateRegularization))
}

func (h *recruitmentHandlerImpl) UpdateRegularization(w http.ResponseWriter, r *http.Request) {
	patch(w, r, "regularization", h.svc.UpdateRegularization)
}

func (h *recruitmentHandlerImpl) DeleteRegularization(w http.ResponseWriter, r *http.Request) {
	deleteRecord(w, r, "regularization", h.svc.DeleteRegularization)
}
