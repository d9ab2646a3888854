package profile

import "time"

type Role string

const (
	RoleAdministrator Role = "administrator" // HR administrator - full access
	RoleManager       Role = "manager"       // Can approve leave and read reports
	RoleEmployee      Role = "employee"      // Regular employee
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// Profile is the identity record of a signed-in user.
type Profile struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	FirstName  *string    `json:"first_name"`
	LastName   *string    `json:"last_name"`
	Department *string    `json:"department"`
	Position   *string    `json:"position"`
	Role       Role       `json:"role"`
	HireDate   *time.Time `json:"hire_date"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// IsAdministrator checks if profile has full access
func (p *Profile) IsAdministrator() bool {
	return p.Role == RoleAdministrator
}

// CanApprove checks if profile can decide leave requests
func (p *Profile) CanApprove() bool {
	return p.Role == RoleAdministrator || p.Role == RoleManager
}

// DisplayName is "First Last", falling back to the email address.
func (p *Profile) DisplayName() string {
	first, last := "", ""
	if p.FirstName != nil {
		first = *p.FirstName
	}
	if p.LastName != nil {
		last = *p.LastName
	}
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	case last != "":
		return last
	}
	return p.Email
}
