package profile

import (
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/nullable"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
)

// Draft is the profile settings form.
type Draft struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

func DraftFromProfile(p Profile) Draft {
	return Draft{
		FirstName:  validator.StringOrEmpty(p.FirstName),
		LastName:   validator.StringOrEmpty(p.LastName),
		Department: validator.StringOrEmpty(p.Department),
		Position:   validator.StringOrEmpty(p.Position),
	}
}

func (d Draft) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("first_name", d.FirstName)
	errs.Required("last_name", d.LastName)

	return errs.Err()
}

// ToUpdate writes every settings column; blank department or position clears it.
func (d Draft) ToUpdate() UpdateProfileRequest {
	return UpdateProfileRequest{
		FirstName:  nullable.From(validator.OptionalString(d.FirstName)),
		LastName:   nullable.From(validator.OptionalString(d.LastName)),
		Department: nullable.From(validator.OptionalString(d.Department)),
		Position:   nullable.From(validator.OptionalString(d.Position)),
	}
}

type UpdateProfileRequest struct {
	FirstName  nullable.Field[string] `json:"first_name"`
	LastName   nullable.Field[string] `json:"last_name"`
	Department nullable.Field[string] `json:"department"`
	Position   nullable.Field[string] `json:"position"`
}
