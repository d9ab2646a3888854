package http

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/profile"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/settings"
	"github.com/cmlabs-hris/hris-admin-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/form"
)

// settingsRecordID names the company settings singleton in edit dialogs.
const settingsRecordID = "company"

type SettingsHandler interface {
	GetSession(w http.ResponseWriter, r *http.Request)
	SignOut(w http.ResponseWriter, r *http.Request)

	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	ListProfiles(w http.ResponseWriter, r *http.Request)

	GetCompanySettings(w http.ResponseWriter, r *http.Request)
	UpdateCompanySettings(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	authService     auth.AuthService
	profileService  profile.ProfileService
	settingsService settings.SettingsService
}

func NewSettingsHandler(authService auth.AuthService, profileService profile.ProfileService, settingsService settings.SettingsService) SettingsHandler {
	return &settingsHandlerImpl{
		authService:     authService,
		profileService:  profileService,
		settingsService: settingsService,
	}
}

// GetSession implements SettingsHandler
func (h *settingsHandlerImpl) GetSession(w http.ResponseWriter, r *http.Request) {
	result, err := h.authService.CurrentSession(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SignOut revokes the presented access token.
func (h *settingsHandlerImpl) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.SignOut(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Signed out successfully", nil)
}

// GetProfile implements SettingsHandler
func (h *settingsHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	result, err := h.profileService.GetCurrentProfile(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateProfile submits the profile settings form for the signed-in user.
func (h *settingsHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var draft profile.Draft
	if !decodeJSON(w, r, &draft) {
		return
	}

	update := func(ctx context.Context, _ string, d profile.Draft) (profile.Profile, error) {
		return h.profileService.UpdateCurrentProfile(ctx, d)
	}
	c := form.NewController(form.Binding[profile.Draft, profile.Profile]{
		Entity:   "profile",
		Empty:    func() profile.Draft { return profile.Draft{} },
		Validate: profile.Draft.Validate,
		Update:   update,
	})
	c.OpenEdit("me", draft)
	writeSubmit(w, r, c, http.StatusOK)
}

// ListProfiles implements SettingsHandler
func (h *settingsHandlerImpl) ListProfiles(w http.ResponseWriter, r *http.Request) {
	list(w, r, h.profileService.ListProfiles)
}

// GetCompanySettings implements SettingsHandler
func (h *settingsHandlerImpl) GetCompanySettings(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.GetSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateCompanySettings submits the company settings form.
func (h *settingsHandlerImpl) UpdateCompanySettings(w http.ResponseWriter, r *http.Request) {
	var draft settings.Draft
	if !decodeJSON(w, r, &draft) {
		return
	}

	c := form.NewController(form.Binding[settings.Draft, settings.CompanySettings]{
		Entity:   "company settings",
		Empty:    func() settings.Draft { return settings.Draft{} },
		Validate: settings.Draft.Validate,
		Update: func(ctx context.Context, _ string, d settings.Draft) (settings.CompanySettings, error) {
			return h.settingsService.UpdateSettings(ctx, d)
		},
	})
	c.OpenEdit(settingsRecordID, draft)
	writeSubmit(w, r, c, http.StatusOK)
}
