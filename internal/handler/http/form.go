package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/hris-admin-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/form"
	"github.com/go-chi/chi/v5"
)

// decodeJSON reads the request body into v, writing a 400 when it is not
// valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

func urlID(w http.ResponseWriter, r *http.Request, entity string) (string, bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, entity+" ID is required", nil)
		return "", false
	}
	return id, true
}

// submitAdd drives an add dialog with the posted draft.
func submitAdd[D, R any](w http.ResponseWriter, r *http.Request, binding form.Binding[D, R]) {
	draft := binding.Empty()
	if !decodeJSON(w, r, &draft) {
		return
	}

	c := form.NewController(binding)
	c.OpenAdd()
	c.Edit(func(d *D) { *d = draft })
	writeSubmit(w, r, c, http.StatusCreated)
}

// submitEdit drives an edit dialog for the record at {id} with the posted draft.
func submitEdit[D, R any](w http.ResponseWriter, r *http.Request, binding form.Binding[D, R]) {
	id, ok := urlID(w, r, form.Capitalize(binding.Entity))
	if !ok {
		return
	}
	draft := binding.Empty()
	if !decodeJSON(w, r, &draft) {
		return
	}

	c := form.NewController(binding)
	c.OpenEdit(id, draft)
	writeSubmit(w, r, c, http.StatusOK)
}

func writeSubmit[D, R any](w http.ResponseWriter, r *http.Request, c *form.Controller[D, R], status int) {
	result, err := c.Submit(r.Context())
	notice, _ := c.Notice()
	if err != nil {
		response.FormError(w, err, notice)
		return
	}
	response.FormSuccess(w, status, notice, result)
}

// deleteRecord runs a list-view delete for the record at {id}.
func deleteRecord(w http.ResponseWriter, r *http.Request, entity string, fn func(ctx context.Context, id string) error) {
	id, ok := urlID(w, r, form.Capitalize(entity))
	if !ok {
		return
	}

	notice, err := form.Delete(r.Context(), entity, id, fn)
	if err != nil {
		response.FormError(w, err, notice)
		return
	}
	response.FormSuccess(w, http.StatusOK, notice, nil)
}
