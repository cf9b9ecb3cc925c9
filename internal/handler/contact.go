package handler

import (
	"errors"
	"net/http"

	"github.com/sholaoke/churchbase/internal/models"
	"github.com/sholaoke/churchbase/internal/request"
	"github.com/sholaoke/churchbase/internal/response"
	"github.com/sholaoke/churchbase/internal/validator"
)

// HandleContactCreate is the public website form endpoint; everything else on
// contact submissions sits behind authentication.
func (h *RouteHandler) HandleContactCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}

	err := request.DecodeJSON(w, r, &input)
	if err != nil {
		h.ErrHandler.BadRequest(w, r, err)
		return
	}

	var v validator.Validator
	v.CheckField(validator.NotBlank(input.Name), "name", "Name is required")
	v.CheckField(validator.MaxRunes(input.Name, maxNameLength), "name", "Name is too long")
	v.CheckField(validator.NotBlank(input.Email), "email", "Email is required")
	v.CheckField(validator.IsEmail(input.Email), "email", "Must be a valid email address")
	v.CheckField(validator.MaxRunes(input.Subject, maxNameLength+100), "subject", "Subject is too long")
	v.CheckField(validator.NotBlank(input.Message), "message", "Message is required")
	v.CheckField(validator.MaxRunes(input.Message, maxTextLength), "message", "Message is too long")
	if v.HasErrors() {
		h.ErrHandler.FailedValidation(w, r, v.FieldErrors)
		return
	}

	submission := &models.ContactSubmission{
		Name:    input.Name,
		Email:   input.Email,
		Subject: optString(input.Subject),
		Message: input.Message,
	}

	created, err := h.DB.Contact().Insert(r.Context(), submission)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	if h.Config.Notifications.Email != "" {
		h.Helper.BackgroundTask(r, func() error {
			emailData := h.Helper.NewEmailData()
			emailData["Name"] = created.Name
			emailData["Email"] = created.Email
			if created.Subject != nil {
				emailData["Subject"] = *created.Subject
			}
			emailData["ContactMessage"] = created.Message

			return h.Mailer.Send(h.Config.Notifications.Email, emailData, "contact-notification.tmpl")
		})
	}

	err = response.JSONCreatedResponse(w, created, "Thank you for reaching out; we will get back to you shortly")
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

func (h *RouteHandler) HandleContactList(w http.ResponseWriter, r *http.Request) {
	filter := retrieveListFilter(r)

	status := r.URL.Query().Get("status")
	if status != "" && status != models.ContactStatusUnread && status != models.ContactStatusRead {
		h.ErrHandler.BadRequest(w, r, errors.New("status must be unread or read"))
		return
	}

	submissions, total, err := h.DB.Contact().List(r.Context(), filter, status)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	pagination := response.NewPagination(filter.Page, filter.Limit, total)
	err = response.JSONPaginatedResponse(w, submissions, pagination, "Contact submissions retrieved successfully")
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

func (h *RouteHandler) HandleContactGet(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(r)
	if !ok {
		h.ErrHandler.BadRequest(w, r, errors.New("invalid id parameter"))
		return
	}

	submission, found, err := h.DB.Contact().GetOne(r.Context(), id)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}
	if !found {
		h.ErrHandler.NotFoundEntity(w, r, "Contact submission", id)
		return
	}

	err = response.JSONOkResponse(w, submission, "Contact submission retrieved successfully", nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

func (h *RouteHandler) HandleContactMarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(r)
	if !ok {
		h.ErrHandler.BadRequest(w, r, errors.New("invalid id parameter"))
		return
	}

	_, found, err := h.DB.Contact().GetOne(r.Context(), id)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}
	if !found {
		h.ErrHandler.NotFoundEntity(w, r, "Contact submission", id)
		return
	}

	err = h.DB.Contact().MarkRead(r.Context(), id)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	submission, _, err := h.DB.Contact().GetOne(r.Context(), id)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	err = response.JSONOkResponse(w, submission, "Contact submission marked as read", nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

func (h *RouteHandler) HandleContactDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(r)
	if !ok {
		h.ErrHandler.BadRequest(w, r, errors.New("invalid id parameter"))
		return
	}

	_, found, err := h.DB.Contact().GetOne(r.Context(), id)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}
	if !found {
		h.ErrHandler.NotFoundEntity(w, r, "Contact submission", id)
		return
	}

	err = h.DB.Contact().Delete(r.Context(), id)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	err = response.JSONOkResponse(w, map[string]any{"id": id}, "Contact submission deleted successfully", nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}
