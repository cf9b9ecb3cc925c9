package errHandler

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/sholaoke/churchbase/internal/response"
	"github.com/sholaoke/churchbase/internal/smtp"
)

// Short error codes carried in the envelope's "error" field. Clients switch on
// these, so they are part of the API contract.
const (
	CodeBadRequest       = "bad_request"
	CodeValidationFailed = "validation_failed"
	CodeNotFound         = "not_found"
	CodeConflict         = "conflict"
	CodeInternalError    = "internal_error"
	CodeUnauthorized     = "unauthorized"
	CodeMethodNotAllowed = "method_not_allowed"
)

type ErrorHandler struct {
	notificationEmail string
	baseURL           string
	logger            *slog.Logger
	mailer            smtp.MailerInterface
}

func New(notificationEmail, baseURL string, mailer smtp.MailerInterface, logger *slog.Logger) *ErrorHandler {
	return &ErrorHandler{
		notificationEmail: notificationEmail,
		baseURL:           baseURL,
		logger:            logger,
		mailer:            mailer,
	}
}

func (e *ErrorHandler) ReportServerError(r *http.Request, err error) {
	var (
		message = err.Error()
		method  string
		url     string
		trace   = string(debug.Stack())
	)

	if r != nil {
		method = r.Method
		url = r.URL.String()
	}

	requestAttrs := slog.Group("request", "method", method, "url", url)
	e.logger.Error(message, requestAttrs, "trace", trace)

	if e.notificationEmail != "" {
		data := map[string]any{
			"BaseURL":       e.baseURL,
			"Message":       message,
			"RequestMethod": method,
			"RequestURL":    url,
			"Trace":         trace,
		}

		err := e.mailer.Send(e.notificationEmail, data, "error-notification.tmpl")
		if err != nil {
			trace = string(debug.Stack())
			e.logger.Error(err.Error(), requestAttrs, "trace", trace)
		}
	}
}

type Error struct {
	w       http.ResponseWriter
	r       *http.Request
	code    string
	details any
	status  int
	message string
	headers http.Header
}

func (e *ErrorHandler) ErrorMessage(d *Error) {
	if d.message != "" {
		d.message = strings.ToUpper(d.message[:1]) + d.message[1:]
	}

	err := response.JSONErrorResponse(d.w, d.code, d.message, d.details, d.status, d.headers)
	if err != nil {
		e.ReportServerError(d.r, err)
		d.w.WriteHeader(http.StatusInternalServerError)
	}
}

// ServerError reports the underlying cause server-side and returns an opaque
// envelope; raw storage or driver error text never reaches the client.
func (e *ErrorHandler) ServerError(w http.ResponseWriter, r *http.Request, err error) {
	e.ReportServerError(r, err)

	message := "The server encountered a problem and could not process your request"
	e.ErrorMessage(&Error{
		w:       w,
		r:       r,
		code:    CodeInternalError,
		status:  http.StatusInternalServerError,
		message: message,
	})
}

func (e *ErrorHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	e.ErrorMessage(&Error{
		w:       w,
		r:       r,
		code:    CodeNotFound,
		status:  http.StatusNotFound,
		message: "The requested resource could not be found",
	})
}

// NotFoundEntity names the entity and id so admins know exactly which record
// is missing.
func (e *ErrorHandler) NotFoundEntity(w http.ResponseWriter, r *http.Request, entity string, id int) {
	e.ErrorMessage(&Error{
		w:       w,
		r:       r,
		code:    CodeNotFound,
		status:  http.StatusNotFound,
		message: fmt.Sprintf("%s with id %d could not be found", entity, id),
	})
}

func (e *ErrorHandler) Conflict(w http.ResponseWriter, r *http.Request, message string) {
	e.ErrorMessage(&Error{
		w:       w,
		r:       r,
		code:    CodeConflict,
		status:  http.StatusConflict,
		message: message,
	})
}

func (e *ErrorHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	e.ErrorMessage(&Error{
		w:       w,
		r:       r,
		code:    CodeMethodNotAllowed,
		status:  http.StatusMethodNotAllowed,
		message: fmt.Sprintf("The %s method is not supported for this resource", r.Method),
	})
}

func (e *ErrorHandler) BadRequest(w http.ResponseWriter, r *http.Request, err error) {
	e.ErrorMessage(&Error{
		w:       w,
		r:       r,
		code:    CodeBadRequest,
		status:  http.StatusBadRequest,
		message: err.Error(),
	})
}

func (e *ErrorHandler) FailedValidation(w http.ResponseWriter, r *http.Request, details any) {
	e.ErrorMessage(&Error{
		w:       w,
		r:       r,
		code:    CodeValidationFailed,
		status:  http.StatusBadRequest,
		message: "Validation failed",
		details: details,
	})
}

func (e *ErrorHandler) InvalidAuthenticationToken(w http.ResponseWriter, r *http.Request) {
	headers := make(http.Header)
	headers.Set("WWW-Authenticate", "Bearer")

	e.ErrorMessage(&Error{
		w:       w,
		r:       r,
		code:    CodeUnauthorized,
		status:  http.StatusUnauthorized,
		message: "Invalid authentication token",
		headers: headers,
	})
}

func (e *ErrorHandler) AuthenticationRequired(w http.ResponseWriter, r *http.Request) {
	e.ErrorMessage(&Error{
		w:       w,
		r:       r,
		code:    CodeUnauthorized,
		status:  http.StatusUnauthorized,
		message: "You must be authenticated to access this resource",
	})
}
