package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/sholaoke/churchbase/internal/context"
	"github.com/sholaoke/churchbase/internal/models"
	"github.com/sholaoke/churchbase/internal/repository"
	"github.com/sholaoke/churchbase/internal/request"
	"github.com/sholaoke/churchbase/internal/response"
	"github.com/sholaoke/churchbase/internal/validator"

	"github.com/cradoe/gopass"
	"github.com/pascaldekloe/jwt"
)

// Authentication is deliberately thin: the admin panel needs an identity to
// gate its routes, nothing more. Admin accounts are provisioned by an
// existing administrator.
func (h *RouteHandler) HandleAuthLogin(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email     string              `json:"email"`
		Password  string              `json:"password"`
		Validator validator.Validator `json:"-"`
	}

	err := request.DecodeJSON(w, r, &input)
	if err != nil {
		h.ErrHandler.BadRequest(w, r, err)
		return
	}

	user, found, err := h.DB.User().GetByEmail(r.Context(), input.Email)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	input.Validator.CheckField(validator.NotBlank(input.Email), "email", "Email is required")
	input.Validator.CheckField(validator.IsEmail(input.Email), "email", "Must be a valid email address")
	input.Validator.CheckField(validator.NotBlank(input.Password), "password", "Password is required")
	input.Validator.Check(found, "Incorrect email/password")

	if found {
		passwordMatches, err := gopass.ComparePasswordAndHash(input.Password, user.HashedPassword)
		if err != nil {
			h.ErrHandler.ServerError(w, r, err)
			return
		}

		input.Validator.Check(passwordMatches, "Incorrect email/password")
	}

	if input.Validator.HasErrors() {
		h.ErrHandler.FailedValidation(w, r, input.Validator)
		return
	}

	var claims jwt.Claims
	claims.Subject = strconv.Itoa(user.ID)

	expiry := time.Now().Add(24 * time.Hour)
	claims.Issued = jwt.NewNumericTime(time.Now())
	claims.NotBefore = jwt.NewNumericTime(time.Now())
	claims.Expires = jwt.NewNumericTime(expiry)

	claims.Issuer = h.Config.BaseURL
	claims.Audiences = []string{h.Config.BaseURL}

	jwtBytes, err := claims.HMACSign(jwt.HS256, []byte(h.Config.Jwt.SecretKey))
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	data := map[string]string{
		"authToken":   string(jwtBytes),
		"tokenExpiry": expiry.Format(time.RFC3339),
	}

	err = response.JSONOkResponse(w, data, "Login successful", nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

func (h *RouteHandler) HandleAuthMe(w http.ResponseWriter, r *http.Request) {
	user := context.ContextGetAuthenticatedUser(r)

	err := response.JSONOkResponse(w, user, "", nil)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}

func (h *RouteHandler) HandleUserCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		FirstName string              `json:"firstName"`
		LastName  string              `json:"lastName"`
		Email     string              `json:"email"`
		Password  string              `json:"password"`
		Role      string              `json:"role"`
		Validator validator.Validator `json:"-"`
	}

	err := request.DecodeJSON(w, r, &input)
	if err != nil {
		h.ErrHandler.BadRequest(w, r, err)
		return
	}

	_, errs := gopass.Validate(input.Password)
	if errs != nil {
		h.ErrHandler.FailedValidation(w, r, errs)
		return
	}

	_, found, err := h.DB.User().GetByEmail(r.Context(), input.Email)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	input.Validator.CheckField(validator.NotBlank(input.FirstName), "firstName", "First name is required")
	input.Validator.CheckField(validator.NotBlank(input.LastName), "lastName", "Last name is required")
	input.Validator.CheckField(validator.NotBlank(input.Email), "email", "Email is required")
	input.Validator.CheckField(validator.IsEmail(input.Email), "email", "Must be a valid email address")
	input.Validator.CheckField(!found, "email", "Email is already in use")

	if input.Role == "" {
		input.Role = "admin"
	}
	input.Validator.CheckField(validator.In(input.Role, "admin", "editor"), "role", "Role must be admin or editor")

	if input.Validator.HasErrors() {
		h.ErrHandler.FailedValidation(w, r, input.Validator.FieldErrors)
		return
	}

	hashedPassword, err := gopass.Hash(input.Password)
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	user := &models.User{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		Role:           input.Role,
		HashedPassword: hashedPassword,
	}

	user, err = h.DB.User().Insert(r.Context(), user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			h.ErrHandler.Conflict(w, r, "A user with this email already exists")
			return
		}
		h.ErrHandler.ServerError(w, r, err)
		return
	}

	h.Helper.BackgroundTask(r, func() error {
		emailData := h.Helper.NewEmailData()
		emailData["Name"] = user.FirstName + " " + user.LastName
		emailData["Email"] = user.Email

		return h.Mailer.Send(user.Email, emailData, "welcome-user.tmpl")
	})

	err = response.JSONCreatedResponse(w, user, "User created successfully")
	if err != nil {
		h.ErrHandler.ServerError(w, r, err)
	}
}
