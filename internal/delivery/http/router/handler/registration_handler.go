// Package handler contains the HTTP handlers for the application.
package handler

import (
	"html/template"
	"net/http"

	"registrar/internal/delivery/http/response"
	domainerrors "registrar/internal/domain/errors"
	"registrar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// submitRegistrationRequest accepts both the legacy form fields (u_*) and JSON.
type submitRegistrationRequest struct {
	Username  string `json:"username" form:"u_username"`
	FirstName string `json:"firstname" form:"u_firstname"`
	LastName  string `json:"lastname" form:"u_lastname"`
	Email     string `json:"email" form:"u_email"`
	Website   string `json:"website" form:"u_website"`
	Password  string `json:"password" form:"u_password"`
}

// confirmPage is what the emailed link opens. It only posts the form back;
// link scanners that prefetch the URL never reach the workflow.
var confirmPage = template.Must(template.New("confirm").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><meta name="robots" content="noindex"><title>Confirm registration</title></head>
<body>
<form method="post" action="{{.Action}}">
<input type="hidden" name="username" value="{{.Username}}">
<input type="hidden" name="token" value="{{.Token}}">
<p>Confirm the registration of <strong>{{.Username}}</strong>.</p>
<button type="submit">Confirm</button>
</form>
</body>
</html>`))

type confirmPageView struct {
	Action   string
	Username string
	Token    string
}

// confirmRegistrationRequest is bound from the query string on GET and from the body on POST.
type confirmRegistrationRequest struct {
	Username string `json:"username" form:"username" query:"username" validate:"max=255"`
	Token    string `json:"token" form:"token" query:"token" validate:"max=128"`
}

// registrationStatusResponse is the data payload of successful workflow steps.
type registrationStatusResponse struct {
	Status string `json:"status"`
}

// RegistrationHandler serves the public registration endpoints.
type RegistrationHandler struct {
	uc usecase.RegistrationUsecase
}

// NewRegistrationHandler is the constructor for RegistrationHandler, injected by Fx.
func NewRegistrationHandler(uc usecase.RegistrationUsecase) *RegistrationHandler {
	return &RegistrationHandler{uc: uc}
}

// Submit handles a new registration request.
func (h *RegistrationHandler) Submit(c echo.Context) error {
	var req submitRegistrationRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailure.WithDetails("malformed request body")
	}

	outcome := h.uc.Submit(c.Request().Context(), &usecase.SubmitInput{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Website:   req.Website,
		Password:  req.Password,
	})
	if err := outcome.Err(); err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, registrationStatusResponse{Status: outcome.Status.String()}, outcome.Message)
}

// ConfirmPage renders the form behind the emailed link without confirming anything.
func (h *RegistrationHandler) ConfirmPage(c echo.Context) error {
	var req confirmRegistrationRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailure.WithDetails("malformed query")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	c.Response().Header().Set("Referrer-Policy", "no-referrer")
	c.Response().WriteHeader(http.StatusOK)

	return confirmPage.Execute(c.Response(), confirmPageView{
		Action:   c.Request().URL.Path,
		Username: req.Username,
		Token:    req.Token,
	})
}

// Confirm runs the confirmation for the posted form and for API clients.
func (h *RegistrationHandler) Confirm(c echo.Context) error {
	var req confirmRegistrationRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailure.WithDetails("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	outcome := h.uc.Confirm(c.Request().Context(), &usecase.ConfirmInput{
		Username: req.Username,
		Token:    req.Token,
	})
	if err := outcome.Err(); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, registrationStatusResponse{Status: outcome.Status.String()}, outcome.Message)
}
