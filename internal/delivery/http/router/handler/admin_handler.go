package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "registrar/internal/delivery/context"
	"registrar/internal/delivery/http/middleware"
	"registrar/internal/delivery/http/response"
	"registrar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdminHandler serves administrative transitions of pending requests.
type AdminHandler struct {
	uc     usecase.RegistrationUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.RegistrationUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// Reject refuses a pending registration request.
func (h *AdminHandler) Reject(c echo.Context) error {
	ctx := c.Request().Context()
	username := c.Param("username")

	outcome := h.uc.Reject(ctx, username)
	if err := outcome.Err(); err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Registration rejected by administrator",
		slog.String("username", username),
		slog.String("admin", middleware.Subject(c)),
	)

	return response.Success(c, http.StatusOK, registrationStatusResponse{Status: outcome.Status.String()}, outcome.Message)
}
