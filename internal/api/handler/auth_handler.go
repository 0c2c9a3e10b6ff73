package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsepoint/wellness-api/internal/api/metrics"
	"github.com/pulsepoint/wellness-api/internal/core/domain"
	"github.com/pulsepoint/wellness-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account with the "user" role.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration form"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  validationResponse
// @Failure      409   {object}  validationResponse
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, validationResponse{Error: "invalid payload", Reasons: []string{err.Error()}})
	}

	err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username:    req.Username,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		WorkplaceID: req.WorkplaceID,
	})
	if err != nil {
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
			return err
		}
		metrics.RegistrationsTotal.WithLabelValues(registrationResult(ve)).Inc()
		return writeValidation(c, ve)
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "user registered successfully"})
}

func registrationResult(ve *domain.ValidationError) string {
	switch {
	case errors.Is(ve, domain.ErrDuplicateUsername):
		return "duplicate_username"
	case errors.Is(ve, domain.ErrInvalidWorkplace):
		return "invalid_workplace"
	case errors.Is(ve, domain.ErrWeakPassword):
		return "weak_password"
	default:
		return "invalid"
	}
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	res, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": domain.ErrInvalidCredentials.Error()})
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: res.Token, Username: res.Username, Roles: res.Roles})
}

// Me returns the profile of the authenticated caller.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Profile
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	profile, err := h.authService.GetCurrentSession(c.Request().Context(), p)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unknown session"})
		}
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// writeValidation renders a ValidationError; a duplicate username is a conflict.
func writeValidation(c echo.Context, ve *domain.ValidationError) error {
	status := http.StatusBadRequest
	if errors.Is(ve, domain.ErrDuplicateUsername) {
		status = http.StatusConflict
	}
	return c.JSON(status, validationResponse{Error: ve.Kind.Error(), Reasons: ve.Reasons})
}
