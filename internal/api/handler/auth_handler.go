package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aurasalon/salon-system/internal/api/metrics"
	"github.com/aurasalon/salon-system/internal/api/middleware"
	"github.com/aurasalon/salon-system/internal/core/domain"
	"github.com/aurasalon/salon-system/internal/core/ports"
)

// AuthHandler covers signup, login, and logout.
type AuthHandler struct {
	accounts ports.AccountService
	sessions ports.SessionService
}

func NewAuthHandler(accounts ports.AccountService, sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{accounts: accounts, sessions: sessions}
}

type signupRequest struct {
	Name     string `form:"lead_name" json:"lead_name" validate:"required"`
	Email    string `form:"email" json:"email" validate:"required,email"`
	Phone    string `form:"phone_number" json:"phone_number" validate:"required,len=10,numeric"`
	Password string `form:"password" json:"password" validate:"required"`
	Role     string `form:"options" json:"options" validate:"required"`
}

type loginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

type signupResponse struct {
	Message  string          `json:"message"`
	Redirect string          `json:"redirect"`
	Account  *domain.Account `json:"account"`
}

// Signup handles POST /signup.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        lead_name     formData  string  true  "Display name"
// @Param        email         formData  string  true  "Email (role domain policy applies)"
// @Param        phone_number  formData  string  true  "10-digit phone number"
// @Param        password      formData  string  true  "Password, 8-13 characters"
// @Param        options       formData  string  true  "Requested role"
// @Success      201  {object}  signupResponse
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&req); err != nil {
		return &domain.ValidationError{Reason: err.Error()}
	}

	account, err := h.accounts.Register(c.Request().Context(), ports.RegisterInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Password:      req.Password,
		RequestedRole: domain.Role(req.Role),
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(account.Role)).Inc()
	return c.JSON(http.StatusCreated, signupResponse{
		Message:  "account created! login now",
		Redirect: "/login",
		Account:  account,
	})
}

// Login handles POST /login: authenticates, sets the session cookie, and
// redirects to the role-specific dashboard.
//
// @Summary      Login
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        email     formData  string  true  "Email"
// @Param        password  formData  string  true  "Password"
// @Success      303
// @Failure      401  {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}

	result, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    result.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.Redirect(http.StatusSeeOther, result.Landing)
}

// Logout handles GET /logout: revokes the session server-side and clears the
// cookie.
//
// @Summary      Logout
// @Tags         auth
// @Success      303
// @Router       /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil && cookie.Value != "" {
		if err := h.sessions.Logout(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.Redirect(http.StatusSeeOther, "/")
}
