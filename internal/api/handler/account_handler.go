package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/aurasalon/salon-system/internal/api/metrics"
	"github.com/aurasalon/salon-system/internal/core/domain"
	"github.com/aurasalon/salon-system/internal/core/ports"
)

// AccountHandler covers the administrator's dashboard and account CRUD.
type AccountHandler struct {
	accounts ports.AccountService
	sessions ports.SessionService
}

func NewAccountHandler(accounts ports.AccountService, sessions ports.SessionService) *AccountHandler {
	return &AccountHandler{accounts: accounts, sessions: sessions}
}

type adminDashboardResponse struct {
	Name     string            `json:"lead_name"`
	Flash    string            `json:"flash,omitempty"`
	Accounts []*domain.Account `json:"accounts"`
}

// Dashboard handles GET /login/admin.
//
// @Summary      Administrator dashboard
// @Tags         admin
// @Produce      json
// @Success      200  {object}  adminDashboardResponse
// @Router       /login/admin [get]
func (h *AccountHandler) Dashboard(c echo.Context) error {
	sid, sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	accounts, err := h.accounts.ListAccounts(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, adminDashboardResponse{
		Name:     sess.Name,
		Flash:    h.sessions.TakeFlash(c.Request().Context(), sid),
		Accounts: accounts,
	})
}

type addAccountRequest struct {
	Name     string `form:"lead_name" json:"lead_name" validate:"required"`
	Email    string `form:"email" json:"email" validate:"required,email"`
	Phone    string `form:"phone_number" json:"phone_number" validate:"required,len=10,numeric"`
	Password string `form:"password" json:"password" validate:"required"`
	Role     string `form:"option" json:"option" validate:"required"`
}

// Add handles POST /admin/add — an administrator-initiated registration. The
// same role-domain and password policy applies.
//
// @Summary      Add an account
// @Tags         admin
// @Accept       x-www-form-urlencoded
// @Success      303
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/add [post]
func (h *AccountHandler) Add(c echo.Context) error {
	sid, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req addAccountRequest
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
	h.sessions.Flash(c.Request().Context(), sid, "user added successfully")
	return c.Redirect(http.StatusSeeOther, "/login/admin")
}

type updateAccountRequest struct {
	ID    string `form:"id" json:"id"`
	Name  string `form:"lead_name" json:"lead_name"`
	Email string `form:"email" json:"email"`
	Phone string `form:"phone_number" json:"phone_number"`
	Role  string `form:"option" json:"option"`
}

// Update handles POST /admin/update. Only the provided fields are applied.
//
// @Summary      Update an account
// @Tags         admin
// @Accept       x-www-form-urlencoded
// @Success      303
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/update [post]
func (h *AccountHandler) Update(c echo.Context) error {
	sid, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}

	id, err := parseID(req.ID, "please enter the employee's ID")
	if err != nil {
		return err
	}

	in := ports.UpdateAccountInput{
		ID:    id,
		Name:  optional(req.Name),
		Email: optional(req.Email),
		Phone: optional(req.Phone),
	}
	if req.Role != "" {
		role := domain.Role(req.Role)
		in.Role = &role
	}

	if _, err := h.accounts.UpdateAccount(c.Request().Context(), in); err != nil {
		return err
	}

	h.sessions.Flash(c.Request().Context(), sid, "employee updated successfully")
	return c.Redirect(http.StatusSeeOther, "/login/admin")
}

// Delete handles POST /admin/delete.
//
// @Summary      Delete an account
// @Tags         admin
// @Accept       x-www-form-urlencoded
// @Success      303
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/delete [post]
func (h *AccountHandler) Delete(c echo.Context) error {
	sid, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	id, err := parseID(c.FormValue("id"), "please enter the employee's ID")
	if err != nil {
		return err
	}

	if err := h.accounts.DeleteAccount(c.Request().Context(), id); err != nil {
		return err
	}

	h.sessions.Flash(c.Request().Context(), sid, "employee deleted successfully")
	return c.Redirect(http.StatusSeeOther, "/login/admin")
}

// parseID turns a form id field into a numeric identifier, with the screen's
// own wording when the field is missing or malformed.
func parseID(raw, emptyReason string) (int64, error) {
	if raw == "" {
		return 0, &domain.ValidationError{Reason: emptyReason}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{Reason: "id must be a number"}
	}
	return id, nil
}

// optional maps an empty form value to "field not provided".
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
