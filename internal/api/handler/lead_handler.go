package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aurasalon/salon-system/internal/api/metrics"
	"github.com/aurasalon/salon-system/internal/core/domain"
	"github.com/aurasalon/salon-system/internal/core/ports"
)

// LeadHandler covers the public contact form, the manager dashboard, and the
// manager's lead CRUD.
type LeadHandler struct {
	leads    ports.LeadService
	sessions ports.SessionService
	activity ports.ActivityLog
}

func NewLeadHandler(leads ports.LeadService, sessions ports.SessionService, activity ports.ActivityLog) *LeadHandler {
	return &LeadHandler{leads: leads, sessions: sessions, activity: activity}
}

type contactRequest struct {
	Name     string   `form:"lead_name" json:"lead_name"`
	Services []string `form:"service" json:"service"`
	Phone    string   `form:"phone_number" json:"phone_number"`
	Inquiry  string   `form:"query" json:"query"`
}

type contactResponse struct {
	Message string       `json:"message"`
	Lead    *domain.Lead `json:"lead"`
}

// Contact handles POST /contact_us — the anonymous visitor's lead submission.
//
// @Summary      Submit a service inquiry
// @Tags         leads
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        lead_name     formData  string  true  "Name"
// @Param        service       formData  string  true  "Requested service (repeatable)"
// @Param        phone_number  formData  string  true  "10-digit phone number"
// @Param        query         formData  string  true  "Inquiry text"
// @Success      201  {object}  contactResponse
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /contact_us [post]
func (h *LeadHandler) Contact(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}

	lead, err := h.leads.SubmitLead(c.Request().Context(), ports.SubmitLeadInput{
		Name:     req.Name,
		Services: req.Services,
		Phone:    req.Phone,
		Inquiry:  req.Inquiry,
	})
	if err != nil {
		return err
	}

	metrics.LeadsCreatedTotal.WithLabelValues("public").Inc()
	return c.JSON(http.StatusCreated, contactResponse{
		Message: "query submitted, we will reach out to you shortly!",
		Lead:    lead,
	})
}

type managerDashboardResponse struct {
	Name     string                      `json:"lead_name"`
	Flash    string                      `json:"flash,omitempty"`
	Total    int64                       `json:"total_leads"`
	ByStatus map[domain.LeadStatus]int64 `json:"leads_by_status"`
	Activity []domain.LeadEvent          `json:"recent_activity"`
}

// Dashboard handles GET /login/manager: lead counts per workflow status plus
// the recent follow-up activity.
//
// @Summary      Manager dashboard
// @Tags         manager
// @Produce      json
// @Success      200  {object}  managerDashboardResponse
// @Router       /login/manager [get]
func (h *LeadHandler) Dashboard(c echo.Context) error {
	sid, sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	counts, err := h.leads.DashboardCounts(c.Request().Context())
	if err != nil {
		return err
	}

	activity, err := h.activity.Recent(c.Request().Context(), 20)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, managerDashboardResponse{
		Name:     sess.Name,
		Flash:    h.sessions.TakeFlash(c.Request().Context(), sid),
		Total:    counts.Total,
		ByStatus: counts.ByStatus,
		Activity: activity,
	})
}

// List handles GET /manager/all_leads.
//
// @Summary      List all leads
// @Tags         manager
// @Produce      json
// @Success      200  {array}  domain.Lead
// @Router       /manager/all_leads [get]
func (h *LeadHandler) List(c echo.Context) error {
	leads, err := h.leads.ListLeads(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, leads)
}

// Add handles POST /manager/all_leads/add — a manager-created lead. The
// manager screen applies the stricter inquiry length rule.
//
// @Summary      Add a lead
// @Tags         manager
// @Accept       x-www-form-urlencoded
// @Success      303
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /manager/all_leads/add [post]
func (h *LeadHandler) Add(c echo.Context) error {
	sid, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}

	_, err = h.leads.SubmitLead(c.Request().Context(), ports.SubmitLeadInput{
		Name:        req.Name,
		Services:    req.Services,
		Phone:       req.Phone,
		Inquiry:     req.Inquiry,
		FromManager: true,
	})
	if err != nil {
		return err
	}

	metrics.LeadsCreatedTotal.WithLabelValues("manager").Inc()
	h.sessions.Flash(c.Request().Context(), sid, "lead added successfully")
	return c.Redirect(http.StatusSeeOther, "/manager/all_leads")
}

type updateLeadRequest struct {
	ID       string   `form:"id" json:"id"`
	Name     string   `form:"lead_name" json:"lead_name"`
	Services []string `form:"service" json:"service"`
	Inquiry  string   `form:"query" json:"query"`
	Status   string   `form:"status" json:"status"`
}

// Update handles POST /manager/all_leads/update. Only the provided fields are
// applied; at least one must be present.
//
// @Summary      Update a lead
// @Tags         manager
// @Accept       x-www-form-urlencoded
// @Success      303
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /manager/all_leads/update [post]
func (h *LeadHandler) Update(c echo.Context) error {
	sid, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req updateLeadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}

	id, err := parseID(req.ID, "enter ID to proceed further")
	if err != nil {
		return err
	}

	in := ports.UpdateLeadInput{
		ID:      id,
		Name:    optional(req.Name),
		Inquiry: optional(req.Inquiry),
	}
	if service := domain.JoinServices(req.Services); service != "" {
		in.Service = &service
	}
	if req.Status != "" {
		status := domain.LeadStatus(req.Status)
		in.Status = &status
	}

	lead, err := h.leads.UpdateLead(c.Request().Context(), in)
	if err != nil {
		return err
	}

	if in.Status != nil {
		metrics.LeadStatusUpdatesTotal.WithLabelValues(string(lead.Status)).Inc()
	}
	h.sessions.Flash(c.Request().Context(), sid, "lead updated successfully")
	return c.Redirect(http.StatusSeeOther, "/manager/all_leads")
}

// Delete handles POST /manager/all_leads/delete.
//
// @Summary      Delete a lead
// @Tags         manager
// @Accept       x-www-form-urlencoded
// @Success      303
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /manager/all_leads/delete [post]
func (h *LeadHandler) Delete(c echo.Context) error {
	sid, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	id, err := parseID(c.FormValue("id"), "please enter the lead's ID")
	if err != nil {
		return err
	}

	if err := h.leads.DeleteLead(c.Request().Context(), id); err != nil {
		return err
	}

	h.sessions.Flash(c.Request().Context(), sid, "lead deleted successfully")
	return c.Redirect(http.StatusSeeOther, "/manager/all_leads")
}
