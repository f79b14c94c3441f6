package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aurasalon/salon-system/internal/api/metrics"
	"github.com/aurasalon/salon-system/internal/core/domain"
	"github.com/aurasalon/salon-system/internal/core/ports"
)

// CustomerHandler covers the customer's landing page, the logged-in contact
// form, and the inquiry status tracker.
type CustomerHandler struct {
	leads    ports.LeadService
	sessions ports.SessionService
}

func NewCustomerHandler(leads ports.LeadService, sessions ports.SessionService) *CustomerHandler {
	return &CustomerHandler{leads: leads, sessions: sessions}
}

type customerLandingResponse struct {
	Name  string `json:"lead_name"`
	Phone string `json:"phone_number"`
	Flash string `json:"flash,omitempty"`
}

// Landing handles GET /login/user.
//
// @Summary      Customer landing page
// @Tags         customer
// @Produce      json
// @Success      200  {object}  customerLandingResponse
// @Router       /login/user [get]
func (h *CustomerHandler) Landing(c echo.Context) error {
	sid, sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customerLandingResponse{
		Name:  sess.Name,
		Phone: sess.Phone,
		Flash: h.sessions.TakeFlash(c.Request().Context(), sid),
	})
}

type signedContactRequest struct {
	Services []string `form:"service" json:"service"`
	Inquiry  string   `form:"query" json:"query"`
}

// Contact handles POST /login/user/contact_us. Name and phone come from the
// session, not the form.
//
// @Summary      Submit an inquiry as a logged-in customer
// @Tags         customer
// @Accept       x-www-form-urlencoded
// @Success      303
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /login/user/contact_us [post]
func (h *CustomerHandler) Contact(c echo.Context) error {
	sid, sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req signedContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}

	_, err = h.leads.SubmitLead(c.Request().Context(), ports.SubmitLeadInput{
		Name:     sess.Name,
		Services: req.Services,
		Phone:    sess.Phone,
		Inquiry:  req.Inquiry,
	})
	if err != nil {
		return err
	}

	metrics.LeadsCreatedTotal.WithLabelValues("customer").Inc()
	h.sessions.Flash(c.Request().Context(), sid, "query submitted, we will reach out to you shortly!")
	return c.Redirect(http.StatusSeeOther, "/login/user")
}

type detailsResponse struct {
	Name   string            `json:"lead_name"`
	Status domain.LeadStatus `json:"status"`
	Query  string            `json:"query"`
}

// Details handles GET /your_details: the customer's inquiry status, matched
// by the session's phone number.
//
// @Summary      Track your inquiry
// @Tags         customer
// @Produce      json
// @Success      200  {object}  detailsResponse
// @Failure      404  {object}  map[string]string
// @Router       /your_details [get]
func (h *CustomerHandler) Details(c echo.Context) error {
	_, sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	lead, err := h.leads.FindByPhone(c.Request().Context(), sess.Phone)
	if err != nil {
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			return &domain.NotFoundError{Reason: "please fill the 'Contact Us' first to track your query!"}
		}
		return err
	}

	return c.JSON(http.StatusOK, detailsResponse{
		Name:   lead.Name,
		Status: lead.Status,
		Query:  lead.Inquiry,
	})
}
