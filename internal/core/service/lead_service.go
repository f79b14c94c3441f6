package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/aurasalon/salon-system/internal/core/domain"
	"github.com/aurasalon/salon-system/internal/core/ports"
)

const (
	managerInquiryMinLen = 5
	managerInquiryMaxLen = 50
)

// LeadService implements the lead lifecycle: public submission, the
// manager's CRUD, and the dashboard aggregations.
type LeadService struct {
	leads              ports.LeadRepository
	notifier           ports.LeadNotifier
	enforceTransitions bool
	log                zerolog.Logger
}

func NewLeadService(leads ports.LeadRepository, notifier ports.LeadNotifier, enforceTransitions bool, log zerolog.Logger) *LeadService {
	return &LeadService{leads: leads, notifier: notifier, enforceTransitions: enforceTransitions, log: log}
}

// SubmitLead validates and persists a new inquiry with status pending. One
// open inquiry per phone number.
func (s *LeadService) SubmitLead(ctx context.Context, in ports.SubmitLeadInput) (*domain.Lead, error) {
	service := domain.JoinServices(in.Services)
	if in.Name == "" || service == "" || in.Phone == "" || in.Inquiry == "" {
		return nil, &domain.ValidationError{Reason: "please fill out all fields"}
	}
	if !domain.ValidPhone(in.Phone) {
		return nil, &domain.ValidationError{Reason: "please enter the correct phone number"}
	}
	if in.FromManager && (len(in.Inquiry) < managerInquiryMinLen || len(in.Inquiry) > managerInquiryMaxLen) {
		return nil, &domain.ValidationError{
			Reason: fmt.Sprintf("query must be between %d and %d characters", managerInquiryMinLen, managerInquiryMaxLen),
		}
	}

	if _, err := s.leads.FindByPhone(ctx, in.Phone); err == nil {
		return nil, &domain.ConflictError{Reason: "lead with this phone number already exists"}
	} else if !isNotFound(err) {
		return nil, err
	}

	lead := &domain.Lead{
		Name:    in.Name,
		Service: service,
		Phone:   in.Phone,
		Inquiry: in.Inquiry,
		Status:  domain.StatusPending,
	}

	created, err := s.leads.Create(ctx, lead)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("id", created.ID).Str("phone", created.Phone).Msg("lead submitted")
	s.notify(domain.LeadEvent{
		Kind:   domain.LeadSubmitted,
		LeadID: created.ID,
		Name:   created.Name,
		Phone:  created.Phone,
		Status: created.Status,
		At:     time.Now().UTC(),
	})
	return created, nil
}

// UpdateLead applies only the provided fields. At least one field must be
// present; a provided status must belong to the closed enumeration and, when
// enforcement is on, be reachable from the current status.
func (s *LeadService) UpdateLead(ctx context.Context, in ports.UpdateLeadInput) (*domain.Lead, error) {
	if in.Name == nil && in.Service == nil && in.Inquiry == nil && in.Status == nil {
		return nil, &domain.ValidationError{Reason: "enter at least one field to proceed further"}
	}

	lead, err := s.leads.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	statusChanged := false
	if in.Status != nil && *in.Status != lead.Status {
		if !in.Status.Valid() {
			return nil, &domain.ValidationError{Reason: "unknown status: " + string(*in.Status)}
		}
		if s.enforceTransitions && !lead.Status.CanTransitionTo(*in.Status) {
			return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, lead.Status, *in.Status)
		}
		lead.Status = *in.Status
		statusChanged = true
	}
	if in.Name != nil {
		lead.Name = *in.Name
	}
	if in.Service != nil {
		lead.Service = *in.Service
	}
	if in.Inquiry != nil {
		lead.Inquiry = *in.Inquiry
	}

	if err := s.leads.Update(ctx, lead); err != nil {
		return nil, err
	}

	s.log.Info().Int64("id", lead.ID).Str("status", string(lead.Status)).Msg("lead updated")
	if statusChanged {
		s.notify(domain.LeadEvent{
			Kind:   domain.LeadStatusChanged,
			LeadID: lead.ID,
			Name:   lead.Name,
			Phone:  lead.Phone,
			Status: lead.Status,
			At:     time.Now().UTC(),
		})
	}
	return lead, nil
}

// DeleteLead removes the inquiry.
func (s *LeadService) DeleteLead(ctx context.Context, id int64) error {
	lead, err := s.leads.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.leads.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Int64("id", id).Msg("lead deleted")
	s.notify(domain.LeadEvent{
		Kind:   domain.LeadDeleted,
		LeadID: lead.ID,
		Name:   lead.Name,
		Phone:  lead.Phone,
		Status: lead.Status,
		At:     time.Now().UTC(),
	})
	return nil
}

func (s *LeadService) ListLeads(ctx context.Context) ([]*domain.Lead, error) {
	return s.leads.List(ctx)
}

// FindByPhone backs the customer's status tracking screen. The match is by
// phone number equality only.
func (s *LeadService) FindByPhone(ctx context.Context, phone string) (*domain.Lead, error) {
	return s.leads.FindByPhone(ctx, phone)
}

// DashboardCounts returns the total plus a count per workflow status.
func (s *LeadService) DashboardCounts(ctx context.Context) (*ports.LeadCounts, error) {
	total, err := s.leads.Count(ctx)
	if err != nil {
		return nil, err
	}

	counts := &ports.LeadCounts{Total: total, ByStatus: make(map[domain.LeadStatus]int64, len(domain.LeadStatuses))}
	for _, status := range domain.LeadStatuses {
		n, err := s.leads.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		counts.ByStatus[status] = n
	}
	return counts, nil
}

func (s *LeadService) notify(event domain.LeadEvent) {
	if s.notifier != nil {
		s.notifier.Enqueue(event)
	}
}
