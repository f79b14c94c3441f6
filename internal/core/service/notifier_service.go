package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aurasalon/salon-system/internal/core/domain"
	"github.com/aurasalon/salon-system/internal/core/ports"
)

type notifierService struct {
	activity ports.ActivityLog
	log      zerolog.Logger
}

// NewNotifierService returns the follow-up event processor: it logs each lead
// lifecycle event and records it to the activity log shown on the manager
// dashboard.
func NewNotifierService(activity ports.ActivityLog, log zerolog.Logger) ports.NotifierService {
	return &notifierService{activity: activity, log: log}
}

func (s *notifierService) Process(ctx context.Context, event domain.LeadEvent) error {
	s.log.Info().
		Str("kind", string(event.Kind)).
		Int64("lead_id", event.LeadID).
		Str("phone", event.Phone).
		Str("status", string(event.Status)).
		Msg("lead follow-up event")

	if err := s.activity.Record(ctx, event); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	return nil
}
