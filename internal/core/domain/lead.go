package domain

import (
	"strings"
	"time"
)

// LeadStatus represents the workflow state of a service inquiry.
type LeadStatus string

const (
	StatusPending   LeadStatus = "pending"
	StatusCallDone  LeadStatus = "call_done"
	StatusWaiting   LeadStatus = "waiting"
	StatusScheduled LeadStatus = "scheduled"
	StatusConverted LeadStatus = "converted"
	StatusDeclined  LeadStatus = "declined"
)

// LeadStatuses lists every workflow state in dashboard order.
var LeadStatuses = []LeadStatus{
	StatusPending,
	StatusCallDone,
	StatusWaiting,
	StatusScheduled,
	StatusConverted,
	StatusDeclined,
}

// Valid reports whether s is one of the known statuses.
func (s LeadStatus) Valid() bool {
	for _, known := range LeadStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// validTransitions is the optional transition graph, applied only when
// transition enforcement is switched on. converted and declined are terminal;
// declined is reachable from any non-terminal state.
var validTransitions = map[LeadStatus][]LeadStatus{
	StatusPending:   {StatusCallDone, StatusDeclined},
	StatusCallDone:  {StatusWaiting, StatusScheduled, StatusDeclined},
	StatusWaiting:   {StatusScheduled, StatusDeclined},
	StatusScheduled: {StatusConverted, StatusWaiting, StatusDeclined},
}

// CanTransitionTo reports whether moving from s to next is allowed under the
// transition graph. Setting the same status again is always allowed.
func (s LeadStatus) CanTransitionTo(next LeadStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Lead is a customer service inquiry. Phone number is unique among leads; a
// lead belongs to a registered customer only by phone number equality, there
// is no stored link.
type Lead struct {
	ID      int64      `json:"id"`
	Name    string     `json:"lead_name"`
	Service string     `json:"service"`
	Phone   string     `json:"phone_number"`
	Inquiry string     `json:"query"`
	Status  LeadStatus `json:"status"`
}

// JoinServices renders a selected-services list the way the lead record
// stores it: comma-joined, blanks dropped.
func JoinServices(services []string) string {
	kept := services[:0:0]
	for _, s := range services {
		if s = strings.TrimSpace(s); s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, ", ")
}

// LeadEventKind classifies lifecycle events emitted for follow-up.
type LeadEventKind string

const (
	LeadSubmitted     LeadEventKind = "submitted"
	LeadStatusChanged LeadEventKind = "status_changed"
	LeadDeleted       LeadEventKind = "deleted"
)

// LeadEvent is a lifecycle notification handed to the follow-up pipeline.
type LeadEvent struct {
	Kind   LeadEventKind `json:"kind"`
	LeadID int64         `json:"lead_id"`
	Name   string        `json:"lead_name"`
	Phone  string        `json:"phone_number"`
	Status LeadStatus    `json:"status"`
	At     time.Time     `json:"at"`
}
