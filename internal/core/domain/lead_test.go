package domain

import "testing"

func TestLeadStatus_Valid(t *testing.T) {
	for _, status := range LeadStatuses {
		if !status.Valid() {
			t.Errorf("expected %q to be valid", status)
		}
	}
	if LeadStatus("archived").Valid() {
		t.Error("expected unknown status to be invalid")
	}
}

func TestLeadStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to LeadStatus
		want     bool
	}{
		{StatusPending, StatusCallDone, true},
		{StatusPending, StatusDeclined, true},
		{StatusPending, StatusConverted, false},
		{StatusCallDone, StatusScheduled, true},
		{StatusScheduled, StatusConverted, true},
		{StatusConverted, StatusPending, false},  // terminal
		{StatusDeclined, StatusScheduled, false}, // terminal
		{StatusWaiting, StatusWaiting, true},     // same status allowed
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestJoinServices(t *testing.T) {
	if got := JoinServices([]string{"Haircut", "Color"}); got != "Haircut, Color" {
		t.Fatalf("unexpected join: %q", got)
	}
	if got := JoinServices([]string{" Haircut ", "", "Spa"}); got != "Haircut, Spa" {
		t.Fatalf("expected blanks dropped and trimmed, got %q", got)
	}
	if got := JoinServices(nil); got != "" {
		t.Fatalf("expected empty string for nil input, got %q", got)
	}
}
