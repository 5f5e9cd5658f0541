package core

import "testing"

// Requirement: the only legal transitions are Pending->Accepted,
// Pending->Declined, and Accepted->Completed; every other pair is
// rejected, including any transition out of a terminal state.
func TestCanTransition(t *testing.T) {
	statuses := []SessionStatus{StatusPending, StatusAccepted, StatusDeclined, StatusCompleted}

	legal := map[[2]SessionStatus]bool{
		{StatusPending, StatusAccepted}:  true,
		{StatusPending, StatusDeclined}:  true,
		{StatusAccepted, StatusCompleted}: true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			got := CanTransition(from, to)
			want := legal[[2]SessionStatus{from, to}]
			if got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

// Requirement: transitions from or to an undefined status are illegal.
func TestCanTransition_UnknownStatus(t *testing.T) {
	if CanTransition("", StatusAccepted) {
		t.Error("CanTransition from empty status should be false")
	}
	if CanTransition(StatusPending, "CANCELLED") {
		t.Error("CanTransition to unknown status should be false")
	}
}

// Requirement: Declined and Completed are terminal; Pending and
// Accepted are not.
func TestSessionStatus_Terminal(t *testing.T) {
	tests := []struct {
		status   SessionStatus
		terminal bool
	}{
		{StatusPending, false},
		{StatusAccepted, false},
		{StatusDeclined, true},
		{StatusCompleted, true},
	}

	for _, test := range tests {
		if got := test.status.Terminal(); got != test.terminal {
			t.Errorf("%s.Terminal() = %v, want %v", test.status, got, test.terminal)
		}
	}
}

func TestSessionStatus_Valid(t *testing.T) {
	for _, s := range []SessionStatus{StatusPending, StatusAccepted, StatusDeclined, StatusCompleted} {
		if !s.Valid() {
			t.Errorf("%s.Valid() = false, want true", s)
		}
	}
	if SessionStatus("CANCELLED").Valid() {
		t.Error("unknown status should not be valid")
	}
}
