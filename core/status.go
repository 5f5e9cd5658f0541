package core

// SessionStatus is the lifecycle state of a mentorship session.
//
//	request            mentor accepts        mentor completes
//	──────► PENDING ──────────────► ACCEPTED ──────────────► COMPLETED
//	           │
//	           │ mentor declines
//	           ▼
//	        DECLINED
//
// PENDING is the only entry point. DECLINED and COMPLETED are
// terminal: no transition is defined out of them.
type SessionStatus string

const (
	StatusPending   SessionStatus = "PENDING"
	StatusAccepted  SessionStatus = "ACCEPTED"
	StatusDeclined  SessionStatus = "DECLINED"
	StatusCompleted SessionStatus = "COMPLETED"
)

var transitions = map[SessionStatus][]SessionStatus{
	StatusPending:  {StatusAccepted, StatusDeclined},
	StatusAccepted: {StatusCompleted},
}

// Valid reports whether s is one of the four defined statuses.
func (s SessionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusDeclined, StatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether no transition is defined out of s.
func (s SessionStatus) Terminal() bool {
	return s == StatusDeclined || s == StatusCompleted
}

// CanTransition reports whether from -> to is a legal session status
// transition. The ordering is monotonic: there is no path back to an
// earlier state and no path out of a terminal state.
func CanTransition(from, to SessionStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
