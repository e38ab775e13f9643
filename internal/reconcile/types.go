package reconcile

import "time"

// OutcomeStatus is the terminal state of one user's reconciliation.
type OutcomeStatus string

const (
	StatusOK          OutcomeStatus = "ok"
	StatusSkipped     OutcomeStatus = "skipped"
	StatusAuthExpired OutcomeStatus = "auth_expired"
	StatusFailed      OutcomeStatus = "failed"
)

// Skip reasons.
const (
	ReasonNoCalendarToken  = "no_calendar_token"
	ReasonChatUserNotFound = "chat_user_not_found"
	ReasonSettingsNotFound = "settings_not_found"
)

// Outcome reports what happened for one user.
type Outcome struct {
	Email           string        `json:"email"`
	Status          OutcomeStatus `json:"status"`
	Reason          string        `json:"reason,omitempty"`
	CurrentEventID  string        `json:"current_event_id,omitempty"`
	StatusUpdated   bool          `json:"status_updated"`
	ReminderEventID string        `json:"reminder_event_id,omitempty"`
	Error           string        `json:"error,omitempty"`
}

// BatchResult is the result of one batch run, one outcome per user in input order.
type BatchResult struct {
	RunID       string        `json:"run_id"`
	StartedAt   time.Time     `json:"started_at"`
	Duration    time.Duration `json:"duration"`
	Outcomes    []Outcome     `json:"outcomes"`
	OK          int           `json:"ok"`
	Skipped     int           `json:"skipped"`
	AuthExpired int           `json:"auth_expired"`
	Failed      int           `json:"failed"`
}

// Tally recomputes the per-status counters from Outcomes.
func (r *BatchResult) Tally() {
	r.OK, r.Skipped, r.AuthExpired, r.Failed = 0, 0, 0, 0
	for _, o := range r.Outcomes {
		switch o.Status {
		case StatusOK:
			r.OK++
		case StatusSkipped:
			r.Skipped++
		case StatusAuthExpired:
			r.AuthExpired++
		case StatusFailed:
			r.Failed++
		}
	}
}
