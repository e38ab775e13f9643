package http

import (
	"calendar-status-sync/internal/reconcile"
	"calendar-status-sync/pkg/response"
)

// --- Request DTOs ---

type reconcileReq struct {
	Emails []string `json:"emails" binding:"omitempty,dive,required"`
}

// --- Response DTOs ---

type outcomeResp struct {
	Email           string `json:"email"`
	Status          string `json:"status"`
	Reason          string `json:"reason,omitempty"`
	CurrentEventID  string `json:"current_event_id,omitempty"`
	StatusUpdated   bool   `json:"status_updated"`
	ReminderEventID string `json:"reminder_event_id,omitempty"`
	Error           string `json:"error,omitempty"`
}

type reconcileResp struct {
	RunID       string            `json:"run_id"`
	StartedAt   response.DateTime `json:"started_at"`
	DurationMS  int64             `json:"duration_ms"`
	OK          int               `json:"ok"`
	Skipped     int               `json:"skipped"`
	AuthExpired int               `json:"auth_expired"`
	Failed      int               `json:"failed"`
	Outcomes    []outcomeResp     `json:"outcomes"`
}

func (h *handler) newReconcileResp(res reconcile.BatchResult) reconcileResp {
	outcomes := make([]outcomeResp, len(res.Outcomes))
	for i, o := range res.Outcomes {
		outcomes[i] = outcomeResp{
			Email:           o.Email,
			Status:          string(o.Status),
			Reason:          o.Reason,
			CurrentEventID:  o.CurrentEventID,
			StatusUpdated:   o.StatusUpdated,
			ReminderEventID: o.ReminderEventID,
			Error:           o.Error,
		}
	}
	return reconcileResp{
		RunID:       res.RunID,
		StartedAt:   response.DateTime(res.StartedAt),
		DurationMS:  res.Duration.Milliseconds(),
		OK:          res.OK,
		Skipped:     res.Skipped,
		AuthExpired: res.AuthExpired,
		Failed:      res.Failed,
		Outcomes:    outcomes,
	}
}
