package usecase

import (
	"context"

	"calendar-status-sync/internal/model"
	"calendar-status-sync/internal/reconcile"
)

// AuthExpiredNotice is sent to users whose calendar token was revoked.
const AuthExpiredNotice = "Your calendar connection has expired, so your chat status is no longer being updated. " +
	"Please reconnect your calendar to resume syncing."

// handleAuthExpired clears the stored calendar token of every user whose
// fetch reported expired authorization and notifies them. Both steps are
// best effort and never change the recorded outcome.
func (uc *implUseCase) handleAuthExpired(ctx context.Context, users []model.UserSettings, outcomes []reconcile.Outcome) {
	for i, out := range outcomes {
		if out.Status != reconcile.StatusAuthExpired {
			continue
		}
		email := users[i].Email

		if err := uc.repo.ClearCalendarToken(ctx, email); err != nil {
			uc.l.Errorf(ctx, "handleAuthExpired: clear token for %s: %v", email, err)
		}

		user, err := uc.chat.ResolveUserByEmail(ctx, uc.botToken, email)
		if err != nil || user == nil {
			uc.l.Warnf(ctx, "handleAuthExpired: cannot notify %s: user=%v err=%v", email, user, err)
			continue
		}
		msg := model.ChatMessage{Text: AuthExpiredNotice, ChannelUserID: user.ID}
		if err := uc.chat.SendMessage(ctx, uc.botToken, msg); err != nil {
			uc.l.Warnf(ctx, "handleAuthExpired: notify %s: %v", email, err)
		}
	}
}
