package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"calendar-status-sync/internal/calendar"
	"calendar-status-sync/internal/engine"
	"calendar-status-sync/internal/model"
	"calendar-status-sync/internal/reconcile"
)

// ReconcileUser fetches the user's events and applies the status and reminder
// side effects. The two units run concurrently and are always both awaited.
func (uc *implUseCase) ReconcileUser(ctx context.Context, s model.UserSettings) (reconcile.Outcome, error) {
	out := reconcile.Outcome{Email: s.Email}

	if s.CalendarToken == "" {
		out.Status = reconcile.StatusSkipped
		out.Reason = reconcile.ReasonNoCalendarToken
		return out, nil
	}

	events, err := uc.calendar.GetEvents(ctx, s.Email, s.CalendarToken, engine.DefaultWindowMinutes)
	if err != nil {
		if errors.Is(err, calendar.ErrAuthExpired) {
			uc.l.Warnf(ctx, "ReconcileUser: calendar authorization expired for %s", s.Email)
			out.Status = reconcile.StatusAuthExpired
			return out, nil
		}
		return failed(out, fmt.Errorf("%w: %w", reconcile.ErrEventsFetch, err))
	}

	user, err := uc.chat.ResolveUserByEmail(ctx, uc.botToken, s.Email)
	if err != nil {
		return failed(out, fmt.Errorf("resolve chat user: %w", err))
	}
	if user == nil {
		uc.l.Infof(ctx, "ReconcileUser: no chat user for %s", s.Email)
		out.Status = reconcile.StatusSkipped
		out.Reason = reconcile.ReasonChatUserNotFound
		return out, nil
	}

	selected := engine.SelectHighestPriority(events)
	if selected != nil {
		out.CurrentEventID = selected.ID
	}

	var (
		wg          sync.WaitGroup
		statusErr   error
		reminderErr error
	)
	wg.Go(func() {
		out.StatusUpdated, statusErr = uc.applyStatus(ctx, s, user, selected)
	})
	wg.Go(func() {
		out.ReminderEventID, reminderErr = uc.applyReminder(ctx, s, user, events)
	})
	wg.Wait()

	if err := errors.Join(statusErr, reminderErr); err != nil {
		return failed(out, err)
	}

	out.Status = reconcile.StatusOK
	return out, nil
}

// applyStatus pushes status and presence when the selected event changed and
// records the new current event once both calls succeeded.
func (uc *implUseCase) applyStatus(ctx context.Context, s model.UserSettings, user *model.ChatUser, selected *model.CalendarEvent) (bool, error) {
	if !engine.HasChanged(s.CurrentEvent, selected) {
		return false, nil
	}
	if s.ChatToken == "" {
		uc.l.Debugf(ctx, "applyStatus: %s has no chat token, status left unchanged", s.Email)
		return false, nil
	}

	status := uc.resolver.ResolveStatus(s, selected, user.TimeZone)
	presence := engine.ResolvePresence(selected)

	var (
		wg          sync.WaitGroup
		setErr      error
		presenceErr error
	)
	wg.Go(func() {
		if err := uc.chat.SetStatus(ctx, user.ID, s.ChatToken, status); err != nil {
			setErr = fmt.Errorf("set status: %w", err)
		}
	})
	wg.Go(func() {
		if err := uc.chat.SetPresence(ctx, user.ID, s.ChatToken, presence); err != nil {
			presenceErr = fmt.Errorf("set presence: %w", err)
		}
	})
	wg.Wait()

	if err := errors.Join(setErr, presenceErr); err != nil {
		return false, fmt.Errorf("%w: %w", reconcile.ErrStatusSync, err)
	}

	if err := uc.repo.SetCurrentEvent(ctx, s.Email, selected); err != nil {
		return true, fmt.Errorf("%w: persist current event: %w", reconcile.ErrStatusSync, err)
	}
	return true, nil
}

// applyReminder sends at most one reminder and advances the dedup token only
// after the message went out.
func (uc *implUseCase) applyReminder(ctx context.Context, s model.UserSettings, user *model.ChatUser, primary []model.CalendarEvent) (string, error) {
	var override []model.CalendarEvent
	if minutes, separate := engine.ReminderWindow(s); separate {
		events, err := uc.calendar.GetEvents(ctx, s.Email, s.CalendarToken, minutes)
		if err != nil {
			return "", fmt.Errorf("%w: override window: %w", reconcile.ErrEventsFetch, err)
		}
		override = events
	}

	reminder := uc.reminders.DecideReminder(ctx, s, primary, override)
	if reminder == nil {
		return "", nil
	}

	msg := model.ChatMessage{Text: reminder.Message, ChannelUserID: user.ID}
	if err := uc.chat.SendMessage(ctx, uc.botToken, msg); err != nil {
		return "", fmt.Errorf("%w: %w", reconcile.ErrReminder, err)
	}
	if err := uc.repo.SetLastReminderEventID(ctx, s.Email, reminder.Event.ID); err != nil {
		return reminder.Event.ID, fmt.Errorf("%w: persist dedup token: %w", reconcile.ErrReminder, err)
	}

	uc.l.Infof(ctx, "applyReminder: sent reminder for event %s to %s", reminder.Event.ID, s.Email)
	return reminder.Event.ID, nil
}

func failed(out reconcile.Outcome, err error) (reconcile.Outcome, error) {
	out.Status = reconcile.StatusFailed
	out.Error = err.Error()
	return out, err
}
