package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"calendar-status-sync/internal/model"
	"calendar-status-sync/internal/settings"
	"calendar-status-sync/internal/settings/repository"
)

const (
	maxOverrideMinutes = 24 * 60
	maxStatusText      = 100
)

func (uc *implUseCase) Get(ctx context.Context, email string) (model.UserSettings, error) {
	key, err := normalizeEmail(email)
	if err != nil {
		return model.UserSettings{}, err
	}

	s, err := uc.repo.Get(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		return model.UserSettings{}, settings.ErrUserNotFound
	}
	if err != nil {
		return model.UserSettings{}, fmt.Errorf("get settings: %w", err)
	}
	return s, nil
}

func (uc *implUseCase) Update(ctx context.Context, email string, input settings.UpdateInput) (model.UserSettings, error) {
	key, err := normalizeEmail(email)
	if err != nil {
		return model.UserSettings{}, err
	}
	if err := validate(input); err != nil {
		return model.UserSettings{}, err
	}

	s, err := uc.repo.Get(ctx, key)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		uc.l.Infof(ctx, "Update: creating settings for %s", key)
		s = model.UserSettings{Email: key}
	case err != nil:
		return model.UserSettings{}, fmt.Errorf("get settings: %w", err)
	}

	apply(&s, input)
	if err := uc.repo.Upsert(ctx, s); err != nil {
		return model.UserSettings{}, fmt.Errorf("save settings: %w", err)
	}
	return s, nil
}

func apply(s *model.UserSettings, in settings.UpdateInput) {
	if in.ChatToken != nil {
		s.ChatToken = *in.ChatToken
	}
	if in.CalendarToken != nil && *in.CalendarToken != s.CalendarToken {
		s.CalendarToken = *in.CalendarToken
		// a new calendar forgets the previous one's state
		s.CurrentEvent = nil
		s.LastReminderEventID = ""
	}
	if in.ClearDefaultStatus {
		s.DefaultStatus = nil
	} else if in.DefaultStatus != nil {
		ds := *in.DefaultStatus
		s.DefaultStatus = &ds
	}
	if in.StatusMappings != nil {
		s.StatusMappings = append([]model.StatusMapping(nil), (*in.StatusMappings)...)
	}
	if in.ZoomLinksDisabled != nil {
		s.ZoomLinksDisabled = *in.ZoomLinksDisabled
	}
	if in.MeetingReminderTimingOverrideMinutes != nil {
		s.MeetingReminderTimingOverrideMinutes = *in.MeetingReminderTimingOverrideMinutes
	}
	if in.Snoozed != nil {
		s.Snoozed = *in.Snoozed
	}
}

func validate(in settings.UpdateInput) error {
	if m := in.MeetingReminderTimingOverrideMinutes; m != nil && (*m < 0 || *m > maxOverrideMinutes) {
		return settings.ErrInvalidOverride
	}
	if in.DefaultStatus != nil && utf8.RuneCountInString(in.DefaultStatus.Text) > maxStatusText {
		return settings.ErrStatusTextTooLong
	}
	if in.StatusMappings != nil {
		for _, m := range *in.StatusMappings {
			if strings.TrimSpace(m.CalendarText) == "" {
				return settings.ErrInvalidMapping
			}
			if utf8.RuneCountInString(m.ChatStatus.Text) > maxStatusText {
				return settings.ErrStatusTextTooLong
			}
		}
	}
	return nil
}

func normalizeEmail(email string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil || addr.Address != strings.TrimSpace(email) {
		return "", settings.ErrInvalidEmail
	}
	return strings.ToLower(addr.Address), nil
}
