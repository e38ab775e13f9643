package postgre

import (
	"context"
	"errors"
	"strings"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"

	"calendar-status-sync/internal/model"
	"calendar-status-sync/internal/settings/repository"
)

const selectColumns = `
	SELECT email, chat_token, calendar_token, default_status, status_mappings, current_event,
	       zoom_links_disabled, reminder_override_minutes, last_reminder_event_id, snoozed
	FROM user_settings`

func (r *implRepository) GetAll(ctx context.Context) ([]model.UserSettings, error) {
	rows, err := r.pool.Query(ctx, selectColumns+` ORDER BY email`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetAll"), err)
		return nil, repository.ErrFailedToList
	}
	return r.collect(ctx, "GetAll", rows)
}

func (r *implRepository) GetMany(ctx context.Context, emails []string) ([]model.UserSettings, error) {
	keys := make([]string, 0, len(emails))
	for _, e := range emails {
		keys = append(keys, normalize(e))
	}
	rows, err := r.pool.Query(ctx, selectColumns+` WHERE email = ANY($1) ORDER BY email`, keys)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetMany"), err)
		return nil, repository.ErrFailedToList
	}
	return r.collect(ctx, "GetMany", rows)
}

func (r *implRepository) Get(ctx context.Context, email string) (model.UserSettings, error) {
	rows, err := r.pool.Query(ctx, selectColumns+` WHERE email = $1`, normalize(email))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Get"), err)
		return model.UserSettings{}, repository.ErrFailedToGet
	}
	users, err := r.collect(ctx, "Get", rows)
	if err != nil {
		return model.UserSettings{}, repository.ErrFailedToGet
	}
	if len(users) == 0 {
		return model.UserSettings{}, repository.ErrNotFound
	}
	return users[0], nil
}

func (r *implRepository) Upsert(ctx context.Context, s model.UserSettings) error {
	const query = `
		INSERT INTO user_settings (
			email, chat_token, calendar_token, default_status, status_mappings, current_event,
			zoom_links_disabled, reminder_override_minutes, last_reminder_event_id, snoozed,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		ON CONFLICT (email) DO UPDATE SET
			chat_token = EXCLUDED.chat_token,
			calendar_token = EXCLUDED.calendar_token,
			default_status = EXCLUDED.default_status,
			status_mappings = EXCLUDED.status_mappings,
			current_event = EXCLUDED.current_event,
			zoom_links_disabled = EXCLUDED.zoom_links_disabled,
			reminder_override_minutes = EXCLUDED.reminder_override_minutes,
			last_reminder_event_id = EXCLUDED.last_reminder_event_id,
			snoozed = EXCLUDED.snoozed,
			updated_at = NOW()`

	row, err := toRow(s)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("Upsert"), err)
		return repository.ErrFailedToUpsert
	}
	_, err = r.pool.Exec(ctx, query,
		row.Email, row.ChatToken, row.CalendarToken, row.DefaultStatus, row.StatusMappings, row.CurrentEvent,
		row.ZoomLinksDisabled, row.ReminderOverrideMinutes, row.LastReminderEventID, row.Snoozed,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Upsert"), err)
		return repository.ErrFailedToUpsert
	}
	return nil
}

func (r *implRepository) SetCurrentEvent(ctx context.Context, email string, event *model.CalendarEvent) error {
	encoded, err := encodeNullable(event)
	if err != nil {
		return err
	}
	return r.update(ctx, "SetCurrentEvent", `UPDATE user_settings SET current_event = $2, updated_at = NOW() WHERE email = $1`, email, encoded)
}

func (r *implRepository) SetLastReminderEventID(ctx context.Context, email, eventID string) error {
	return r.update(ctx, "SetLastReminderEventID", `UPDATE user_settings SET last_reminder_event_id = $2, updated_at = NOW() WHERE email = $1`, email, eventID)
}

func (r *implRepository) ClearCalendarToken(ctx context.Context, email string) error {
	return r.update(ctx, "ClearCalendarToken", `UPDATE user_settings SET calendar_token = '', updated_at = NOW() WHERE email = $1`, email)
}

func (r *implRepository) update(ctx context.Context, method, query, email string, args ...any) error {
	tag, err := r.pool.Exec(ctx, query, append([]any{normalize(email)}, args...)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return repository.ErrFailedToUpdate
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *implRepository) collect(ctx context.Context, method string, rows pgx.Rows) ([]model.UserSettings, error) {
	defer rows.Close()

	var users []model.UserSettings
	for rows.Next() {
		var row settingsRow
		err := rows.Scan(
			&row.Email, &row.ChatToken, &row.CalendarToken, &row.DefaultStatus, &row.StatusMappings, &row.CurrentEvent,
			&row.ZoomLinksDisabled, &row.ReminderOverrideMinutes, &row.LastReminderEventID, &row.Snoozed,
		)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn(method), err)
			return nil, repository.ErrFailedToList
		}
		s, err := row.toModel()
		if err != nil {
			r.l.Errorf(ctx, "%s decode %s: %v", r.dsn(method), row.Email, err)
			return nil, repository.ErrFailedToList
		}
		users = append(users, s)
	}
	if err := rows.Err(); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn(method), err)
		return nil, repository.ErrFailedToList
	}
	return users, nil
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// settingsRow is the column layout of user_settings. JSONB columns are raw bytes.
type settingsRow struct {
	Email                   string
	ChatToken               string
	CalendarToken           string
	DefaultStatus           []byte
	StatusMappings          []byte
	CurrentEvent            []byte
	ZoomLinksDisabled       bool
	ReminderOverrideMinutes int
	LastReminderEventID     string
	Snoozed                 bool
}

func toRow(s model.UserSettings) (settingsRow, error) {
	row := settingsRow{
		Email:                   normalize(s.Email),
		ChatToken:               s.ChatToken,
		CalendarToken:           s.CalendarToken,
		ZoomLinksDisabled:       s.ZoomLinksDisabled,
		ReminderOverrideMinutes: s.MeetingReminderTimingOverrideMinutes,
		LastReminderEventID:     s.LastReminderEventID,
		Snoozed:                 s.Snoozed,
	}

	var err error
	if row.DefaultStatus, err = encodeNullable(s.DefaultStatus); err != nil {
		return settingsRow{}, err
	}
	if row.CurrentEvent, err = encodeNullable(s.CurrentEvent); err != nil {
		return settingsRow{}, err
	}
	mappings := s.StatusMappings
	if mappings == nil {
		mappings = []model.StatusMapping{}
	}
	if row.StatusMappings, err = json.Marshal(mappings); err != nil {
		return settingsRow{}, err
	}
	return row, nil
}

func (row settingsRow) toModel() (model.UserSettings, error) {
	s := model.UserSettings{
		Email:                                row.Email,
		ChatToken:                            row.ChatToken,
		CalendarToken:                        row.CalendarToken,
		ZoomLinksDisabled:                    row.ZoomLinksDisabled,
		MeetingReminderTimingOverrideMinutes: row.ReminderOverrideMinutes,
		LastReminderEventID:                  row.LastReminderEventID,
		Snoozed:                              row.Snoozed,
	}
	if len(row.DefaultStatus) > 0 {
		s.DefaultStatus = &model.ChatStatus{}
		if err := json.Unmarshal(row.DefaultStatus, s.DefaultStatus); err != nil {
			return model.UserSettings{}, err
		}
	}
	if len(row.CurrentEvent) > 0 {
		s.CurrentEvent = &model.CalendarEvent{}
		if err := json.Unmarshal(row.CurrentEvent, s.CurrentEvent); err != nil {
			return model.UserSettings{}, err
		}
	}
	if len(row.StatusMappings) > 0 {
		if err := json.Unmarshal(row.StatusMappings, &s.StatusMappings); err != nil {
			return model.UserSettings{}, err
		}
	}
	return s, nil
}

// encodeNullable returns nil for a nil pointer so the column is stored as NULL.
func encodeNullable[T any](v *T) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}
