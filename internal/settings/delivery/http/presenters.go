package http

import (
	"time"

	"calendar-status-sync/internal/model"
	"calendar-status-sync/internal/settings"
	"calendar-status-sync/pkg/response"
)

// --- Request DTOs ---

type chatStatusReq struct {
	Text       string     `json:"text"`
	Emoji      string     `json:"emoji"`
	Expiration *time.Time `json:"expiration"`
	DND        bool       `json:"dnd"`
}

func (r chatStatusReq) toModel() model.ChatStatus {
	cs := model.ChatStatus{Text: r.Text, Emoji: r.Emoji, DND: r.DND}
	if r.Expiration != nil {
		cs.Expiration = *r.Expiration
	}
	return cs
}

type statusMappingReq struct {
	CalendarText string        `json:"calendar_text"`
	ChatStatus   chatStatusReq `json:"chat_status"`
}

// updateReq is a partial update: omitted fields are left unchanged.
type updateReq struct {
	Email                                string              `json:"-"`
	ChatToken                            *string             `json:"chat_token"`
	CalendarToken                        *string             `json:"calendar_token"`
	DefaultStatus                        *chatStatusReq      `json:"default_status"`
	ClearDefaultStatus                   bool                `json:"clear_default_status"`
	StatusMappings                       *[]statusMappingReq `json:"status_mappings"`
	ZoomLinksDisabled                    *bool               `json:"zoom_links_disabled"`
	MeetingReminderTimingOverrideMinutes *int                `json:"meeting_reminder_timing_override_minutes"`
	Snoozed                              *bool               `json:"snoozed"`
}

func (r updateReq) toInput() settings.UpdateInput {
	in := settings.UpdateInput{
		ChatToken:                            r.ChatToken,
		CalendarToken:                        r.CalendarToken,
		ClearDefaultStatus:                   r.ClearDefaultStatus,
		ZoomLinksDisabled:                    r.ZoomLinksDisabled,
		MeetingReminderTimingOverrideMinutes: r.MeetingReminderTimingOverrideMinutes,
		Snoozed:                              r.Snoozed,
	}
	if r.DefaultStatus != nil {
		ds := r.DefaultStatus.toModel()
		in.DefaultStatus = &ds
	}
	if r.StatusMappings != nil {
		mappings := make([]model.StatusMapping, len(*r.StatusMappings))
		for i, m := range *r.StatusMappings {
			mappings[i] = model.StatusMapping{CalendarText: m.CalendarText, ChatStatus: m.ChatStatus.toModel()}
		}
		in.StatusMappings = &mappings
	}
	return in
}

// --- Response DTOs ---

type chatStatusResp struct {
	Text       string             `json:"text"`
	Emoji      string             `json:"emoji"`
	Expiration *response.DateTime `json:"expiration,omitempty"`
	DND        bool               `json:"dnd"`
}

func newChatStatusResp(cs model.ChatStatus) chatStatusResp {
	return chatStatusResp{
		Text:       cs.Text,
		Emoji:      cs.Emoji,
		Expiration: response.NewDateTime(cs.Expiration),
		DND:        cs.DND,
	}
}

type statusMappingResp struct {
	CalendarText string         `json:"calendar_text"`
	ChatStatus   chatStatusResp `json:"chat_status"`
}

type currentEventResp struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	StartTime response.DateTime `json:"start_time"`
	EndTime   response.DateTime `json:"end_time"`
	ShowAs    string            `json:"show_as"`
}

// settingsResp never carries credentials, only whether they are set.
type settingsResp struct {
	Email                                string              `json:"email"`
	HasChatToken                         bool                `json:"has_chat_token"`
	HasCalendarToken                     bool                `json:"has_calendar_token"`
	DefaultStatus                        *chatStatusResp     `json:"default_status,omitempty"`
	StatusMappings                       []statusMappingResp `json:"status_mappings"`
	CurrentEvent                         *currentEventResp   `json:"current_event,omitempty"`
	ZoomLinksDisabled                    bool                `json:"zoom_links_disabled"`
	MeetingReminderTimingOverrideMinutes int                 `json:"meeting_reminder_timing_override_minutes"`
	LastReminderEventID                  string              `json:"last_reminder_event_id,omitempty"`
	Snoozed                              bool                `json:"snoozed"`
}

func (h *handler) newSettingsResp(s model.UserSettings) settingsResp {
	resp := settingsResp{
		Email:                                s.Email,
		HasChatToken:                         s.ChatToken != "",
		HasCalendarToken:                     s.CalendarToken != "",
		StatusMappings:                       make([]statusMappingResp, len(s.StatusMappings)),
		ZoomLinksDisabled:                    s.ZoomLinksDisabled,
		MeetingReminderTimingOverrideMinutes: s.MeetingReminderTimingOverrideMinutes,
		LastReminderEventID:                  s.LastReminderEventID,
		Snoozed:                              s.Snoozed,
	}
	if s.DefaultStatus != nil {
		ds := newChatStatusResp(*s.DefaultStatus)
		resp.DefaultStatus = &ds
	}
	for i, m := range s.StatusMappings {
		resp.StatusMappings[i] = statusMappingResp{CalendarText: m.CalendarText, ChatStatus: newChatStatusResp(m.ChatStatus)}
	}
	if ev := s.CurrentEvent; ev != nil {
		resp.CurrentEvent = &currentEventResp{
			ID:        ev.ID,
			Name:      ev.Name,
			StartTime: response.DateTime(ev.StartTime),
			EndTime:   response.DateTime(ev.EndTime),
			ShowAs:    ev.ShowAs.String(),
		}
	}
	return resp
}
