package usecase

import (
	"time"

	"calendar-status-sync/internal/calendar"
	"calendar-status-sync/internal/chat"
	"calendar-status-sync/internal/engine"
	"calendar-status-sync/internal/settings/repository"
	pkgLog "calendar-status-sync/pkg/log"
)

const defaultConcurrency = 8

type implUseCase struct {
	l           pkgLog.Logger
	calendar    calendar.Provider
	chat        chat.Provider
	repo        repository.Repository
	resolver    engine.StatusResolver
	reminders   engine.ReminderEngine
	botToken    string
	concurrency int
	now         func() time.Time
}

// New creates a new reconcile UseCase instance. rooms may be nil when no room
// directory is configured.
func New(
	l pkgLog.Logger,
	calendarProvider calendar.Provider,
	chatProvider chat.Provider,
	repo repository.Repository,
	rooms engine.RoomDirectory,
	botToken string,
	concurrency int,
) *implUseCase {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &implUseCase{
		l:           l,
		calendar:    calendarProvider,
		chat:        chatProvider,
		repo:        repo,
		resolver:    engine.NewStatusResolver(time.Now),
		reminders:   engine.NewReminderEngine(engine.NewLinkExtractor(rooms)),
		botToken:    botToken,
		concurrency: concurrency,
		now:         time.Now,
	}
}
