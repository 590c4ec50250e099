package auth

import "github.com/rs/zerolog"

// Level classifies a user-visible notification.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	}
	return "info"
}

// Notifier receives the transient, user-visible notifications the manager
// emits on every state change and failure, the toast channel of the web
// client. Implementations must not block.
type Notifier interface {
	Notify(level Level, message string)
}

// LogNotifier writes notifications to a zerolog logger. It is the default
// when no UI notifier is wired in.
type LogNotifier struct {
	Logger zerolog.Logger
}

func (n LogNotifier) Notify(level Level, message string) {
	event := n.Logger.Info()
	if level == LevelError {
		event = n.Logger.Warn()
	}
	event.Str("kind", level.String()).Msg(message)
}
