package audit

import (
	"context"
	"log/slog"
)

// Logger writes audit events as structured log records.
type Logger struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Logger {
	if log == nil {
		log = slog.Default()
	}
	return &Logger{log: log.With("component", "audit")}
}

func (l *Logger) Log(ev Event) error {
	attrs := []any{
		"action", ev.Action,
		"entity", ev.Entity,
		"entity_id", ev.EntityID,
	}
	if ev.ClientID != 0 {
		attrs = append(attrs, "client_id", ev.ClientID)
	}
	if ev.Metadata != nil {
		attrs = append(attrs, "metadata", ev.Metadata)
	}

	l.log.Log(context.Background(), slog.LevelInfo, "audit event", attrs...)
	return nil
}
