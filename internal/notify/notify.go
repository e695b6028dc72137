// Package notify fans demo dispatch and emergency events out to the
// configured sinks.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/models"
)

// Notifier delivers one event to one sink.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, ev models.Event) error
}

// Multi delivers to every notifier and joins their errors.
type Multi struct {
	notifiers []Notifier
	logger    *zap.Logger
}

func NewMulti(logger *zap.Logger, notifiers ...Notifier) *Multi {
	return &Multi{notifiers: notifiers, logger: logger}
}

func (m *Multi) Name() string { return "multi" }

func (m *Multi) Notify(ctx context.Context, ev models.Event) error {
	var errs []error
	for _, n := range m.notifiers {
		if err := n.Notify(ctx, ev); err != nil {
			m.logger.Error("Failed to deliver event",
				zap.String("notifier", n.Name()),
				zap.String("event_id", ev.ID),
				zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", n.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// LogNotifier writes events to the application log.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (l *LogNotifier) Name() string { return "log" }

func (l *LogNotifier) Notify(_ context.Context, ev models.Event) error {
	fields := []zap.Field{
		zap.String("event_id", ev.ID),
		zap.String("kind", string(ev.Kind)),
		zap.String("accident_type", ev.AccidentType),
		zap.String("reporter", ev.Reporter),
	}
	if ev.Location != nil {
		fields = append(fields, zap.Float64("latitude", ev.Location.Latitude), zap.Float64("longitude", ev.Location.Longitude))
	}
	l.logger.Info("Demo event", fields...)
	return nil
}

// FormatEvent renders an event as a short human-readable message.
func FormatEvent(ev models.Event) string {
	var b strings.Builder
	switch ev.Kind {
	case models.EventDispatch:
		b.WriteString("🚑 Dispatch requested")
		if ev.AccidentType != "" {
			fmt.Fprintf(&b, " for %s", ev.AccidentType)
		}
	case models.EventEmergency:
		b.WriteString("🚨 Emergency alert")
	default:
		fmt.Fprintf(&b, "Event %s", ev.Kind)
	}
	if ev.Reporter != "" {
		fmt.Fprintf(&b, "\nReporter: %s", ev.Reporter)
	}
	if ev.Location != nil {
		fmt.Fprintf(&b, "\nLocation: %.5f, %.5f", ev.Location.Latitude, ev.Location.Longitude)
	}
	fmt.Fprintf(&b, "\nTime: %s\nID: %s", ev.CreatedAt.UTC().Format("2006-01-02 15:04:05 MST"), ev.ID)
	return b.String()
}
