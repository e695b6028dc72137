package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/models"
	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/notify"
)

// EmergencyOverlay is how long the demo page shows the emergency confirmation.
const EmergencyOverlay = 3 * time.Second

// ErrNotPassed is returned when dispatch is requested for a failed analysis.
var ErrNotPassed = errors.New("analysis did not pass")

type DemoService interface {
	SendDispatch(ctx context.Context, passed bool, accidentType, reporter string) (string, error)
	SendEmergency(ctx context.Context, loc *models.Location, reporter string) (string, error)
}

type demoService struct {
	notifier notify.Notifier
	logger   *zap.Logger
	now      func() time.Time
}

func NewDemoService(notifier notify.Notifier, logger *zap.Logger) DemoService {
	return &demoService{notifier: notifier, logger: logger, now: time.Now}
}

func (s *demoService) SendDispatch(ctx context.Context, passed bool, accidentType, reporter string) (string, error) {
	if !passed {
		return "", ErrNotPassed
	}

	ev := models.Event{
		ID:           uuid.NewString(),
		Kind:         models.EventDispatch,
		AccidentType: accidentType,
		Reporter:     reporter,
		CreatedAt:    s.now().UTC(),
	}
	s.publish(ctx, ev)

	subject := accidentType
	if subject == "" {
		subject = "accident"
	}
	return fmt.Sprintf("Dispatch sent for %s. Emergency services notified.", subject), nil
}

// SendEmergency publishes the alert with loc attached. loc is not kept
// anywhere once the notifiers return.
func (s *demoService) SendEmergency(ctx context.Context, loc *models.Location, reporter string) (string, error) {
	ev := models.Event{
		ID:        uuid.NewString(),
		Kind:      models.EventEmergency,
		Location:  loc,
		Reporter:  reporter,
		CreatedAt: s.now().UTC(),
	}
	s.publish(ctx, ev)

	if loc == nil {
		return "Emergency alert sent. Location unavailable.", nil
	}
	return "Emergency alert sent with your location.", nil
}

// publish never fails the request: the demo actions always confirm.
func (s *demoService) publish(ctx context.Context, ev models.Event) {
	if err := s.notifier.Notify(ctx, ev); err != nil {
		s.logger.Warn("Event delivery incomplete", zap.String("event_id", ev.ID), zap.Error(err))
	}
}
