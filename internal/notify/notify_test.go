package notify

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/models"
)

var testTime = time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)

func TestFormatEvent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ev   models.Event
		want []string
	}{
		{
			name: "dispatch",
			ev:   models.Event{ID: "e1", Kind: models.EventDispatch, AccidentType: "fire-accident", CreatedAt: testTime},
			want: []string{"Dispatch requested for fire-accident", "ID: e1", "2026-03-01 10:30:00 UTC"},
		},
		{
			name: "emergency with location",
			ev: models.Event{ID: "e2", Kind: models.EventEmergency, Reporter: "asha@example.com",
				Location: &models.Location{Latitude: 12.9716, Longitude: 77.5946}, CreatedAt: testTime},
			want: []string{"Emergency alert", "Reporter: asha@example.com", "Location: 12.97160, 77.59460"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := FormatEvent(tc.ev)
			for _, w := range tc.want {
				if !strings.Contains(got, w) {
					t.Errorf("FormatEvent() = %q, missing %q", got, w)
				}
			}
		})
	}
}

type fakeNotifier struct {
	name   string
	err    error
	events []models.Event
}

func (f *fakeNotifier) Name() string { return f.name }

func (f *fakeNotifier) Notify(_ context.Context, ev models.Event) error {
	f.events = append(f.events, ev)
	return f.err
}

func TestMultiDeliversToAll(t *testing.T) {
	t.Parallel()

	ok := &fakeNotifier{name: "ok"}
	bad := &fakeNotifier{name: "bad", err: errors.New("boom")}
	m := NewMulti(zap.NewNop(), NewLogNotifier(zap.NewNop()), bad, ok)

	err := m.Notify(context.Background(), models.Event{ID: "e1", Kind: models.EventDispatch})
	if err == nil || !strings.Contains(err.Error(), "bad: boom") {
		t.Errorf("Notify() error = %v, want bad: boom", err)
	}
	if len(ok.events) != 1 || len(bad.events) != 1 {
		t.Errorf("deliveries ok=%d bad=%d, want 1 each", len(ok.events), len(bad.events))
	}
}

type fakeSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, f.err
}

func TestTelegramNotifier(t *testing.T) {
	t.Parallel()

	s := &fakeSender{}
	n := &TelegramNotifier{api: s, chatID: 42, logger: zap.NewNop()}

	ev := models.Event{ID: "e1", Kind: models.EventEmergency, Location: &models.Location{Latitude: 1, Longitude: 2}, CreatedAt: testTime}
	if err := n.Notify(context.Background(), ev); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	msg, ok := s.sent[0].(tgbotapi.MessageConfig)
	if !ok {
		t.Fatalf("sent %T, want MessageConfig", s.sent[0])
	}
	if msg.ChatID != 42 {
		t.Errorf("ChatID = %d, want 42", msg.ChatID)
	}
	if msg.ReplyMarkup == nil {
		t.Error("emergency with location has no map button")
	}

	s.err = errors.New("network")
	if err := n.Notify(context.Background(), ev); err == nil {
		t.Error("Notify() returned nil on send failure")
	}
}

type fakeWriter struct {
	msgs []kafka.Message
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func TestKafkaNotifier(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	n := &KafkaNotifier{writer: w, timeout: time.Second, logger: zap.NewNop()}

	ev := models.Event{ID: "e1", Kind: models.EventDispatch, AccidentType: "multi-vehicle", CreatedAt: testTime}
	if err := n.Notify(context.Background(), ev); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if len(w.msgs) != 1 {
		t.Fatalf("wrote %d messages, want 1", len(w.msgs))
	}
	if string(w.msgs[0].Key) != "dispatch" {
		t.Errorf("Key = %q, want dispatch", w.msgs[0].Key)
	}
	var got models.Event
	if err := json.Unmarshal(w.msgs[0].Value, &got); err != nil {
		t.Fatal(err)
	}
	if got.AccidentType != "multi-vehicle" {
		t.Errorf("decoded AccidentType = %q", got.AccidentType)
	}
}
