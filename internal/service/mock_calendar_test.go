package service

import (
	"context"
	"sync"
	"time"

	"github.com/kwon0144/HarborHub/pkg/gcal"
)

// ── Mock CalendarAPI ──

type mockCalendar struct {
	busy           []gcal.Interval
	busyErr        error
	slotFree       bool
	freeErr        error
	inserted       []gcal.EventInput
	insertResp     *gcal.Event
	insertErr      error
	lastCalendarID string
}

func newMockCalendar() *mockCalendar {
	return &mockCalendar{
		slotFree:   true,
		insertResp: &gcal.Event{ID: "evt-1", HTMLLink: "https://calendar.example/evt-1"},
	}
}

func (m *mockCalendar) ListBusy(_ context.Context, calendarID, _, _, _ string) ([]gcal.Interval, error) {
	m.lastCalendarID = calendarID
	if m.busyErr != nil {
		return nil, m.busyErr
	}
	return m.busy, nil
}

func (m *mockCalendar) IsSlotFree(_ context.Context, calendarID string, _, _ time.Time) (bool, error) {
	m.lastCalendarID = calendarID
	if m.freeErr != nil {
		return false, m.freeErr
	}
	return m.slotFree, nil
}

func (m *mockCalendar) InsertEvent(_ context.Context, in gcal.EventInput) (*gcal.Event, error) {
	if m.insertErr != nil {
		return nil, m.insertErr
	}
	m.inserted = append(m.inserted, in)
	return m.insertResp, nil
}

// ── Mock Notifier ──

type mockNotifier struct {
	mu      sync.Mutex
	notices []EnrollmentNotice
	done    chan struct{}
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{done: make(chan struct{}, 16)}
}

func (m *mockNotifier) SendEnrollmentConfirmation(_ context.Context, notice EnrollmentNotice) string {
	m.mu.Lock()
	m.notices = append(m.notices, notice)
	m.mu.Unlock()
	m.done <- struct{}{}
	return OutcomeSent
}

// waitForNotice blocks until one confirmation was dispatched or the
// timeout expires.
func (m *mockNotifier) waitForNotice(timeout time.Duration) bool {
	select {
	case <-m.done:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (m *mockNotifier) sent() []EnrollmentNotice {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]EnrollmentNotice, len(m.notices))
	copy(out, m.notices)
	return out
}
