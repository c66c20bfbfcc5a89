// Package calendar holds the interview scheduling collaborator. The real
// integration (Google Calendar, Microsoft Graph) lives behind the Scheduler
// interface; the service ships with a mock so the stage-transition logic
// stays untouched when a real one is substituted.
package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

const DefaultDurationMinutes = 30

// ErrSchedulingFailed wraps collaborator failures. Unlike the screening
// forward, scheduling errors are surfaced to the caller.
var ErrSchedulingFailed = errors.New("interview scheduling failed")

// Request describes the interview to schedule.
type Request struct {
	CandidateEmail   string
	CandidateName    string
	InterviewerEmail string
	StartTime        time.Time
	DurationMinutes  int
	Location         string
}

// Event is the scheduling confirmation returned by the collaborator.
type Event struct {
	EventID     string
	MeetingLink string
	StartTime   time.Time
	EndTime     time.Time
}

type Scheduler interface {
	ScheduleInterview(ctx context.Context, req Request) (*Event, error)
}

// MockScheduler simulates a calendar integration in-process.
type MockScheduler struct {
	logger *slog.Logger
	delay  time.Duration
}

func NewMockScheduler(logger *slog.Logger, delay time.Duration) *MockScheduler {
	return &MockScheduler{
		logger: logger,
		delay:  delay,
	}
}

func (m *MockScheduler) ScheduleInterview(ctx context.Context, req Request) (*Event, error) {
	if req.CandidateEmail == "" || req.StartTime.IsZero() {
		return nil, fmt.Errorf("%w: candidate email and start time are required", ErrSchedulingFailed)
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = DefaultDurationMinutes
	}

	m.logger.Info("Scheduling interview",
		slog.String("candidate", req.CandidateName),
		slog.String("candidate_email", req.CandidateEmail),
		slog.String("interviewer_email", req.InterviewerEmail),
		slog.Time("start_time", req.StartTime),
		slog.Int("duration_minutes", duration),
		slog.String("location", req.Location),
	)

	// Simulate the round trip to the calendar provider
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrSchedulingFailed, ctx.Err())
		}
	}

	return &Event{
		EventID:     "evt_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:9],
		MeetingLink: fmt.Sprintf("https://zoom.us/j/%d", rand.Int63n(1_000_000_000)),
		StartTime:   req.StartTime,
		EndTime:     req.StartTime.Add(time.Duration(duration) * time.Minute),
	}, nil
}
