// internal/app/status_service.go
package app

import (
	"context"
	"errors"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

// StatusFetcher returns homeworks updated since fromDate.
type StatusFetcher interface {
	FetchStatuses(ctx context.Context, fromDate int64) (*homework.Response, error)
}

// StatusService runs poll cycles: fetch, format, notify on change.
// It is not safe for concurrent use; the scheduler runs one cycle at a time.
type StatusService struct {
	fetcher     StatusFetcher
	notifier    *Notifier
	logger      *logrus.Entry
	cursor      int64
	lastMessage string
}

func NewStatusService(fetcher StatusFetcher, notifier *Notifier, logger *logrus.Entry) *StatusService {
	return &StatusService{
		fetcher:  fetcher,
		notifier: notifier,
		logger:   logger.WithField("component", "status_service"),
	}
}

// Cursor is the from_date used by the next cycle.
func (s *StatusService) Cursor() int64 { return s.cursor }

// LastMessage is the most recently delivered notification text.
func (s *StatusService) LastMessage() string { return s.lastMessage }

// Poll runs a single cycle and logs its outcome. It never panics on API or
// payload errors; those are left for the next cycle to retry.
func (s *StatusService) Poll(ctx context.Context) {
	if err := s.RunCycle(ctx); err != nil {
		s.logCycleError(err)
	}
}

// RunCycle fetches statuses from the current cursor and notifies about the
// latest homework if its message changed. On error the cursor is left as is.
func (s *StatusService) RunCycle(ctx context.Context) error {
	logCtx := s.logger.WithField("from_date", s.cursor)

	resp, err := s.fetcher.FetchStatuses(ctx, s.cursor)
	if err != nil {
		return err
	}

	record, err := resp.Latest()
	if errors.Is(err, homework.ErrNoHomeworks) {
		logCtx.Debug("No homework updates since last poll")
		s.advanceCursor(resp)
		return nil
	}

	message, err := homework.FormatStatus(record)
	if err != nil {
		return err
	}

	if message != s.lastMessage {
		if s.notifier.Notify(message) {
			s.lastMessage = message
			logCtx.WithField("message", message).Info("Homework status change sent")
		}
	} else {
		logCtx.Debug("Homework status has not changed")
	}

	s.advanceCursor(resp)
	return nil
}

func (s *StatusService) advanceCursor(resp *homework.Response) {
	if resp.CurrentDate == nil {
		s.logger.WithField("from_date", s.cursor).Warn("Response has no valid current_date, keeping cursor")
		return
	}
	s.cursor = *resp.CurrentDate
}

func (s *StatusService) logCycleError(err error) {
	logCtx := s.logger.WithError(err).WithField("from_date", s.cursor)

	var statusErr *homework.UnexpectedStatusError
	switch {
	case errors.Is(err, context.Canceled):
		logCtx.Info("Poll cycle cancelled")
	case errors.As(err, &statusErr):
		logCtx.WithField("status_code", statusErr.StatusCode).Error("Homework API returned unexpected status")
	case errors.Is(err, homework.ErrTransientFetch):
		logCtx.Error("Homework API is unreachable")
	case errors.Is(err, homework.ErrMalformedResponse):
		logCtx.Error("Homework API returned a body that is not JSON")
	case errors.Is(err, homework.ErrSchema):
		logCtx.Error("Homework API response has unexpected shape")
	case errors.Is(err, homework.ErrUnknownVerdict):
		logCtx.Error("Homework has an unknown review status")
	default:
		logCtx.Error("Poll cycle failed")
	}
}
