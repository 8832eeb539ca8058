package emr

import (
	"context"

	"github.com/rs/zerolog"
)

// Service is the EMR integration point. No EMR is connected: every
// submission is logged and acknowledged as pushed.
type Service struct {
	logger zerolog.Logger
}

func NewService(logger zerolog.Logger) *Service {
	return &Service{logger: logger.With().Str("component", "emr").Logger()}
}

// Push acknowledges a submission. It never fails.
func (s *Service) Push(_ context.Context, sub Submission) *PushResult {
	s.logger.Info().
		Str("submission_id", sub.ID).
		Str("content_type", sub.ContentType).
		Int64("bytes", sub.Size).
		Msg("note accepted for EMR")

	return &PushResult{Success: true, Message: PushMessage}
}
