package consultation

import (
	"context"
	"fmt"
)

// Service exposes consultation reads to the HTTP layer.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListConsultations returns every consultation, unfiltered and unpaginated.
func (s *Service) ListConsultations(ctx context.Context) ([]Consultation, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list consultations: %w", err)
	}
	return items, nil
}

// GetTranscript returns the transcript for a consultation. The id is not
// checked against the consultation list.
func (s *Service) GetTranscript(ctx context.Context, consultationID int) ([]TranscriptLine, error) {
	lines, err := s.repo.Transcript(ctx, consultationID)
	if err != nil {
		return nil, fmt.Errorf("transcript for consultation %d: %w", consultationID, err)
	}
	return lines, nil
}

func (s *Service) GetMissingInfo(ctx context.Context, consultationID int) (*MissingInfoAlert, error) {
	alert, err := s.repo.MissingInfo(ctx, consultationID)
	if err != nil {
		return nil, fmt.Errorf("missing info for consultation %d: %w", consultationID, err)
	}
	return alert, nil
}

func (s *Service) GetSoapNote(ctx context.Context, consultationID int) (*SoapNote, error) {
	note, err := s.repo.SoapNote(ctx, consultationID)
	if err != nil {
		return nil, fmt.Errorf("soap note for consultation %d: %w", consultationID, err)
	}
	return note, nil
}

func (s *Service) GetICDCodes(ctx context.Context, consultationID int) ([]ICDCode, error) {
	codes, err := s.repo.ICDCodes(ctx, consultationID)
	if err != nil {
		return nil, fmt.Errorf("icd codes for consultation %d: %w", consultationID, err)
	}
	return codes, nil
}
