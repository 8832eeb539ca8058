package consultation

import (
	"context"
	"slices"
)

// MemoryRepository serves a fixed data set loaded at construction. Every
// consultation id maps to the same transcript, alert, note and code list.
// It is safe for concurrent use; nothing is written after NewMemoryRepository.
type MemoryRepository struct {
	consultations []Consultation
	transcript    []TranscriptLine
	missingInfo   MissingInfoAlert
	soap          SoapNote
	icdCodes      []ICDCode
}

// NewMemoryRepository returns a repository over the seeded demo data.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		consultations: seedConsultations(),
		transcript:    seedTranscript(),
		missingInfo:   seedMissingInfo(),
		soap:          seedSoapNote(),
		icdCodes:      seedICDCodes(),
	}
}

func (r *MemoryRepository) List(_ context.Context) ([]Consultation, error) {
	return slices.Clone(r.consultations), nil
}

func (r *MemoryRepository) Transcript(_ context.Context, _ int) ([]TranscriptLine, error) {
	return slices.Clone(r.transcript), nil
}

func (r *MemoryRepository) MissingInfo(_ context.Context, _ int) (*MissingInfoAlert, error) {
	alert := r.missingInfo
	return &alert, nil
}

func (r *MemoryRepository) SoapNote(_ context.Context, _ int) (*SoapNote, error) {
	note := r.soap
	return &note, nil
}

func (r *MemoryRepository) ICDCodes(_ context.Context, _ int) ([]ICDCode, error) {
	return slices.Clone(r.icdCodes), nil
}
