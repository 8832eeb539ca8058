package consultation

import "context"

// Repository provides read access to consultations and the artefacts derived
// from them.
type Repository interface {
	List(ctx context.Context) ([]Consultation, error)
	Transcript(ctx context.Context, consultationID int) ([]TranscriptLine, error)
	MissingInfo(ctx context.Context, consultationID int) (*MissingInfoAlert, error)
	SoapNote(ctx context.Context, consultationID int) (*SoapNote, error)
	ICDCodes(ctx context.Context, consultationID int) ([]ICDCode, error)
}
