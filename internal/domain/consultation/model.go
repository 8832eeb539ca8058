package consultation

// Consultation is one entry on the dashboard's consultation list. Localized
// fields come in pairs: the bare name holds the Arabic text and the _en
// sibling the English text.
type Consultation struct {
	ID            int    `json:"id"`
	PatientName   string `json:"patient_name"`
	PatientNameEN string `json:"patient_name_en"`
	Date          string `json:"date"`
	Doctor        string `json:"doctor"`
	DoctorEN      string `json:"doctor_en"`
	Specialty     string `json:"specialty"`
	SpecialtyEN   string `json:"specialty_en"`
	Status        string `json:"status"`
	StatusEN      string `json:"status_en"`
}

// Speaker roles in a transcript.
const (
	SpeakerDoctor  = "doctor"
	SpeakerPatient = "patient"
)

// TranscriptLine is a single utterance. Text mixes Arabic and English inline.
type TranscriptLine struct {
	Speaker     string `json:"speaker"`
	Text        string `json:"text"`
	Timestamp   string `json:"timestamp"`
	Highlighted bool   `json:"highlighted"`
}

// MissingInfoAlert flags a clinically relevant field absent from the transcript.
// Here the bare name is English and the _ar sibling Arabic.
type MissingInfoAlert struct {
	Field         string `json:"field"`
	FieldAR       string `json:"field_ar"`
	Description   string `json:"description"`
	DescriptionAR string `json:"description_ar"`
	Importance    string `json:"importance"`
}

type SoapNote struct {
	Subjective   string `json:"subjective"`
	SubjectiveAR string `json:"subjective_ar"`
	Objective    string `json:"objective"`
	ObjectiveAR  string `json:"objective_ar"`
	Assessment   string `json:"assessment"`
	AssessmentAR string `json:"assessment_ar"`
	Plan         string `json:"plan"`
	PlanAR       string `json:"plan_ar"`
}

// ICDCode is a suggested ICD-10 diagnosis with a confidence in [0, 1].
type ICDCode struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}
