package reporting

// Report is a generated consultation or follow-up report. Localized fields
// pair an Arabic bare name with an _en English sibling.
type Report struct {
	ID            int      `json:"id"`
	PatientName   string   `json:"patient_name"`
	PatientNameEN string   `json:"patient_name_en"`
	Date          string   `json:"date"`
	Type          string   `json:"type"`
	TypeEN        string   `json:"type_en"`
	Doctor        string   `json:"doctor"`
	DoctorEN      string   `json:"doctor_en"`
	Specialty     string   `json:"specialty"`
	SpecialtyEN   string   `json:"specialty_en"`
	ICDCodes      []string `json:"icd_codes"`
	Symptoms      string   `json:"symptoms"`
	SymptomsEN    string   `json:"symptoms_en"`
}

// Statistics is the dashboard aggregate.
type Statistics struct {
	MonthlyConsultations []MonthlyCount      `json:"monthly_consultations"`
	TopDiagnoses         []DiagnosisCount    `json:"top_diagnoses"`
	ConsultationTypes    []ConsultationCount `json:"consultation_types"`
	EfficiencyMetrics    EfficiencyMetrics   `json:"efficiency_metrics"`
}

type MonthlyCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type DiagnosisCount struct {
	Diagnosis   string `json:"diagnosis"`
	DiagnosisAR string `json:"diagnosis_ar"`
	Count       int    `json:"count"`
}

type ConsultationCount struct {
	Type   string `json:"type"`
	TypeAR string `json:"type_ar"`
	Count  int    `json:"count"`
}

// EfficiencyMetrics holds averages. Times are in minutes; accuracy and
// confidence are ratios in [0, 1].
type EfficiencyMetrics struct {
	AvgConsultationTime      float64 `json:"avg_consultation_time"`
	AvgReportGenerationTime  float64 `json:"avg_report_generation_time"`
	AvgTranscriptionAccuracy float64 `json:"avg_transcription_accuracy"`
	AvgICDCodeConfidence     float64 `json:"avg_icd_code_confidence"`
}
