package reporting

const (
	doctorHuda     = "د. هدى"
	doctorHudaEN   = "Dr. Huda"
	specialtyOBGYN = "أمراض النساء والتوليد"
	specialtyEN    = "OB/GYN"
)

func seedReports() []Report {
	return []Report{
		{
			ID:            101,
			PatientName:   "فاطمة أحمد",
			PatientNameEN: "Fatima Ahmed",
			Date:          "2025-06-24",
			Type:          "تقرير استشارة",
			TypeEN:        "Consultation Report",
			Doctor:        doctorHuda,
			DoctorEN:      doctorHudaEN,
			Specialty:     specialtyOBGYN,
			SpecialtyEN:   specialtyEN,
			ICDCodes:      []string{"N94.6", "N80.0"},
			Symptoms:      "آلام في البطن",
			SymptomsEN:    "Abdominal Pain",
		},
		{
			ID:            102,
			PatientName:   "ليلى محمد",
			PatientNameEN: "Layla Mohamed",
			Date:          "2025-06-20",
			Type:          "تقرير متابعة",
			TypeEN:        "Follow-up Report",
			Doctor:        doctorHuda,
			DoctorEN:      doctorHudaEN,
			Specialty:     specialtyOBGYN,
			SpecialtyEN:   specialtyEN,
			ICDCodes:      []string{"O20.0"},
			Symptoms:      "نزيف خفيف",
			SymptomsEN:    "Light Bleeding",
		},
		{
			ID:            103,
			PatientName:   "سارة خالد",
			PatientNameEN: "Sara Khalid",
			Date:          "2025-06-18",
			Type:          "تقرير استشارة",
			TypeEN:        "Consultation Report",
			Doctor:        doctorHuda,
			DoctorEN:      doctorHudaEN,
			Specialty:     specialtyOBGYN,
			SpecialtyEN:   specialtyEN,
			ICDCodes:      []string{"Z34.0"},
			Symptoms:      "فحص روتيني للحمل",
			SymptomsEN:    "Routine Pregnancy Check",
		},
		{
			ID:            104,
			PatientName:   "نورا عبدالله",
			PatientNameEN: "Noura Abdullah",
			Date:          "2025-06-15",
			Type:          "تقرير متابعة",
			TypeEN:        "Follow-up Report",
			Doctor:        doctorHuda,
			DoctorEN:      doctorHudaEN,
			Specialty:     specialtyOBGYN,
			SpecialtyEN:   specialtyEN,
			ICDCodes:      []string{"Z30.9"},
			Symptoms:      "استشارة تنظيم الأسرة",
			SymptomsEN:    "Family Planning Consultation",
		},
	}
}

func seedStatistics() Statistics {
	return Statistics{
		MonthlyConsultations: []MonthlyCount{
			{Month: "January", Count: 45},
			{Month: "February", Count: 52},
			{Month: "March", Count: 48},
			{Month: "April", Count: 61},
			{Month: "May", Count: 58},
			{Month: "June", Count: 64},
		},
		TopDiagnoses: []DiagnosisCount{
			{Diagnosis: "Dysmenorrhea", DiagnosisAR: "عسر الطمث", Count: 38},
			{Diagnosis: "Pregnancy Check", DiagnosisAR: "فحص الحمل", Count: 32},
			{Diagnosis: "PCOS", DiagnosisAR: "متلازمة المبيض المتعدد الكيسات", Count: 27},
			{Diagnosis: "UTI", DiagnosisAR: "التهاب المسالك البولية", Count: 21},
			{Diagnosis: "Endometriosis", DiagnosisAR: "بطانة الرحم المهاجرة", Count: 18},
		},
		ConsultationTypes: []ConsultationCount{
			{Type: "Initial Consultation", TypeAR: "استشارة أولية", Count: 150},
			{Type: "Follow-up", TypeAR: "متابعة", Count: 210},
			{Type: "Urgent Care", TypeAR: "رعاية عاجلة", Count: 45},
		},
		EfficiencyMetrics: EfficiencyMetrics{
			AvgConsultationTime:      18.5,
			AvgReportGenerationTime:  3.2,
			AvgTranscriptionAccuracy: 0.94,
			AvgICDCodeConfidence:     0.87,
		},
	}
}
