package consultation

func seedConsultations() []Consultation {
	return []Consultation{
		{
			ID:            1,
			PatientName:   "فاطمة أحمد",
			PatientNameEN: "Fatima Ahmed",
			Date:          "2025-06-24",
			Doctor:        "د. هدى",
			DoctorEN:      "Dr. Huda",
			Specialty:     "أمراض النساء والتوليد",
			SpecialtyEN:   "OB/GYN",
			Status:        "مكتمل",
			StatusEN:      "Completed",
		},
		{
			ID:            2,
			PatientName:   "ليلى محمد",
			PatientNameEN: "Layla Mohamed",
			Date:          "2025-06-25",
			Doctor:        "د. هدى",
			DoctorEN:      "Dr. Huda",
			Specialty:     "أمراض النساء والتوليد",
			SpecialtyEN:   "OB/GYN",
			Status:        "قيد التقدم",
			StatusEN:      "In Progress",
		},
	}
}

// seedTranscript is the OB/GYN consultation shown for every consultation id.
func seedTranscript() []TranscriptLine {
	return []TranscriptLine{
		{Speaker: SpeakerDoctor, Text: "السلام عليكم Fatima, how are you feeling today?", Timestamp: "00:00:03"},
		{Speaker: SpeakerPatient, Text: "الحمد لله I'm okay, but I've been having some آلام في البطن for the past week.", Timestamp: "00:00:08", Highlighted: true},
		{Speaker: SpeakerDoctor, Text: "I see. هل يمكنك وصف الألم؟ Is it constant or does it come and go?", Timestamp: "00:00:15"},
		{Speaker: SpeakerPatient, Text: "It comes and goes, خاصة during my period. It's been getting worse.", Timestamp: "00:00:22", Highlighted: true},
		{Speaker: SpeakerDoctor, Text: "Hmm, sounds like it could be dysmenorrhea. When was your آخر دورة شهرية?", Timestamp: "00:00:30"},
		{Speaker: SpeakerPatient, Text: "About two weeks ago. كانت أكثر إيلامًا من المعتاد.", Timestamp: "00:00:37", Highlighted: true},
	}
}

func seedMissingInfo() MissingInfoAlert {
	return MissingInfoAlert{
		Field:         "LMP (Last Menstrual Period)",
		FieldAR:       "آخر دورة شهرية",
		Description:   "Exact date of last menstrual period not mentioned",
		DescriptionAR: "لم يتم ذكر التاريخ الدقيق لآخر دورة شهرية",
		Importance:    "high",
	}
}

func seedSoapNote() SoapNote {
	return SoapNote{
		Subjective:   "25-year-old female patient presenting with increasing abdominal pain during menstruation. Patient reports pain has worsened over the last 3 cycles. No reported changes in flow volume or duration.",
		SubjectiveAR: "مريضة أنثى تبلغ من العمر 25 عاماً تعاني من زيادة آلام البطن أثناء الدورة الشهرية. تفيد المريضة بأن الألم قد ازداد سوءاً خلال آخر 3 دورات. لا تغييرات مذكورة في حجم أو مدة التدفق.",
		Objective:    "Vital signs stable. Abdominal examination reveals mild tenderness in the lower quadrants. No masses palpated.",
		ObjectiveAR:  "العلامات الحيوية مستقرة. يكشف فحص البطن عن حساسية خفيفة في الأرباع السفلية. لا كتل محسوسة.",
		Assessment:   "Likely dysmenorrhea. Consider further evaluation for endometriosis if symptoms persist or worsen.",
		AssessmentAR: "على الأرجح عسر الطمث. يجب النظر في مزيد من التقييم لبطانة الرحم المهاجرة إذا استمرت الأعراض أو تفاقمت.",
		Plan:         "1. Prescribed NSAIDs for pain management\n2. Recommend heating pad application\n3. Follow up in 1 month\n4. Consider hormonal contraception if symptoms persist",
		PlanAR:       "١. وصف مضادات الالتهاب غير الستيرويدية لإدارة الألم\n٢. ينصح باستخدام وسادة التدفئة\n٣. متابعة بعد شهر واحد\n٤. النظر في وسائل منع الحمل الهرمونية إذا استمرت الأعراض",
	}
}

// seedICDCodes is ordered by descending confidence.
func seedICDCodes() []ICDCode {
	return []ICDCode{
		{Code: "N94.6", Description: "Dysmenorrhea", Confidence: 0.92},
		{Code: "N80.0", Description: "Endometriosis of uterus", Confidence: 0.65},
		{Code: "R10.2", Description: "Pelvic and perineal pain", Confidence: 0.58},
	}
}
