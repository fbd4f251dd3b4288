package catalog

// Static data set. Ids are stable strings so appointment and order
// rows can reference them across releases.

func doctorData() []Doctor {
	return []Doctor{
		{
			ID:         "doc-001",
			Name:       "Dr. Ayesha Rahman",
			Specialty:  "Cardiology",
			ClinicIDs:  []string{"cln-001", "cln-003"},
			Experience: 14,
			Rating:     4.8,
			Fee:        900,
			ImageURL:   "/images/doctors/doc-001.jpg",
		},
		{
			ID:         "doc-002",
			Name:       "Dr. Imran Hossain",
			Specialty:  "Dermatology",
			ClinicIDs:  []string{"cln-001"},
			Experience: 9,
			Rating:     4.5,
			Fee:        700,
			ImageURL:   "/images/doctors/doc-002.jpg",
		},
		{
			ID:         "doc-003",
			Name:       "Dr. Farzana Akter",
			Specialty:  "Pediatrics",
			ClinicIDs:  []string{"cln-002"},
			Experience: 11,
			Rating:     4.9,
			Fee:        800,
			ImageURL:   "/images/doctors/doc-003.jpg",
		},
		{
			ID:         "doc-004",
			Name:       "Dr. Mahmud Karim",
			Specialty:  "Orthopedics",
			ClinicIDs:  []string{"cln-002", "cln-004"},
			Experience: 17,
			Rating:     4.6,
			Fee:        1000,
			ImageURL:   "/images/doctors/doc-004.jpg",
		},
		{
			ID:         "doc-005",
			Name:       "Dr. Nusrat Jahan",
			Specialty:  "Gynecology",
			ClinicIDs:  []string{"cln-003"},
			Experience: 12,
			Rating:     4.7,
			Fee:        850,
			ImageURL:   "/images/doctors/doc-005.jpg",
		},
		{
			ID:         "doc-006",
			Name:       "Dr. Tanvir Ahmed",
			Specialty:  "Neurology",
			ClinicIDs:  []string{"cln-001", "cln-004"},
			Experience: 19,
			Rating:     4.9,
			Fee:        1200,
			ImageURL:   "/images/doctors/doc-006.jpg",
		},
		{
			ID:         "doc-007",
			Name:       "Dr. Sabrina Chowdhury",
			Specialty:  "Cardiology",
			ClinicIDs:  []string{"cln-002"},
			Experience: 8,
			Rating:     4.4,
			Fee:        750,
			ImageURL:   "/images/doctors/doc-007.jpg",
		},
		{
			ID:         "doc-008",
			Name:       "Dr. Rafiq Islam",
			Specialty:  "General Medicine",
			ClinicIDs:  []string{"cln-001", "cln-002", "cln-003"},
			Experience: 21,
			Rating:     4.7,
			Fee:        600,
			ImageURL:   "/images/doctors/doc-008.jpg",
		},
		{
			ID:         "doc-009",
			Name:       "Dr. Laila Haque",
			Specialty:  "Dermatology",
			ClinicIDs:  []string{"cln-004"},
			Experience: 6,
			Rating:     4.3,
			Fee:        650,
			ImageURL:   "/images/doctors/doc-009.jpg",
		},
		{
			ID:         "doc-010",
			Name:       "Dr. Shafiq Uddin",
			Specialty:  "ENT",
			ClinicIDs:  []string{"cln-003"},
			Experience: 13,
			Rating:     4.5,
			Fee:        700,
			ImageURL:   "/images/doctors/doc-010.jpg",
		},
		{
			ID:         "doc-011",
			Name:       "Dr. Rumana Siddiqui",
			Specialty:  "Psychiatry",
			ClinicIDs:  []string{"cln-004"},
			Experience: 10,
			Rating:     4.6,
			Fee:        950,
			ImageURL:   "/images/doctors/doc-011.jpg",
		},
		{
			ID:         "doc-012",
			Name:       "Dr. Kamal Bhuiyan",
			Specialty:  "General Medicine",
			ClinicIDs:  []string{"cln-004"},
			Experience: 7,
			Rating:     4.2,
			Fee:        550,
			ImageURL:   "/images/doctors/doc-012.jpg",
		},
	}
}

func clinicData() []Clinic {
	return []Clinic{
		{
			ID:        "cln-001",
			Name:      "CareMate Health Point Dhanmondi",
			Address:   "House 42, Road 7, Dhanmondi",
			City:      "Dhaka",
			Phone:     "+880-2-9611234",
			DoctorIDs: []string{"doc-001", "doc-002", "doc-006", "doc-008"},
			ImageURL:  "/images/clinics/cln-001.jpg",
		},
		{
			ID:        "cln-002",
			Name:      "Green Valley Medical Center",
			Address:   "Plot 18, Sector 4, Uttara",
			City:      "Dhaka",
			Phone:     "+880-2-8954321",
			DoctorIDs: []string{"doc-003", "doc-004", "doc-007", "doc-008"},
			ImageURL:  "/images/clinics/cln-002.jpg",
		},
		{
			ID:        "cln-003",
			Name:      "Lakeside Family Clinic",
			Address:   "23 Gulshan Avenue",
			City:      "Dhaka",
			Phone:     "+880-2-8821456",
			DoctorIDs: []string{"doc-001", "doc-005", "doc-008", "doc-010"},
			ImageURL:  "/images/clinics/cln-003.jpg",
		},
		{
			ID:        "cln-004",
			Name:      "Riverview Specialist Hospital",
			Address:   "101 Agrabad C/A",
			City:      "Chattogram",
			Phone:     "+880-31-715890",
			DoctorIDs: []string{"doc-004", "doc-006", "doc-009", "doc-011", "doc-012"},
			ImageURL:  "/images/clinics/cln-004.jpg",
		},
	}
}

func medicineData() []Medicine {
	return []Medicine{
		{ID: "med-001", Name: "Paracetamol 500mg", Category: "Pain Relief", Description: "Fever and mild pain relief, strip of 10 tablets", Price: 35, RequiresRx: false, Manufacturer: "Square Pharmaceuticals"},
		{ID: "med-002", Name: "Omeprazole 20mg", Category: "Gastric", Description: "Proton pump inhibitor, strip of 10 capsules", Price: 60, RequiresRx: false, Manufacturer: "Beximco Pharma"},
		{ID: "med-003", Name: "Amoxicillin 500mg", Category: "Antibiotic", Description: "Broad-spectrum antibiotic, strip of 10 capsules", Price: 120, RequiresRx: true, Manufacturer: "Incepta Pharmaceuticals"},
		{ID: "med-004", Name: "Cetirizine 10mg", Category: "Allergy", Description: "Antihistamine, strip of 10 tablets", Price: 30, RequiresRx: false, Manufacturer: "Renata Limited"},
		{ID: "med-005", Name: "Metformin 500mg", Category: "Diabetes", Description: "Blood sugar control, strip of 10 tablets", Price: 45, RequiresRx: true, Manufacturer: "Square Pharmaceuticals"},
		{ID: "med-006", Name: "Atorvastatin 10mg", Category: "Cardiac", Description: "Cholesterol lowering, strip of 10 tablets", Price: 90, RequiresRx: true, Manufacturer: "Beximco Pharma"},
		{ID: "med-007", Name: "Vitamin D3 2000IU", Category: "Supplement", Description: "Bone and immunity support, bottle of 30", Price: 250, RequiresRx: false, Manufacturer: "ACI Limited"},
		{ID: "med-008", Name: "Salbutamol Inhaler", Category: "Respiratory", Description: "Asthma reliever inhaler, 200 doses", Price: 320, RequiresRx: true, Manufacturer: "GSK Bangladesh"},
		{ID: "med-009", Name: "ORS Sachet", Category: "Hydration", Description: "Oral rehydration salts, box of 10 sachets", Price: 55, RequiresRx: false, Manufacturer: "SMC Enterprise"},
		{ID: "med-010", Name: "Losartan 50mg", Category: "Cardiac", Description: "Blood pressure control, strip of 10 tablets", Price: 80, RequiresRx: true, Manufacturer: "Incepta Pharmaceuticals"},
		{ID: "med-011", Name: "Azithromycin 500mg", Category: "Antibiotic", Description: "Macrolide antibiotic, strip of 6 tablets", Price: 210, RequiresRx: true, Manufacturer: "Renata Limited"},
		{ID: "med-012", Name: "Calcium + Vitamin D", Category: "Supplement", Description: "Daily calcium supplement, bottle of 30", Price: 180, RequiresRx: false, Manufacturer: "Square Pharmaceuticals"},
		{ID: "med-013", Name: "Ibuprofen 400mg", Category: "Pain Relief", Description: "Anti-inflammatory pain relief, strip of 10 tablets", Price: 40, RequiresRx: false, Manufacturer: "ACI Limited"},
		{ID: "med-014", Name: "Loratadine 10mg", Category: "Allergy", Description: "Non-drowsy antihistamine, strip of 10 tablets", Price: 50, RequiresRx: false, Manufacturer: "Beximco Pharma"},
	}
}

func labTestData() []LabTest {
	return []LabTest{
		{ID: "lab-001", Name: "Complete Blood Count (CBC)", Description: "Full blood cell profile including hemoglobin and platelets", Price: 400, SampleType: "Blood", ReportHours: 12},
		{ID: "lab-002", Name: "Fasting Blood Sugar", Description: "Glucose level after an 8-hour fast", Price: 200, SampleType: "Blood", ReportHours: 6},
		{ID: "lab-003", Name: "Lipid Profile", Description: "Cholesterol, HDL, LDL and triglycerides", Price: 900, SampleType: "Blood", ReportHours: 24},
		{ID: "lab-004", Name: "Thyroid Panel (TSH, T3, T4)", Description: "Thyroid hormone levels", Price: 1200, SampleType: "Blood", ReportHours: 24},
		{ID: "lab-005", Name: "Urine R/M/E", Description: "Routine and microscopic urine examination", Price: 150, SampleType: "Urine", ReportHours: 6},
		{ID: "lab-006", Name: "HbA1c", Description: "Three-month average blood glucose", Price: 850, SampleType: "Blood", ReportHours: 24},
	}
}

func videoData() []Video {
	return []Video{
		{ID: "vid-001", Title: "Understanding High Blood Pressure", Topic: "Cardiac Health", URL: "https://videos.caremate.health/vid-001", Duration: "8:24"},
		{ID: "vid-002", Title: "Healthy Eating on a Budget", Topic: "Nutrition", URL: "https://videos.caremate.health/vid-002", Duration: "12:05"},
		{ID: "vid-003", Title: "Managing Diabetes Day to Day", Topic: "Diabetes", URL: "https://videos.caremate.health/vid-003", Duration: "10:47"},
		{ID: "vid-004", Title: "Better Sleep in Five Steps", Topic: "Mental Health", URL: "https://videos.caremate.health/vid-004", Duration: "6:32"},
		{ID: "vid-005", Title: "Childhood Vaccination Schedule Explained", Topic: "Pediatrics", URL: "https://videos.caremate.health/vid-005", Duration: "9:15"},
		{ID: "vid-006", Title: "Stretching for Desk Workers", Topic: "Physiotherapy", URL: "https://videos.caremate.health/vid-006", Duration: "7:58"},
	}
}

func aboutData() AboutInfo {
	return AboutInfo{
		Title:   "CareMate Health",
		Tagline: "Your health companion, in your pocket",
		Body: "CareMate connects patients with trusted doctors, partner clinics, " +
			"an online pharmacy and reliable health education. Browse specialists, " +
			"book appointments, order medicines and get answers to everyday health " +
			"questions from one place.",
		Values: []string{
			"Verified doctors and clinics",
			"Transparent consultation fees",
			"Genuine medicines, delivered",
			"Health education for everyone",
		},
	}
}
