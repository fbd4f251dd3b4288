package catalog

import "testing"

func TestSearchDoctorsByNameSubstring(t *testing.T) {
	cat := Load()

	got := SearchDoctors(cat.Doctors(), "RAHMAN", AllSpecialties)
	if len(got) != 1 {
		t.Fatalf("expected 1 doctor, got %d", len(got))
	}
	if got[0].ID != "doc-001" {
		t.Errorf("expected doc-001, got %s", got[0].ID)
	}
}

func TestSearchDoctorsQueryMatchesSpecialtyToo(t *testing.T) {
	cat := Load()

	got := SearchDoctors(cat.Doctors(), "cardio", AllSpecialties)
	if len(got) != 2 {
		t.Fatalf("expected 2 cardiologists, got %d", len(got))
	}
	// Catalog order is preserved
	if got[0].ID != "doc-001" || got[1].ID != "doc-007" {
		t.Errorf("unexpected order: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestSearchDoctorsSpecialtyFilterIsExact(t *testing.T) {
	cat := Load()

	got := SearchDoctors(cat.Doctors(), "", "General Medicine")
	if len(got) != 2 {
		t.Fatalf("expected 2 doctors, got %d", len(got))
	}
	for _, d := range got {
		if d.Specialty != "General Medicine" {
			t.Errorf("doctor %s has specialty %s", d.ID, d.Specialty)
		}
	}
}

func TestSearchDoctorsQueryAndSpecialtyAreANDed(t *testing.T) {
	cat := Load()

	// Matching name, non-matching specialty
	got := SearchDoctors(cat.Doctors(), "rahman", "Dermatology")
	if len(got) != 0 {
		t.Fatalf("expected no doctors, got %d", len(got))
	}
}

func TestSearchDoctorsEmptyQueryWithAllReturnsEverything(t *testing.T) {
	cat := Load()

	got := SearchDoctors(cat.Doctors(), "", AllSpecialties)
	if len(got) != len(cat.Doctors()) {
		t.Fatalf("expected %d doctors, got %d", len(cat.Doctors()), len(got))
	}
}

func TestDistinctSpecialtiesFirstSeenOrderWithAllPrepended(t *testing.T) {
	cat := Load()

	got := DistinctSpecialties(cat.Doctors())
	want := []string{
		AllSpecialties,
		"Cardiology",
		"Dermatology",
		"Pediatrics",
		"Orthopedics",
		"Gynecology",
		"Neurology",
		"General Medicine",
		"ENT",
		"Psychiatry",
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d specialties, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestDistinctSpecialtiesNoDuplicates(t *testing.T) {
	cat := Load()

	got := DistinctSpecialties(cat.Doctors())
	seen := make(map[string]bool, len(got))
	for _, s := range got {
		if seen[s] {
			t.Errorf("duplicate specialty %q", s)
		}
		seen[s] = true
	}
}

func TestSearchMedicinesByNameAndCategory(t *testing.T) {
	cat := Load()

	got := SearchMedicines(cat.Medicines(), "losartan", "Cardiac")
	if len(got) != 1 {
		t.Fatalf("expected 1 medicine, got %d", len(got))
	}
	if got[0].ID != "med-010" {
		t.Errorf("expected med-010, got %s", got[0].ID)
	}

	// Category must match exactly when set
	if got := SearchMedicines(cat.Medicines(), "losartan", "Antibiotic"); len(got) != 0 {
		t.Errorf("expected no medicines, got %d", len(got))
	}
}

func TestSearchLabTestsMatchesDescription(t *testing.T) {
	cat := Load()

	got := SearchLabTests(cat.LabTests(), "glucose")
	if len(got) != 2 {
		t.Fatalf("expected 2 lab tests, got %d", len(got))
	}
}
