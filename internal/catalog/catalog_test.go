package catalog

import "testing"

func TestLoadBuildsIndexes(t *testing.T) {
	cat := Load()

	if len(cat.Doctors()) == 0 || len(cat.Clinics()) == 0 || len(cat.Medicines()) == 0 {
		t.Fatal("catalog is empty")
	}

	d, ok := cat.DoctorByID("doc-003")
	if !ok {
		t.Fatal("doc-003 not found")
	}
	if d.Specialty != "Pediatrics" {
		t.Errorf("expected Pediatrics, got %s", d.Specialty)
	}

	if _, ok := cat.DoctorByID("doc-999"); ok {
		t.Error("expected doc-999 to be missing")
	}
	if _, ok := cat.MedicineByID(""); ok {
		t.Error("expected empty id to be missing")
	}
}

func TestResolveDoctorsSkipsDanglingIDs(t *testing.T) {
	cat := Load()

	got := cat.ResolveDoctors([]string{"doc-001", "doc-404", "doc-003"})
	if len(got) != 2 {
		t.Fatalf("expected 2 doctors, got %d", len(got))
	}
	if got[0].ID != "doc-001" || got[1].ID != "doc-003" {
		t.Errorf("unexpected order: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestClinicDoctorCrossReferencesResolve(t *testing.T) {
	cat := Load()

	for _, clinic := range cat.Clinics() {
		doctors := cat.ResolveDoctors(clinic.DoctorIDs)
		if len(doctors) != len(clinic.DoctorIDs) {
			t.Errorf("clinic %s references %d doctors but %d resolved",
				clinic.ID, len(clinic.DoctorIDs), len(doctors))
		}
	}
}
