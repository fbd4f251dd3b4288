// Package catalog holds the static reference data the marketplace is
// browsed against: doctors, clinics, medicines, lab tests and health
// videos. The collections are built once at process start and never
// mutated afterwards; every accessor returns read-only views in the
// original load order.
package catalog

import "log"

// Doctor represents a bookable doctor profile
type Doctor struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Specialty  string   `json:"specialty"`
	ClinicIDs  []string `json:"clinic_ids"`
	Experience int      `json:"experience_years"`
	Rating     float64  `json:"rating"`
	Fee        float64  `json:"consultation_fee"`
	ImageURL   string   `json:"image_url"`
}

// Clinic represents a partner clinic
type Clinic struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	City      string   `json:"city"`
	Phone     string   `json:"phone"`
	DoctorIDs []string `json:"doctor_ids"`
	ImageURL  string   `json:"image_url"`
}

// Medicine represents a pharmacy product
type Medicine struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	RequiresRx   bool    `json:"requires_prescription"`
	Manufacturer string  `json:"manufacturer"`
}

// LabTest represents an orderable lab test
type LabTest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	SampleType  string  `json:"sample_type"`
	ReportHours int     `json:"report_hours"`
}

// Video represents a health-education video entry
type Video struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Topic    string `json:"topic"`
	URL      string `json:"url"`
	Duration string `json:"duration"`
}

// AboutInfo represents the editorial about-us content
type AboutInfo struct {
	Title   string   `json:"title"`
	Tagline string   `json:"tagline"`
	Body    string   `json:"body"`
	Values  []string `json:"values"`
}

// Catalog is the in-memory reference data store
type Catalog struct {
	doctors   []Doctor
	clinics   []Clinic
	medicines []Medicine
	labTests  []LabTest
	videos    []Video
	about     AboutInfo

	doctorByID   map[string]int
	clinicByID   map[string]int
	medicineByID map[string]int
	labTestByID  map[string]int
}

// Load builds the catalog from the static data set. Called once at
// process start.
func Load() *Catalog {
	c := &Catalog{
		doctors:   doctorData(),
		clinics:   clinicData(),
		medicines: medicineData(),
		labTests:  labTestData(),
		videos:    videoData(),
		about:     aboutData(),
	}

	c.doctorByID = make(map[string]int, len(c.doctors))
	for i, d := range c.doctors {
		c.doctorByID[d.ID] = i
	}
	c.clinicByID = make(map[string]int, len(c.clinics))
	for i, cl := range c.clinics {
		c.clinicByID[cl.ID] = i
	}
	c.medicineByID = make(map[string]int, len(c.medicines))
	for i, m := range c.medicines {
		c.medicineByID[m.ID] = i
	}
	c.labTestByID = make(map[string]int, len(c.labTests))
	for i, t := range c.labTests {
		c.labTestByID[t.ID] = i
	}

	log.Printf("✅ Catalog loaded [%d doctors, %d clinics, %d medicines, %d lab tests, %d videos]",
		len(c.doctors), len(c.clinics), len(c.medicines), len(c.labTests), len(c.videos))
	return c
}

// Doctors returns all doctors in catalog order
func (c *Catalog) Doctors() []Doctor {
	return c.doctors
}

// Clinics returns all clinics in catalog order
func (c *Catalog) Clinics() []Clinic {
	return c.clinics
}

// Medicines returns all medicines in catalog order
func (c *Catalog) Medicines() []Medicine {
	return c.medicines
}

// LabTests returns all lab tests in catalog order
func (c *Catalog) LabTests() []LabTest {
	return c.labTests
}

// Videos returns all videos in catalog order
func (c *Catalog) Videos() []Video {
	return c.videos
}

// About returns the editorial about-us content
func (c *Catalog) About() AboutInfo {
	return c.about
}

// DoctorByID looks up a doctor; ok is false for unknown ids
func (c *Catalog) DoctorByID(id string) (Doctor, bool) {
	i, ok := c.doctorByID[id]
	if !ok {
		return Doctor{}, false
	}
	return c.doctors[i], true
}

// ClinicByID looks up a clinic; ok is false for unknown ids
func (c *Catalog) ClinicByID(id string) (Clinic, bool) {
	i, ok := c.clinicByID[id]
	if !ok {
		return Clinic{}, false
	}
	return c.clinics[i], true
}

// MedicineByID looks up a medicine; ok is false for unknown ids
func (c *Catalog) MedicineByID(id string) (Medicine, bool) {
	i, ok := c.medicineByID[id]
	if !ok {
		return Medicine{}, false
	}
	return c.medicines[i], true
}

// LabTestByID looks up a lab test; ok is false for unknown ids
func (c *Catalog) LabTestByID(id string) (LabTest, bool) {
	i, ok := c.labTestByID[id]
	if !ok {
		return LabTest{}, false
	}
	return c.labTests[i], true
}

// ResolveDoctors maps doctor ids to doctors, silently skipping ids
// that do not resolve. Cross-references are denormalized with no
// integrity guarantee, so a dangling id is a display no-op.
func (c *Catalog) ResolveDoctors(ids []string) []Doctor {
	out := make([]Doctor, 0, len(ids))
	for _, id := range ids {
		if d, ok := c.DoctorByID(id); ok {
			out = append(out, d)
		}
	}
	return out
}

// ResolveClinics maps clinic ids to clinics, skipping dangling ids
func (c *Catalog) ResolveClinics(ids []string) []Clinic {
	out := make([]Clinic, 0, len(ids))
	for _, id := range ids {
		if cl, ok := c.ClinicByID(id); ok {
			out = append(out, cl)
		}
	}
	return out
}
