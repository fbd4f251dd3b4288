package catalog

import "strings"

// AllSpecialties is the sentinel that disables the specialty filter
const AllSpecialties = "All"

// SearchDoctors returns the doctors whose name or specialty contains
// query case-insensitively, AND'ed with an exact specialty match
// unless the AllSpecialties sentinel is selected. Catalog order is
// preserved.
func SearchDoctors(doctors []Doctor, query, specialty string) []Doctor {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]Doctor, 0, len(doctors))
	for _, d := range doctors {
		if q != "" &&
			!strings.Contains(strings.ToLower(d.Name), q) &&
			!strings.Contains(strings.ToLower(d.Specialty), q) {
			continue
		}
		if specialty != "" && specialty != AllSpecialties && d.Specialty != specialty {
			continue
		}
		out = append(out, d)
	}
	return out
}

// DistinctSpecialties returns the AllSpecialties sentinel followed by
// each distinct specialty in first-seen order.
func DistinctSpecialties(doctors []Doctor) []string {
	out := []string{AllSpecialties}
	seen := make(map[string]bool, len(doctors))
	for _, d := range doctors {
		if !seen[d.Specialty] {
			seen[d.Specialty] = true
			out = append(out, d.Specialty)
		}
	}
	return out
}

// SearchMedicines returns the medicines whose name contains query
// case-insensitively, AND'ed with an exact category match unless the
// category is empty or "All".
func SearchMedicines(medicines []Medicine, query, category string) []Medicine {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]Medicine, 0, len(medicines))
	for _, m := range medicines {
		if q != "" && !strings.Contains(strings.ToLower(m.Name), q) {
			continue
		}
		if category != "" && category != AllSpecialties && m.Category != category {
			continue
		}
		out = append(out, m)
	}
	return out
}

// SearchLabTests returns the lab tests whose name or description
// contains query case-insensitively.
func SearchLabTests(tests []LabTest, query string) []LabTest {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return tests
	}

	out := make([]LabTest, 0, len(tests))
	for _, t := range tests {
		if strings.Contains(strings.ToLower(t.Name), q) ||
			strings.Contains(strings.ToLower(t.Description), q) {
			out = append(out, t)
		}
	}
	return out
}
