package model

import "time"

// ReportRow is one line of the grade report.
type ReportRow struct {
	Roll        string      `json:"roll"`
	Name        string      `json:"name"`
	Code        string      `json:"code"`
	SubjectName string      `json:"subject_name"`
	Marks       float64     `json:"marks"`
	Status      GradeStatus `json:"status"`
}

// Report is the full grade report with its pass statistics.
type Report struct {
	Rows        []ReportRow `json:"rows"`
	Total       int         `json:"total"`
	Passed      int         `json:"passed"`
	GeneratedAt time.Time   `json:"generated_at"`
}

// PassRate returns the percentage of passing grades. Zero when there are no
// grades.
func (r Report) PassRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Passed) / float64(r.Total) * 100
}
