package handler

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/stemsi/sgms/internal/model"
)

const reportWidth = 70

func writeStudentTable(w io.Writer, students iter.Seq2[string, string]) bool {
	empty := true
	for roll, name := range students {
		if empty {
			fmt.Fprintln(w, "\n--- All Students ---")
			fmt.Fprintf(w, "%-10s %-20s\n", "Roll No", "Name")
			fmt.Fprintln(w, strings.Repeat("-", 30))
			empty = false
		}
		fmt.Fprintf(w, "%-10s %-20s\n", roll, name)
	}
	if empty {
		fmt.Fprintln(w, "No students found.")
	}
	return !empty
}

func writeSubjectTable(w io.Writer, subjects iter.Seq2[string, string]) bool {
	empty := true
	for code, name := range subjects {
		if empty {
			fmt.Fprintln(w, "\n--- All Subjects ---")
			fmt.Fprintf(w, "%-12s %-25s\n", "Code", "Subject Name")
			fmt.Fprintln(w, strings.Repeat("-", 40))
			empty = false
		}
		fmt.Fprintf(w, "%-12s %-25s\n", code, name)
	}
	if empty {
		fmt.Fprintln(w, "No subjects found.")
	}
	return !empty
}

func writeReport(w io.Writer, r model.Report) {
	rule := strings.Repeat("=", reportWidth)
	line := strings.Repeat("-", reportWidth)

	fmt.Fprintln(w, "\n"+rule)
	fmt.Fprintln(w, strings.Repeat(" ", 20)+"STUDENT GRADE REPORT")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-8s %-18s %-12s %-6s %-8s\n", "Roll", "Name", "Subject", "Marks", "Status")
	fmt.Fprintln(w, line)
	for _, row := range r.Rows {
		fmt.Fprintf(w, "%-8s %-18s %-12s %-6s %-8s\n", row.Roll, row.Name, row.Code, formatMarks(row.Marks), row.Status)
	}
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "Total Students with Grades: %d | Pass Rate: %.1f%%\n", r.Total, r.PassRate())
	fmt.Fprintf(w, "Report Generated on: %s\n", r.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Fprintln(w, rule)
}

// formatMarks prints marks in their shortest form with at least one decimal
// place, e.g. 70.0 and 65.25.
func formatMarks(m float64) string {
	s := strconv.FormatFloat(m, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
