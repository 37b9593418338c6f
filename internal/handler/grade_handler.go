package handler

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stemsi/sgms/internal/model"
	"github.com/stemsi/sgms/internal/response"
	"github.com/stemsi/sgms/internal/service"
)

type GradeHandler struct {
	gradeService   *service.GradeService
	studentService *service.StudentService
	subjectService *service.SubjectService
	con            *Console
	log            zerolog.Logger
}

func NewGradeHandler(
	gradeService *service.GradeService,
	studentService *service.StudentService,
	subjectService *service.SubjectService,
	con *Console,
	log zerolog.Logger,
) *GradeHandler {
	return &GradeHandler{
		gradeService:   gradeService,
		studentService: studentService,
		subjectService: subjectService,
		con:            con,
		log:            log.With().Str("component", "grade_handler").Logger(),
	}
}

// Record walks the operator through choosing a student, a subject and the
// marks. Each answer is checked before the next question is asked.
func (h *GradeHandler) Record(ds *model.Dataset) error {
	out := h.con.Out()
	if err := h.gradeService.CheckReady(ds); err != nil {
		return fail(out, h.log, err)
	}

	writeStudentTable(out, h.studentService.List(ds))
	roll, err := h.con.Prompt("\nEnter Student Roll No: ")
	if err != nil {
		return err
	}
	if _, err := h.gradeService.CheckStudent(ds, roll); err != nil {
		return fail(out, h.log, err)
	}

	writeSubjectTable(out, h.subjectService.List(ds))
	code, err := h.con.Prompt("Enter Subject Code: ")
	if err != nil {
		return err
	}
	if _, err := h.gradeService.CheckSubject(ds, code); err != nil {
		return fail(out, h.log, err)
	}

	raw, err := h.con.Prompt("Enter Marks (0-100): ")
	if err != nil {
		return err
	}
	entry, err := h.gradeService.Record(ds, roll, code, raw)
	if err != nil {
		return fail(out, h.log, err)
	}
	response.Success(out, "Grade recorded: %s -> %s = %s", entry.Student.Name, entry.Subject.Name, formatMarks(entry.Marks))
	return nil
}

// Report prints the full grade report.
func (h *GradeHandler) Report(ds *model.Dataset) error {
	report, err := h.gradeService.Report(ds)
	if errors.Is(err, service.ErrNoGrades) {
		fmt.Fprintln(h.con.Out(), "No grades recorded yet.")
		return nil
	}
	if err != nil {
		return fail(h.con.Out(), h.log, err)
	}
	writeReport(h.con.Out(), report)
	return nil
}
