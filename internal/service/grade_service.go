package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/sgms/internal/model"
	"github.com/stemsi/sgms/internal/validator"
)

// UnknownName is shown for a grade whose student or subject no longer resolves.
const UnknownName = "Unknown"

var (
	ErrNoStudents     = errors.New("no students registered")
	ErrNoSubjects     = errors.New("no subjects registered")
	ErrUnknownRoll    = errors.New("unknown roll number")
	ErrUnknownSubject = errors.New("unknown subject code")
	ErrNoGrades       = errors.New("no grades recorded")

	// ErrInvalidMarks is wrapped by both marks errors below.
	ErrInvalidMarks    = errors.New("invalid marks")
	ErrMarksNotNumeric = fmt.Errorf("%w: not a number", ErrInvalidMarks)
	ErrMarksOutOfRange = fmt.Errorf("%w: outside 0-100", ErrInvalidMarks)
)

// GradeService records marks against (student, subject) pairs and builds the
// grade report.
type GradeService struct {
	students *StudentService
	subjects *SubjectService
	now      func() time.Time
	log      zerolog.Logger
}

func NewGradeService(students *StudentService, subjects *SubjectService, log zerolog.Logger) *GradeService {
	return &GradeService{
		students: students,
		subjects: subjects,
		now:      time.Now,
		log:      log.With().Str("component", "grade_service").Logger(),
	}
}

// CheckReady reports whether grades can be recorded at all.
func (s *GradeService) CheckReady(ds *model.Dataset) error {
	if ds.Students.Len() == 0 {
		return ErrNoStudents
	}
	if ds.Subjects.Len() == 0 {
		return ErrNoSubjects
	}
	return nil
}

// CheckStudent validates a roll for grading.
func (s *GradeService) CheckStudent(ds *model.Dataset, roll string) (model.Student, error) {
	st, err := s.students.Get(ds, roll)
	if err != nil {
		return model.Student{}, fmt.Errorf("%w: %q", ErrUnknownRoll, normalizeKey(roll))
	}
	return st, nil
}

// CheckSubject validates a subject code for grading.
func (s *GradeService) CheckSubject(ds *model.Dataset, code string) (model.Subject, error) {
	sub, err := s.subjects.Get(ds, code)
	if err != nil {
		return model.Subject{}, fmt.Errorf("%w: %q", ErrUnknownSubject, normalizeKey(code))
	}
	return sub, nil
}

// ParseMarks parses raw as a number and then checks it lies in [0, 100].
func (s *GradeService) ParseMarks(raw string) (float64, error) {
	marks, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMarksNotNumeric, raw)
	}
	if err := validator.Struct(model.MarksInput{Marks: marks}); err != nil {
		fields := zerolog.Dict()
		for field, msg := range validator.TranslateErrors(err) {
			fields.Str(field, msg)
		}
		s.log.Debug().Dict("validation", fields).Float64("marks", marks).Msg("Marks rejected")
		return 0, fmt.Errorf("%w: %v", ErrMarksOutOfRange, marks)
	}
	return marks, nil
}

// Record stores marks for the (roll, code) pair, replacing any earlier mark.
// The dataset is left unchanged on error.
func (s *GradeService) Record(ds *model.Dataset, roll, code, rawMarks string) (model.GradeEntry, error) {
	if err := s.CheckReady(ds); err != nil {
		return model.GradeEntry{}, err
	}
	st, err := s.CheckStudent(ds, roll)
	if err != nil {
		return model.GradeEntry{}, err
	}
	sub, err := s.CheckSubject(ds, code)
	if err != nil {
		return model.GradeEntry{}, err
	}
	marks, err := s.ParseMarks(rawMarks)
	if err != nil {
		s.log.Debug().Err(err).Str("roll", st.Roll).Str("code", sub.Code).Msg("Marks rejected")
		return model.GradeEntry{}, err
	}

	ds.Grades.Set(model.GradeKey{Roll: st.Roll, Code: sub.Code}, marks)
	s.log.Debug().
		Str("roll", st.Roll).
		Str("code", sub.Code).
		Float64("marks", marks).
		Msg("Grade recorded")
	return model.GradeEntry{Student: st, Subject: sub, Marks: marks}, nil
}

// Report builds one row per grade in storage order with pass statistics.
func (s *GradeService) Report(ds *model.Dataset) (model.Report, error) {
	if ds.Grades.Len() == 0 {
		return model.Report{}, ErrNoGrades
	}

	report := model.Report{
		Rows:        make([]model.ReportRow, 0, ds.Grades.Len()),
		GeneratedAt: s.now(),
	}
	for key, marks := range ds.Grades.All() {
		row := model.ReportRow{
			Roll:        key.Roll,
			Name:        UnknownName,
			Code:        key.Code,
			SubjectName: UnknownName,
			Marks:       marks,
			Status:      model.StatusFor(marks),
		}
		if name, ok := ds.Students.Get(key.Roll); ok {
			row.Name = name
		}
		if name, ok := ds.Subjects.Get(key.Code); ok {
			row.SubjectName = name
		}
		if row.Status == model.StatusPass {
			report.Passed++
		}
		report.Total++
		report.Rows = append(report.Rows, row)
	}
	return report, nil
}
