package service

import (
	"errors"
	"iter"

	"github.com/rs/zerolog"
	"github.com/stemsi/sgms/internal/model"
)

var (
	ErrStudentExists   = errors.New("student already exists")
	ErrStudentNotFound = errors.New("student not found")
)

// StudentService manages the roll-number keyed student registry.
type StudentService struct {
	log zerolog.Logger
}

// NewStudentService creates a new StudentService.
func NewStudentService(log zerolog.Logger) *StudentService {
	return &StudentService{
		log: log.With().Str("component", "student_service").Logger(),
	}
}

// CheckAvailable returns ErrStudentExists if roll is already registered.
func (s *StudentService) CheckAvailable(ds *model.Dataset, roll string) error {
	if ds.Students.Has(normalizeKey(roll)) {
		return ErrStudentExists
	}
	return nil
}

// Add registers a student. The roll is upper-cased and the name title-cased.
func (s *StudentService) Add(ds *model.Dataset, roll, name string) (model.Student, error) {
	st := model.Student{Roll: normalizeKey(roll), Name: normalizeName(name)}
	if ds.Students.Has(st.Roll) {
		return model.Student{}, ErrStudentExists
	}
	ds.Students.Set(st.Roll, st.Name)
	s.log.Debug().Str("roll", st.Roll).Msg("Student added")
	return st, nil
}

// Get looks up a student by roll.
func (s *StudentService) Get(ds *model.Dataset, roll string) (model.Student, error) {
	roll = normalizeKey(roll)
	name, ok := ds.Students.Get(roll)
	if !ok {
		return model.Student{}, ErrStudentNotFound
	}
	return model.Student{Roll: roll, Name: name}, nil
}

// List returns (roll, name) pairs in registration order.
func (s *StudentService) List(ds *model.Dataset) iter.Seq2[string, string] {
	return ds.Students.All()
}

// Delete removes a student together with all of the student's grades and
// returns how many grades were removed.
func (s *StudentService) Delete(ds *model.Dataset, roll string) (int, error) {
	roll = normalizeKey(roll)
	if !ds.Students.Delete(roll) {
		return 0, ErrStudentNotFound
	}
	removed := ds.Grades.DeleteFunc(func(k model.GradeKey, _ float64) bool {
		return k.Roll == roll
	})
	s.log.Debug().Str("roll", roll).Int("grades_removed", removed).Msg("Student deleted")
	return removed, nil
}
