package service

import (
	"errors"
	"iter"

	"github.com/rs/zerolog"
	"github.com/stemsi/sgms/internal/model"
)

var (
	ErrSubjectExists   = errors.New("subject already exists")
	ErrSubjectNotFound = errors.New("subject not found")
)

// SubjectService manages the code keyed subject registry. Subjects cannot be
// deleted.
type SubjectService struct {
	log zerolog.Logger
}

func NewSubjectService(log zerolog.Logger) *SubjectService {
	return &SubjectService{
		log: log.With().Str("component", "subject_service").Logger(),
	}
}

// CheckAvailable returns ErrSubjectExists if code is already registered.
func (s *SubjectService) CheckAvailable(ds *model.Dataset, code string) error {
	if ds.Subjects.Has(normalizeKey(code)) {
		return ErrSubjectExists
	}
	return nil
}

func (s *SubjectService) Add(ds *model.Dataset, code, name string) (model.Subject, error) {
	sub := model.Subject{Code: normalizeKey(code), Name: normalizeName(name)}
	if ds.Subjects.Has(sub.Code) {
		return model.Subject{}, ErrSubjectExists
	}
	ds.Subjects.Set(sub.Code, sub.Name)
	s.log.Debug().Str("code", sub.Code).Msg("Subject added")
	return sub, nil
}

func (s *SubjectService) Get(ds *model.Dataset, code string) (model.Subject, error) {
	code = normalizeKey(code)
	name, ok := ds.Subjects.Get(code)
	if !ok {
		return model.Subject{}, ErrSubjectNotFound
	}
	return model.Subject{Code: code, Name: name}, nil
}

func (s *SubjectService) List(ds *model.Dataset) iter.Seq2[string, string] {
	return ds.Subjects.All()
}
