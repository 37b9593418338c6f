package handler

import (
	"errors"
	"io"

	"github.com/rs/zerolog"
	"github.com/stemsi/sgms/internal/response"
	"github.com/stemsi/sgms/internal/service"
)

// errCode maps a service error onto the code shown to the operator.
func errCode(err error) response.ErrCode {
	switch {
	case errors.Is(err, service.ErrStudentExists):
		return response.ErrStudentExists
	case errors.Is(err, service.ErrStudentNotFound):
		return response.ErrStudentNotFound
	case errors.Is(err, service.ErrSubjectExists):
		return response.ErrSubjectExists
	case errors.Is(err, service.ErrNoStudents):
		return response.ErrNoStudents
	case errors.Is(err, service.ErrNoSubjects):
		return response.ErrNoSubjects
	case errors.Is(err, service.ErrUnknownRoll):
		return response.ErrInvalidRoll
	case errors.Is(err, service.ErrUnknownSubject), errors.Is(err, service.ErrSubjectNotFound):
		return response.ErrInvalidSubject
	case errors.Is(err, service.ErrInvalidMarks):
		return response.ErrInvalidMarks
	default:
		return response.ErrInternal
	}
}

// fail reports err to the operator. Input errors are passed back so the
// caller can end the session; everything else is handled here.
func fail(w io.Writer, log zerolog.Logger, err error) error {
	if errors.Is(err, ErrInputClosed) {
		return err
	}
	code := errCode(err)
	if code == response.ErrInternal {
		log.Error().Err(err).Msg("Unexpected error")
	} else {
		log.Debug().Err(err).Str("code", string(code)).Msg("Operation rejected")
	}
	response.Fail(w, code)
	return nil
}
