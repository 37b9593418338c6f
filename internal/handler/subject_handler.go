package handler

import (
	"github.com/rs/zerolog"
	"github.com/stemsi/sgms/internal/model"
	"github.com/stemsi/sgms/internal/response"
	"github.com/stemsi/sgms/internal/service"
)

type SubjectHandler struct {
	subjectService *service.SubjectService
	con            *Console
	log            zerolog.Logger
}

func NewSubjectHandler(subjectService *service.SubjectService, con *Console, log zerolog.Logger) *SubjectHandler {
	return &SubjectHandler{
		subjectService: subjectService,
		con:            con,
		log:            log.With().Str("component", "subject_handler").Logger(),
	}
}

func (h *SubjectHandler) Add(ds *model.Dataset) error {
	code, err := h.con.Prompt("Enter Subject Code (e.g., CSE1001): ")
	if err != nil {
		return err
	}
	if err := h.subjectService.CheckAvailable(ds, code); err != nil {
		return fail(h.con.Out(), h.log, err)
	}
	name, err := h.con.Prompt("Enter Subject Name: ")
	if err != nil {
		return err
	}

	sub, err := h.subjectService.Add(ds, code, name)
	if err != nil {
		return fail(h.con.Out(), h.log, err)
	}
	response.Success(h.con.Out(), "Subject %s (%s) added!", sub.Name, sub.Code)
	return nil
}

func (h *SubjectHandler) List(ds *model.Dataset) error {
	writeSubjectTable(h.con.Out(), h.subjectService.List(ds))
	return nil
}
