package handler

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stemsi/sgms/internal/model"
	"github.com/stemsi/sgms/internal/response"
	"github.com/stemsi/sgms/internal/service"
)

type StudentHandler struct {
	studentService *service.StudentService
	con            *Console
	log            zerolog.Logger
}

func NewStudentHandler(studentService *service.StudentService, con *Console, log zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
		con:            con,
		log:            log.With().Str("component", "student_handler").Logger(),
	}
}

// Add prompts for a roll number and, if it is free, a name.
func (h *StudentHandler) Add(ds *model.Dataset) error {
	roll, err := h.con.Prompt("Enter Roll Number: ")
	if err != nil {
		return err
	}
	if err := h.studentService.CheckAvailable(ds, roll); err != nil {
		return fail(h.con.Out(), h.log, err)
	}
	name, err := h.con.Prompt("Enter Student Name: ")
	if err != nil {
		return err
	}

	st, err := h.studentService.Add(ds, roll, name)
	if err != nil {
		return fail(h.con.Out(), h.log, err)
	}
	response.Success(h.con.Out(), "Student %s (%s) added successfully!", st.Name, st.Roll)
	return nil
}

func (h *StudentHandler) List(ds *model.Dataset) error {
	writeStudentTable(h.con.Out(), h.studentService.List(ds))
	return nil
}

// Delete removes a student and the student's grades.
func (h *StudentHandler) Delete(ds *model.Dataset) error {
	roll, err := h.con.Prompt("Enter Roll Number to delete: ")
	if err != nil {
		return err
	}
	removed, err := h.studentService.Delete(ds, roll)
	if err != nil {
		return fail(h.con.Out(), h.log, err)
	}
	response.Success(h.con.Out(), "Student and related grades deleted.")
	if removed > 0 {
		fmt.Fprintf(h.con.Out(), "%d grade record(s) removed.\n", removed)
	}
	return nil
}
