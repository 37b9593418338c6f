package router

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stemsi/sgms/internal/handler"
	"github.com/stemsi/sgms/internal/model"
	"github.com/stemsi/sgms/internal/response"
)

const (
	menuWidth = 50
	exitKey   = "8"
)

// Store loads the dataset at startup and saves it on exit.
type Store interface {
	Load() (*model.Dataset, error)
	Save(ds *model.Dataset) error
}

// Handlers groups all handler instances for menu setup.
type Handlers struct {
	Student *handler.StudentHandler
	Subject *handler.SubjectHandler
	Grade   *handler.GradeHandler
}

type route struct {
	key    string
	label  string
	handle func(ds *model.Dataset) error
}

// Router is the interactive menu loop. It owns the dataset for the length of
// one session.
type Router struct {
	con    *handler.Console
	store  Store
	routes []route
	log    zerolog.Logger
}

// New wires the numbered menu to its handlers.
func New(con *handler.Console, store Store, h *Handlers, log zerolog.Logger) *Router {
	return &Router{
		con:   con,
		store: store,
		routes: []route{
			{key: "1", label: "Add Student", handle: h.Student.Add},
			{key: "2", label: "View All Students", handle: h.Student.List},
			{key: "3", label: "Delete Student", handle: h.Student.Delete},
			{key: "4", label: "Add Subject", handle: h.Subject.Add},
			{key: "5", label: "View All Subjects", handle: h.Subject.List},
			{key: "6", label: "Record Grade", handle: h.Grade.Record},
			{key: "7", label: "Generate Full Report", handle: h.Grade.Report},
		},
		log: log.With().Str("component", "router").Logger(),
	}
}

// Run loads the dataset, serves menu choices until Save & Exit, then saves.
// If input ends first, nothing is saved and handler.ErrInputClosed is
// returned.
func (r *Router) Run() error {
	out := r.con.Out()

	ds, err := r.store.Load()
	if err != nil {
		r.log.Warn().Err(err).Msg("Starting with an empty dataset")
		response.Fail(out, response.ErrDataCorrupt)
	}
	fmt.Fprintln(out, "Welcome to Student Grade Management System (SGMS)")

	for {
		r.printMenu()
		choice, err := r.con.Prompt(fmt.Sprintf("Enter your choice (1-%s): ", exitKey))
		if err != nil {
			return r.abort(err)
		}
		choice = strings.TrimSpace(choice)

		if choice == exitKey {
			r.saveAndExit(ds)
			return nil
		}

		if rt, ok := r.lookup(choice); ok {
			r.log.Debug().Str("choice", choice).Str("action", rt.label).Msg("Menu choice")
			if err := rt.handle(ds); err != nil {
				return r.abort(err)
			}
		} else {
			response.Fail(out, response.ErrInvalidChoice)
		}

		if err := r.con.Pause(); err != nil {
			return r.abort(err)
		}
	}
}

func (r *Router) lookup(key string) (route, bool) {
	for _, rt := range r.routes {
		if rt.key == key {
			return rt, true
		}
	}
	return route{}, false
}

func (r *Router) printMenu() {
	out := r.con.Out()
	fmt.Fprintln(out, "\n"+strings.Repeat("=", menuWidth))
	fmt.Fprintln(out, " MAIN MENU")
	fmt.Fprintln(out, strings.Repeat("=", menuWidth))
	for _, rt := range r.routes {
		fmt.Fprintf(out, "%s. %s\n", rt.key, rt.label)
	}
	fmt.Fprintf(out, "%s. Save & Exit\n", exitKey)
	fmt.Fprintln(out, strings.Repeat("-", menuWidth))
}

func (r *Router) saveAndExit(ds *model.Dataset) {
	out := r.con.Out()
	if err := r.store.Save(ds); err != nil {
		r.log.Error().Err(err).Msg("Failed to save dataset")
		response.FailWithDetail(out, response.ErrSaveFailed, err)
	} else {
		response.Success(out, "Data saved successfully.")
	}
	fmt.Fprintln(out, "Thank you for using SGMS. Goodbye!")
}

func (r *Router) abort(err error) error {
	if errors.Is(err, handler.ErrInputClosed) {
		r.log.Warn().Msg("Input closed before Save & Exit, changes not saved")
	} else {
		r.log.Error().Err(err).Msg("Session ended unexpectedly")
	}
	return err
}
