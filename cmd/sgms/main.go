package main

import (
	"errors"
	"os"

	"github.com/google/uuid"
	"github.com/stemsi/sgms/internal/config"
	"github.com/stemsi/sgms/internal/database"
	"github.com/stemsi/sgms/internal/handler"
	"github.com/stemsi/sgms/internal/logger"
	"github.com/stemsi/sgms/internal/router"
	"github.com/stemsi/sgms/internal/service"
	"github.com/stemsi/sgms/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat).
		With().Str("session_id", uuid.NewString()).Logger()
	log.Info().
		Str("data_file", cfg.DataFile).
		Str("app", cfg.AppVersion).
		Str("log_level", cfg.LogLevel).
		Msg("Starting SGMS")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	// ─── Initialize Store ──────────────────────────────────────────────
	store := database.NewFileStore(cfg, log)

	// ─── Initialize Services ───────────────────────────────────────────
	studentService := service.NewStudentService(log)
	subjectService := service.NewSubjectService(log)
	gradeService := service.NewGradeService(studentService, subjectService, log)

	// ─── Initialize Handlers ───────────────────────────────────────────
	con := handler.NewConsole(os.Stdin, os.Stdout)
	h := &router.Handlers{
		Student: handler.NewStudentHandler(studentService, con, log),
		Subject: handler.NewSubjectHandler(subjectService, con, log),
		Grade:   handler.NewGradeHandler(gradeService, studentService, subjectService, con, log),
	}

	// ─── Run Menu ──────────────────────────────────────────────────────
	if err := router.New(con, store, h, log).Run(); err != nil {
		if errors.Is(err, handler.ErrInputClosed) {
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("Session ended with an error")
	}
	log.Info().Msg("Session finished")
}
