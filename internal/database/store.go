package database

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stemsi/sgms/internal/config"
	"github.com/stemsi/sgms/internal/model"
)

// ErrCorrupt reports that the data file could not be read back as a dataset.
var ErrCorrupt = errors.New("corrupted data file")

// FileStore keeps the dataset in a single JSON document with a one-generation
// backup next to it.
//
// Save rotates the current file to the backup path and then writes the new
// one. The two steps are not atomic: a crash between them leaves only the
// backup on disk.
type FileStore struct {
	path       string
	backupPath string
	appVersion string
	now        func() time.Time
	log        zerolog.Logger
}

// NewFileStore creates a FileStore from configuration.
func NewFileStore(cfg *config.Config, log zerolog.Logger) *FileStore {
	return &FileStore{
		path:       cfg.DataFile,
		backupPath: cfg.BackupFile(),
		appVersion: cfg.AppVersion,
		now:        time.Now,
		log:        log.With().Str("component", "file_store").Logger(),
	}
}

// Path returns the data file location.
func (s *FileStore) Path() string { return s.path }

// BackupPath returns the backup file location.
func (s *FileStore) BackupPath() string { return s.backupPath }

// Load reads the dataset. The returned dataset is never nil:
//   - no data file: a fresh dataset with stamped metadata and a nil error.
//   - unreadable or malformed file: an empty dataset with empty metadata and
//     an error wrapping ErrCorrupt.
func (s *FileStore) Load() (*model.Dataset, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		ds := model.NewStampedDataset(s.now(), s.appVersion, uuid.New().String())
		s.log.Info().Str("path", s.path).Msg("No data file, starting a new dataset")
		return ds, nil
	}
	if err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("Failed to read data file")
		return model.NewDataset(), fmt.Errorf("%w: read %s: %v", ErrCorrupt, s.path, err)
	}

	var ds model.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("Failed to decode data file")
		return model.NewDataset(), fmt.Errorf("%w: decode %s: %v", ErrCorrupt, s.path, err)
	}

	s.log.Debug().
		Str("path", s.path).
		Int("students", ds.Students.Len()).
		Int("subjects", ds.Subjects.Len()).
		Int("grades", ds.Grades.Len()).
		Msg("Dataset loaded")
	return &ds, nil
}

// Save rotates any existing data file to the backup path, replacing the
// previous backup, then writes ds with stable 4-space indentation.
func (s *FileStore) Save(ds *model.Dataset) error {
	data, err := encode(ds)
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		if err := os.Rename(s.path, s.backupPath); err != nil {
			s.log.Error().Err(err).Str("backup", s.backupPath).Msg("Failed to rotate backup")
			return fmt.Errorf("rotate backup: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		s.log.Error().Err(err).Str("path", s.path).Msg("Failed to stat data file")
		return fmt.Errorf("stat data file: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("Failed to write data file")
		return fmt.Errorf("write data file: %w", err)
	}

	s.log.Info().
		Str("path", s.path).
		Int("bytes", len(data)).
		Msg("Dataset saved")
	return nil
}

func encode(ds *model.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(ds); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
