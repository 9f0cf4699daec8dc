package services

import (
	"fmt"

	"github.com/solvio-labs/simplexa/internal/core/domain"
	"github.com/solvio-labs/simplexa/internal/core/ports/driven"
	"github.com/solvio-labs/simplexa/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyOutputPrecision = "output.precision"
	keyOutputTableau   = "output.tableau"
	keyDataDir         = "data.dir"
	keyDefaultSense    = "problem.default_sense"
)

// SettingsService manages application settings over a ConfigStore.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// OutputPrecision returns the configured rendering precision, or zero when
// unset so the renderer falls back to its default.
func (s *SettingsService) OutputPrecision() int {
	return s.configStore.GetInt(keyOutputPrecision)
}

// SetOutputPrecision stores and persists the output precision.
func (s *SettingsService) SetOutputPrecision(p int) error {
	if p < 0 {
		return fmt.Errorf("%w: precision cannot be negative, got %d", domain.ErrInvalidInput, p)
	}
	if err := s.configStore.Set(keyOutputPrecision, p); err != nil {
		return err
	}
	return s.configStore.Save()
}

// ShowTableau reports whether solve output always includes the final
// tableau.
func (s *SettingsService) ShowTableau() bool {
	return s.configStore.GetBool(keyOutputTableau)
}

// SetShowTableau stores and persists the tableau preference.
func (s *SettingsService) SetShowTableau(show bool) error {
	if err := s.configStore.Set(keyOutputTableau, show); err != nil {
		return err
	}
	return s.configStore.Save()
}

// DataDir returns the configured data directory, empty when unset.
func (s *SettingsService) DataDir() string {
	return s.configStore.GetString(keyDataDir)
}

// SetDataDir stores and persists the data directory.
func (s *SettingsService) SetDataDir(dir string) error {
	if err := s.configStore.Set(keyDataDir, dir); err != nil {
		return err
	}
	return s.configStore.Save()
}

// DefaultSense returns the objective sense new problems start with.
// Unset or unrecognised values fall back to maximize.
func (s *SettingsService) DefaultSense() domain.Sense {
	sense := domain.Sense(s.configStore.GetString(keyDefaultSense))
	if !sense.IsValid() {
		return domain.Maximize
	}
	return sense
}

// SetDefaultSense stores and persists the default objective sense.
func (s *SettingsService) SetDefaultSense(sense domain.Sense) error {
	if !sense.IsValid() {
		return fmt.Errorf("%w: unknown sense %q", domain.ErrInvalidInput, sense)
	}
	if err := s.configStore.Set(keyDefaultSense, sense.String()); err != nil {
		return err
	}
	return s.configStore.Save()
}

// Path returns the location of the backing configuration file.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}
