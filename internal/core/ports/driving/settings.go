package driving

import "github.com/solvio-labs/simplexa/internal/core/domain"

// SettingsService exposes typed application settings.
type SettingsService interface {
	// OutputPrecision is the number of decimals used when rendering
	// results. Zero means the renderer default.
	OutputPrecision() int

	// SetOutputPrecision stores and persists the output precision.
	SetOutputPrecision(p int) error

	// ShowTableau reports whether solve output always includes the
	// final tableau.
	ShowTableau() bool

	// SetShowTableau stores and persists the tableau preference.
	SetShowTableau(show bool) error

	// DataDir is the configured data directory. Empty means the
	// default ~/.simplexa.
	DataDir() string

	// SetDataDir stores and persists the data directory.
	SetDataDir(dir string) error

	// DefaultSense is the objective sense new problems start with.
	DefaultSense() domain.Sense

	// SetDefaultSense stores and persists the default objective sense.
	SetDefaultSense(sense domain.Sense) error

	// Path is the location of the backing configuration file.
	Path() string
}
