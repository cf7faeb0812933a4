package config

// IngestConfig controls how raw capture files are read for one day
type IngestConfig struct {
	SourceDir       string `yaml:"sourceDir" validate:"required"`
	Verbosity       int    `yaml:"verbosity" validate:"gte=0,lte=2"`
	RepairAlignment bool   `yaml:"repairAlignment"`
}

// ResampleConfig contains grid resampling parameters
type ResampleConfig struct {
	StepMinutes int `yaml:"stepMinutes" validate:"gt=0"`
}

// ArchiveConfig controls where built day archives are written
type ArchiveConfig struct {
	OutputDir  string `yaml:"outputDir" validate:"required"`
	SQLitePath string `yaml:"sqlitePath" validate:"omitempty"`
}

// DaemonConfig contains the schedule for the unattended daily build.
// The expression is standard cron syntax; the default builds the
// previous day's archive shortly after midnight.
type DaemonConfig struct {
	Schedule string `yaml:"schedule"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Ingest   IngestConfig   `yaml:"ingest" validate:"required"`
	Resample ResampleConfig `yaml:"resample"`
	Archive  ArchiveConfig  `yaml:"archive" validate:"required"`
	Daemon   DaemonConfig   `yaml:"daemon"`
}
