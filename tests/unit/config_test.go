package unit

import (
	"os"
	"testing"

	"github.com/theoremus-urban-solutions/bikeshare-ingest/config"
)

func TestConfig_ParseWithDefaults(t *testing.T) {
	raw := []byte(`
ingest:
  sourceDir: /data/captures
archive:
  outputDir: /data/days
`)
	cfg, err := config.Parse(raw)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Ingest.SourceDir != "/data/captures" {
		t.Errorf("unexpected sourceDir %q", cfg.Ingest.SourceDir)
	}
	if cfg.Resample.StepMinutes != 2 {
		t.Errorf("stepMinutes should default to 2, got %d", cfg.Resample.StepMinutes)
	}
	if cfg.Daemon.Schedule != "10 0 * * *" {
		t.Errorf("schedule should have a default, got %q", cfg.Daemon.Schedule)
	}
	if cfg.Ingest.RepairAlignment {
		t.Error("repairAlignment should default to legacy behavior (off)")
	}
}

func TestConfig_ParseFull(t *testing.T) {
	raw := []byte(`
ingest:
  sourceDir: /data/captures
  verbosity: 2
  repairAlignment: true
resample:
  stepMinutes: 5
archive:
  outputDir: /data/days
  sqlitePath: /data/days.db
daemon:
  schedule: "30 1 * * *"
`)
	cfg, err := config.Parse(raw)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Ingest.Verbosity != 2 || !cfg.Ingest.RepairAlignment {
		t.Errorf("ingest section wrong: %+v", cfg.Ingest)
	}
	if cfg.Resample.StepMinutes != 5 {
		t.Errorf("stepMinutes = %d, want 5", cfg.Resample.StepMinutes)
	}
	if cfg.Archive.SQLitePath != "/data/days.db" {
		t.Errorf("sqlitePath wrong: %q", cfg.Archive.SQLitePath)
	}
}

func TestConfig_ValidationRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"verbosity too high", "ingest:\n  sourceDir: /d\n  verbosity: 3\narchive:\n  outputDir: /o\n"},
		{"negative verbosity", "ingest:\n  sourceDir: /d\n  verbosity: -1\narchive:\n  outputDir: /o\n"},
		{"negative step", "ingest:\n  sourceDir: /d\narchive:\n  outputDir: /o\nresample:\n  stepMinutes: -2\n"},
		{"not yaml", "ingest: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := config.Parse([]byte(tt.raw)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConfig_MissingFile(t *testing.T) {
	origConfig := config.Config
	origDir, _ := os.Getwd()
	defer func() {
		config.Config = origConfig
		os.Chdir(origDir)
	}()

	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	if err := config.LoadAppConfig(); err == nil {
		t.Error("Loading non-existent config should return error")
	}
}
