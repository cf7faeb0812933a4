package helpers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/theoremus-urban-solutions/bikeshare-ingest/config"
)

// GetTestDataPath returns absolute path to testdata/
func GetTestDataPath() string {
	wd, _ := os.Getwd()
	for {
		testdataPath := filepath.Join(wd, "testdata")
		if _, err := os.Stat(testdataPath); err == nil {
			return testdataPath
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			panic("Could not find testdata directory")
		}
		wd = parent
	}
}

// CapturesDir returns the directory holding the bz2 capture fixtures for
// 2017-06-10.
func CapturesDir() string {
	return filepath.Join(GetTestDataPath(), "captures")
}

// StationXML builds one <station> element with sane defaults for the
// attribute fields.
func StationXML(terminal int, name string, bikes, empty int, updateMS, commMS int64) string {
	return fmt.Sprintf(`<station><id>%d</id><name>%s</name><terminalName>%d</terminalName>`+
		`<lastCommWithServer>%d</lastCommWithServer><lastUpdateTime>%d</lastUpdateTime>`+
		`<lat>45.5088</lat><long>-73.554</long>`+
		`<installed>true</installed><locked>false</locked><public>true</public><temporary>false</temporary>`+
		`<nbBikes>%d</nbBikes><nbEmptyDocks>%d</nbEmptyDocks></station>`,
		terminal-6000, name, terminal, commMS, updateMS, bikes, empty)
}

// CaptureXML builds a full capture document from station elements.
func CaptureXML(lastUpdateMS int64, stations ...string) []byte {
	return []byte(fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>`+"\n"+
		`<stations LastUpdate="%d">%s</stations>`, lastUpdateMS, strings.Join(stations, "")))
}

// TestAppConfig returns a ready-to-use configuration pointing at the
// capture fixtures.
func TestAppConfig() *config.AppConfig {
	return &config.AppConfig{
		Ingest:   config.IngestConfig{SourceDir: CapturesDir(), Verbosity: 0},
		Resample: config.ResampleConfig{StepMinutes: 2},
		Archive:  config.ArchiveConfig{OutputDir: "."},
	}
}
