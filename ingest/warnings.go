package ingest

import (
	"fmt"
	"log"
	"strings"
)

// Warning type constants
const (
	WarningBadCapture      = "bad_capture"
	WarningDroppedRecords  = "dropped_records"
	WarningMissingMetadata = "missing_metadata"
	WarningLengthRepaired  = "length_repaired"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects data-quality warnings during a day's ingest
// and outputs consolidated summaries instead of one log line per incident.
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{warnings: make(map[string]*warningInfo)}
}

// Add records a warning occurrence with an example identifier (a file
// name, a terminal id).
func (w *WarningAggregator) Add(warningType, exampleID string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{examples: make([]string, 0, 3)}
	}
	info := w.warnings[warningType]
	info.count++
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// LogAll outputs all collected warnings in consolidated format
func (w *WarningAggregator) LogAll(dayKey string) {
	for warningType, info := range w.warnings {
		log.Printf("%s", w.formatWarningMessage(warningType, dayKey, info))
	}
}

func (w *WarningAggregator) formatWarningMessage(warningType, dayKey string, info *warningInfo) string {
	var description, action string

	switch warningType {
	case WarningBadCapture:
		description = "unreadable capture files"
		action = "Skipped; the rest of the day is unaffected"
	case WarningDroppedRecords:
		description = "station records with uncoercible required fields"
		action = "Dropped the records, kept their files"
	case WarningMissingMetadata:
		description = "stations with measurements but no captured metadata"
		action = "Built the day table with metadata gaps"
	case WarningLengthRepaired:
		description = "stations that vanished mid-day and needed tail padding"
		action = "Padded at the tail; values after a reappearance are shifted"
	default:
		description = "unknown issue"
		action = "Continued with fallback behavior"
	}

	examplesStr := strings.Join(info.examples, ", ")
	return fmt.Sprintf("Day %s has %s (%d occurrences). %s. Examples: %s",
		dayKey, description, info.count, action, examplesStr)
}
