package ingest

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/theoremus-urban-solutions/bikeshare-ingest/capture"
	"github.com/theoremus-urban-solutions/bikeshare-ingest/config"
	"github.com/theoremus-urban-solutions/bikeshare-ingest/daytable"
	"github.com/theoremus-urban-solutions/bikeshare-ingest/series"
)

// ErrNoData is returned when a day's capture directory yields no usable
// snapshots at all.
var ErrNoData = errors.New("no capture data for day")

// Options are the per-run ingestion knobs, usually derived from the
// application config.
type Options struct {
	Verbosity       int
	RepairAlignment bool
	StepMinutes     int
}

// OptionsFromConfig maps the loaded application config onto run options.
func OptionsFromConfig(cfg *config.AppConfig) Options {
	return Options{
		Verbosity:       cfg.Ingest.Verbosity,
		RepairAlignment: cfg.Ingest.RepairAlignment,
		StepMinutes:     cfg.Resample.StepMinutes,
	}
}

// ListCaptureFiles globs a day's capture files (YYYY-MM-DD_*.xml.bz2)
// inside dir, sorted lexicographically so file order is chronological.
func ListCaptureFiles(dir string, year, month, day int) ([]string, error) {
	pattern := filepath.Join(dir, fmt.Sprintf("%04d-%02d-%02d_*.xml.bz2", year, month, day))
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ReadDay decodes every capture file for one calendar day, in filename
// order, and folds them into a day table. Unreadable files are skipped and
// reported; one bad file never aborts the day. Snapshot order matters:
// both tick dedup and the alignment of per-station series assume strictly
// sequential arrival, so files within one day are never processed in
// parallel.
func ReadDay(year, month, day int, dir string, opts Options) (*daytable.DayTable, error) {
	files, err := ListCaptureFiles(dir, year, month, day)
	if err != nil {
		return nil, err
	}

	warnings := NewWarningAggregator()
	asm := daytable.NewAssembler(opts.RepairAlignment)
	known := map[int]struct{}{}

	for i, filename := range files {
		if opts.Verbosity > 0 {
			log.Printf("%d/%d   %s", i+1, len(files), filename)
		}
		snap, err := capture.DecodeFile(filename)
		if err != nil {
			if opts.Verbosity > 0 {
				log.Printf("bad capture file: %s", filename)
			}
			warnings.Add(WarningBadCapture, filepath.Base(filename))
			continue
		}
		if snap.DroppedRecords > 0 {
			warnings.Add(WarningDroppedRecords, filepath.Base(filename))
		}
		if opts.Verbosity > 1 {
			for _, rec := range snap.Records {
				if _, ok := known[rec.TerminalID]; !ok {
					known[rec.TerminalID] = struct{}{}
					log.Printf("add station %d", rec.TerminalID)
				}
			}
		}
		asm.Fold(snap)
	}

	table := asm.Table()
	for _, id := range asm.Repaired() {
		warnings.Add(WarningLengthRepaired, strconv.Itoa(id))
	}
	if !table.MetadataComplete() {
		warnings.Add(WarningMissingMetadata, "")
	}
	warnings.LogAll(fmt.Sprintf("%04d-%02d-%02d", year, month, day))
	return table, nil
}

// AccumulateDay is the alternate aggregation path over the same decoder
// output: instead of aligned fixed-length arrays it grows per-station
// measurement and metadata series with drift detection. The two paths are
// not composed.
func AccumulateDay(year, month, day int, dir string, opts Options) (*series.NetworkAccumulator, error) {
	files, err := ListCaptureFiles(dir, year, month, day)
	if err != nil {
		return nil, err
	}

	acc := series.NewNetworkAccumulator()
	for i, filename := range files {
		if opts.Verbosity > 0 {
			log.Printf("%d/%d   %s", i+1, len(files), filename)
		}
		snap, err := capture.DecodeFile(filename)
		if err != nil {
			if opts.Verbosity > 0 {
				log.Printf("bad capture file: %s", filename)
			}
			continue
		}
		acc.Add(snap)
	}
	acc.CheckMetadataGap()
	return acc, nil
}
