package ingest

import (
	"fmt"
	"log"
	"os"

	"github.com/theoremus-urban-solutions/bikeshare-ingest/archive"
	"github.com/theoremus-urban-solutions/bikeshare-ingest/daytable"
	"github.com/theoremus-urban-solutions/bikeshare-ingest/resample"
	"github.com/theoremus-urban-solutions/bikeshare-ingest/store"
)

// BuildDay reads one day's captures and reduces them to a grid-aligned
// archive: per-station bike and capacity series resampled onto the fixed
// minute grid, plus the broadcast [day-of-year, weekday, minute] time
// matrix over the same grid.
func BuildDay(year, month, day int, dir string, opts Options) (*archive.Day, error) {
	table, err := ReadDay(year, month, day, dir, opts)
	if err != nil {
		return nil, err
	}
	if len(table.TimeTicks) == 0 {
		return nil, fmt.Errorf("%w: %04d-%02d-%02d in %s", ErrNoData, year, month, day, dir)
	}

	rows := daytable.TimeMatrix(table.TimeTicks)
	minutes := daytable.Minutes(rows)
	grid := resample.Grid(opts.StepMinutes)

	built := &archive.Day{
		Key:      archive.DayKey(year, month, day),
		Time:     make([]daytable.TimeRow, len(grid)),
		Bikes:    make(map[int][]float64, len(table.Bikes)),
		MaxBikes: make(map[int][]float64, len(table.Bikes)),
		Metadata: table.Metadata,
	}
	for i, m := range grid {
		built.Time[i] = daytable.TimeRow{rows[0][0], rows[0][1], m}
	}

	for id := range table.Bikes {
		bikes, err := resampleSamples(minutes, table.Bikes[id], opts.StepMinutes)
		if err != nil {
			log.Printf("station %d has no usable samples, skipping", id)
			continue
		}
		maxBikes, err := resampleSamples(minutes, table.MaxBikes[id], opts.StepMinutes)
		if err != nil {
			log.Printf("station %d has no usable samples, skipping", id)
			continue
		}
		built.Bikes[id] = bikes
		built.MaxBikes[id] = maxBikes
	}
	return built, nil
}

// resampleSamples fits one station's aligned sample sequence onto the
// grid. Missing slots are excluded from the fit rather than fed to the
// regression as sentinel values.
func resampleSamples(minutes []float64, samples []daytable.Sample, stepMinutes int) ([]float64, error) {
	times := make([]float64, 0, len(samples))
	values := make([]float64, 0, len(samples))
	for i, s := range samples {
		if s.Valid {
			times = append(times, minutes[i])
			values = append(values, float64(s.Count))
		}
	}
	_, fitted, err := resample.Series(times, values, stepMinutes)
	return fitted, err
}

// BuildAndWriteDay builds one day and persists it: always the gob archive
// under outputDir, and additionally the SQLite export when sqlitePath is
// set. A day without data is reported and skipped, not fatal.
func BuildAndWriteDay(year, month, day int, dir, outputDir, sqlitePath string, opts Options) error {
	log.Printf("%s", archive.DayKey(year, month, day))
	built, err := BuildDay(year, month, day, dir, opts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}
	if err := archive.WriteFile(built, outputDir); err != nil {
		return fmt.Errorf("failed to write day archive %s: %w", built.Key, err)
	}
	if sqlitePath != "" {
		st, err := store.Open(sqlitePath)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.SaveDay(built, resample.Grid(opts.StepMinutes)); err != nil {
			return fmt.Errorf("failed to export day %s to sqlite: %w", built.Key, err)
		}
	}
	return nil
}
