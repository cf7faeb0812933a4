package integration

import (
	"reflect"
	"testing"

	"github.com/theoremus-urban-solutions/bikeshare-ingest/archive"
	"github.com/theoremus-urban-solutions/bikeshare-ingest/ingest"
	"github.com/theoremus-urban-solutions/bikeshare-ingest/resample"
	"github.com/theoremus-urban-solutions/bikeshare-ingest/store"
	"github.com/theoremus-urban-solutions/bikeshare-ingest/tests/helpers"
)

func buildFixtureDay(t *testing.T) *archive.Day {
	t.Helper()
	built, err := ingest.BuildDay(2017, 6, 10, helpers.CapturesDir(), ingest.Options{StepMinutes: 2})
	if err != nil {
		t.Fatalf("BuildDay failed: %v", err)
	}
	return built
}

func TestBuildDay_GridShape(t *testing.T) {
	built := buildFixtureDay(t)

	if built.Key != "20170610" {
		t.Errorf("unexpected key %q", built.Key)
	}
	if len(built.Time) != 720 {
		t.Fatalf("time matrix should have 720 rows, got %d", len(built.Time))
	}
	for i, row := range built.Time {
		if row[0] != built.Time[0][0] || row[1] != built.Time[0][1] {
			t.Fatalf("day-of-year/weekday must broadcast: row %d is %v", i, row)
		}
		if row[2] != i*2 {
			t.Fatalf("minute column should step by 2, row %d is %v", i, row)
		}
	}

	for id, series := range built.Bikes {
		if len(series) != 720 {
			t.Errorf("station %d bikes resampled to %d points, want 720", id, len(series))
		}
		if len(built.MaxBikes[id]) != 720 {
			t.Errorf("station %d max bikes resampled to %d points, want 720", id, len(built.MaxBikes[id]))
		}
	}

	// Fixture ticks sit at minutes 0, 4, 8; station 6001 reported
	// [5, 6, 6]. The piecewise-constant fit steps at the midpoint.
	b := built.Bikes[6001]
	if b[0] != 5 { // minute 0
		t.Errorf("6001 at minute 0 = %v, want 5", b[0])
	}
	if b[1] != 5 { // minute 2 == midpoint, left branch
		t.Errorf("6001 at minute 2 = %v, want 5", b[1])
	}
	if b[2] != 6 { // minute 4
		t.Errorf("6001 at minute 4 = %v, want 6", b[2])
	}
	if b[719] != 6 { // constant past the last observation
		t.Errorf("6001 at minute 1438 = %v, want 6", b[719])
	}

	if m := built.MaxBikes[6001]; m[0] != 20 || m[719] != 20 {
		t.Errorf("6001 capacity should be constant 20, got %v and %v", m[0], m[719])
	}
}

func TestArchive_RoundTrip(t *testing.T) {
	built := buildFixtureDay(t)
	dir := t.TempDir()

	if err := archive.WriteFile(built, dir); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	loaded, err := archive.ReadFile(dir, built.Key)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if !reflect.DeepEqual(built, loaded) {
		t.Error("archive round trip should preserve the day exactly")
	}
}

func TestArchive_BytesRoundTrip(t *testing.T) {
	built := buildFixtureDay(t)

	data, err := archive.Serialize(built)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	loaded, err := archive.Deserialize(data)
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if !reflect.DeepEqual(built, loaded) {
		t.Error("byte round trip should preserve the day exactly")
	}
}

func TestArchive_ReadMissing(t *testing.T) {
	if _, err := archive.ReadFile(t.TempDir(), "20170611"); err == nil {
		t.Error("expected error for missing archive")
	}
}

func TestStore_ExportRoundTrip(t *testing.T) {
	built := buildFixtureDay(t)
	dbPath := t.TempDir() + "/days.db"

	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer st.Close()

	grid := resample.Grid(2)
	if err := st.SaveDay(built, grid); err != nil {
		t.Fatalf("SaveDay failed: %v", err)
	}
	// Saving twice must upsert, not fail or duplicate.
	if err := st.SaveDay(built, grid); err != nil {
		t.Fatalf("second SaveDay failed: %v", err)
	}

	loaded, err := st.LoadDay(built.Key)
	if err != nil {
		t.Fatalf("LoadDay failed: %v", err)
	}

	if !reflect.DeepEqual(built.Bikes, loaded.Bikes) {
		t.Error("bikes series should round trip through sqlite")
	}
	if !reflect.DeepEqual(built.MaxBikes, loaded.MaxBikes) {
		t.Error("max bikes series should round trip through sqlite")
	}
	if !reflect.DeepEqual(built.Metadata, loaded.Metadata) {
		t.Error("station metadata should round trip through sqlite")
	}
}

func TestStore_LoadMissingDay(t *testing.T) {
	st, err := store.Open(t.TempDir() + "/days.db")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer st.Close()

	if _, err := st.LoadDay("20170611"); err == nil {
		t.Error("expected error for a day that was never exported")
	}
}
