package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"syscall"
	"time"

	"github.com/oklog/run"
	"github.com/robfig/cron/v3"

	"github.com/theoremus-urban-solutions/bikeshare-ingest/config"
	"github.com/theoremus-urban-solutions/bikeshare-ingest/ingest"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|daemon")
	year := flag.Int("year", 0, "year to build (defaults to yesterday)")
	month := flag.Int("month", 0, "month to build")
	day := flag.Int("day", 0, "day to build")
	dir := flag.String("dir", "", "capture source directory (overrides config)")
	out := flag.String("out", "", "archive output directory (overrides config)")
	verbosity := flag.Int("verbosity", -1, "verbosity 0-2 (overrides config)")
	flag.Parse()

	ingest.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		panic(err)
	}
	cfg := config.Config

	if *dir != "" {
		cfg.Ingest.SourceDir = *dir
	}
	if *out != "" {
		cfg.Archive.OutputDir = *out
	}
	if *verbosity >= 0 {
		cfg.Ingest.Verbosity = *verbosity
	}
	opts := ingest.OptionsFromConfig(&cfg)

	switch *mode {
	case "oneshot":
		y, m, d := *year, *month, *day
		if y == 0 || m == 0 || d == 0 {
			y, m, d = yesterday()
		}
		err := ingest.BuildAndWriteDay(y, m, d, cfg.Ingest.SourceDir, cfg.Archive.OutputDir, cfg.Archive.SQLitePath, opts)
		if errors.Is(err, ingest.ErrNoData) {
			log.Printf("%v", err)
			return
		}
		if err != nil {
			panic(err)
		}
	case "daemon":
		if err := runDaemon(&cfg, opts); err != nil {
			log.Printf("daemon stopped: %v", err)
		}
	default:
		panic("unknown mode")
	}
}

// runDaemon schedules the previous day's archive build and blocks until
// interrupted.
func runDaemon(cfg *config.AppConfig, opts ingest.Options) error {
	c := cron.New()
	_, err := c.AddFunc(cfg.Daemon.Schedule, func() {
		y, m, d := yesterday()
		err := ingest.BuildAndWriteDay(y, m, d, cfg.Ingest.SourceDir, cfg.Archive.OutputDir, cfg.Archive.SQLitePath, opts)
		if err != nil {
			log.Printf("scheduled build failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	var g run.Group
	cronDone := make(chan struct{})
	g.Add(func() error {
		c.Start()
		<-cronDone
		return nil
	}, func(error) {
		<-c.Stop().Done()
		close(cronDone)
	})
	g.Add(run.SignalHandler(context.Background(), syscall.SIGINT, syscall.SIGTERM))

	log.Printf("daemon started, schedule %q", cfg.Daemon.Schedule)
	return g.Run()
}

func yesterday() (int, int, int) {
	t := time.Now().AddDate(0, 0, -1)
	return t.Year(), int(t.Month()), t.Day()
}
