// Package config provides application configuration loading and validation.
//
// Configuration is read from config.yml in the working directory. All
// sections have sensible defaults; a minimal config only needs the capture
// source directory:
//
//	ingest:
//	  sourceDir: /data/bikeshare/captures
//	  verbosity: 1
//	  repairAlignment: false
//	resample:
//	  stepMinutes: 2
//	archive:
//	  outputDir: /data/bikeshare/days
//	  sqlitePath: /data/bikeshare/days.db
//	daemon:
//	  schedule: "10 0 * * *"
//
// Validation uses go-playground/validator struct tags; a config that fails
// validation is rejected at startup rather than producing a partial run.
package config
