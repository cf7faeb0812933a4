// Package ingest drives one day's ingestion run: glob the day's capture
// files, decode them in filename order, fold them into an aggregate, and
// optionally reduce the result onto the fixed minute grid and persist it.
//
// Processing is single-threaded and synchronous inside a day because the
// duplicate-snapshot guard and series alignment depend on strict arrival
// order. Independent days are self-contained and can safely be built in
// parallel by the caller.
package ingest
