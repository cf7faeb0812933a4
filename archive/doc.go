// Package archive persists built day tables as gzip-compressed gob files,
// one archive per calendar day keyed by YYYYMMDD.
//
// The Writer/Reader variants exist so custom storage backends can reuse
// the encoding without touching the filesystem helpers.
package archive
