// Package sqlite records run history in a SQLite database using the pure Go
// modernc.org/sqlite driver.
//
// The schema lives in migrations/ as numbered .up.sql and .down.sql pairs.
// Applied versions are tracked in schema_migrations, one transaction per
// migration. The database opens in WAL mode at ~/.advent/data/history.db
// unless another data directory is given.
package sqlite
