// Package database handles database connections.
//
// It provides a thin wrapper around GORM that configures MySQL for
// production use (connection pool, DSN timeouts) and sqlite for tests.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
