// Package boltdbtest contains utilities for testing code that uses BoltDB.
package boltdbtest

import (
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
)

// TempPath returns the path to a non-existent file in a new temporary
// directory, suitable for creating a BoltDB database.
//
// The returned function removes the directory and everything in it.
func TempPath() (string, func()) {
	dir, err := os.MkdirTemp("", "mirror-boltdb-*")
	if err != nil {
		panic(err)
	}

	return filepath.Join(dir, "mirror.boltdb"), func() {
		os.RemoveAll(dir)
	}
}

// Open opens a BoltDB database in a temporary file.
//
// The returned function must be used to close the database, instead of
// DB.Close().
func Open() (*bbolt.DB, func()) {
	path, remove := TempPath()

	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		remove()
		panic(err)
	}

	return db, func() {
		db.Close()
		remove()
	}
}
