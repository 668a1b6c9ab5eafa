package main

import (
	"io/fs"
	"os"

	"librarycatalog/db"
)

// migrationsSource returns the filesystem and directory goose reads from.
// MIGRATIONS_DIR switches from the embedded files to a directory on disk.
func migrationsSource() (fs.FS, string) {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return nil, v
	}
	return db.Migrations, db.MigrationsDir
}
