// Command migrate applies the bananadb schema migrations in
// db/migrations against the configured database.
//
// Usage:
//
//	migrate up          apply all pending migrations
//	migrate down        revert all migrations
//	migrate steps N     apply N migrations (negative N reverts)
//	migrate version     print the current schema version
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"bananadb/internal/config"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: migrate [up|down|steps N|version]")
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	m, err := migrate.New("file://db/migrations", cfg.DB.DSN())
	if err != nil {
		log.Fatalf("open migrations against %s: %v", cfg.DB.Name, err)
	}
	defer m.Close()

	switch os.Args[1] {
	case "up":
		report(m.Up(), "schema is up to date")

	case "down":
		report(m.Down(), "schema fully reverted")

	case "steps":
		if len(os.Args) < 3 {
			usage()
		}
		n, err := strconv.Atoi(os.Args[2])
		if err != nil {
			log.Fatalf("steps wants a number, got %q", os.Args[2])
		}
		report(m.Steps(n), fmt.Sprintf("moved %d step(s)", n))

	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			log.Fatalf("read schema version: %v", err)
		}
		fmt.Printf("schema version %d (dirty=%v)\n", version, dirty)

	default:
		usage()
	}
}

// report treats ErrNoChange as success so reruns stay idempotent.
func report(err error, done string) {
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("migration failed: %v", err)
	}
	log.Println(done)
}
