// Command seedsources imports the data-source reference table from an
// Excel workbook. The first sheet is expected to carry a header row
// followed by (name, country) columns. Existing rows are upserted by
// name, so the command is safe to re-run.
// Usage: go run ./cmd/seedsources <file.xlsx>
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"bananadb/internal/config"
	"bananadb/internal/domain"
	"bananadb/internal/repository/postgres"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: seedsources <file.xlsx>")
	}
	xlsxPath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return fmt.Errorf("read sheet %s: %w", sheetName, err)
	}

	repo := postgres.NewDataSourceRepo(db)
	ctx := context.Background()

	var imported, skipped int
	for i, row := range rows {
		// Row 0 is the header.
		if i == 0 || len(row) < 2 {
			continue
		}
		name := strings.TrimSpace(row[0])
		country := strings.TrimSpace(row[1])
		if name == "" || country == "" {
			skipped++
			continue
		}

		source := &domain.DataSource{Name: name, Country: country}
		if err := repo.UpsertByName(ctx, source); err != nil {
			return fmt.Errorf("upsert %q: %w", name, err)
		}
		imported++
	}

	log.Printf("imported %d data sources from %s (%d rows skipped)", imported, xlsxPath, skipped)
	return nil
}
