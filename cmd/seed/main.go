package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"librarycatalog/internal/catalog"
	"librarycatalog/internal/config"
	"librarycatalog/internal/platform/logger"
)

func main() {
	var (
		count    = flag.Int("count", 1000, "Number of generated entries when -file is empty")
		file     = flag.String("file", "", "JSON fixture file to load instead of generated entries")
		truncate = flag.Bool("truncate", false, "Empty catalog_entries before inserting")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	var entries []catalog.Entry
	if *file != "" {
		entries, err = catalog.FileSource{Path: *file}.Load(ctx)
		if err != nil {
			log.Fatal().Err(err).Str("file", *file).Msg("failed to load fixtures")
		}
	} else {
		if err := checkCount(*count); err != nil {
			log.Fatal().Err(err).Int("count", *count).Msg("invalid -count")
		}
		log.Info().Int("count", *count).Msg("generating entries")
		entries = generateEntries(rand.New(rand.NewSource(time.Now().UnixNano())), *count)
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Str("dsn", config.RedactDSN(cfg.DatabaseDSN)).Msg("failed to connect to database")
	}
	defer pool.Close()

	inserted, err := insertEntries(ctx, pool, entries, *truncate)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to insert entries")
	}
	log.Info().Int64("inserted", inserted).Msg("catalog entries seeded")

	var total int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM catalog_entries").Scan(&total); err != nil {
		log.Warn().Err(err).Msg("cannot count catalog entries")
		return
	}
	log.Info().Int("total", total).Msg("catalog entries in database")
}

var catalogColumns = []string{
	"code", "title", "author", "genre", "publication_year",
	"total_copies", "available_copies", "borrowable",
}

// insertEntries bulk loads entries with COPY in one transaction. position is
// assigned by the sequence, so slice order becomes catalog order.
func insertEntries(ctx context.Context, pool *pgxpool.Pool, entries []catalog.Entry, truncate bool) (int64, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if truncate {
		if _, err := tx.Exec(ctx, "TRUNCATE catalog_entries RESTART IDENTITY"); err != nil {
			return 0, fmt.Errorf("truncate: %w", err)
		}
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{"catalog_entries"}, catalogColumns, pgx.CopyFromRows(entryRows(entries)))
	if err != nil {
		return 0, fmt.Errorf("copy catalog_entries: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return n, nil
}

func entryRows(entries []catalog.Entry) [][]any {
	rows := make([][]any, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []any{
			e.Code, e.Title, e.Author, e.Genre, e.PublicationYear,
			e.TotalCopies, e.AvailableCopies, e.Borrowable,
		})
	}
	return rows
}
