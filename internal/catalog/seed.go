package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Source supplies the entries a catalog starts with.
type Source interface {
	Load(ctx context.Context) ([]Entry, error)
}

// Seed loads entries from src into store. Records that the store rejects
// (duplicate codes, broken counts) are logged and skipped. It returns the
// number of entries added.
func Seed(ctx context.Context, store *Store, src Source) (int, error) {
	entries, err := src.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load seed entries: %w", err)
	}

	added := 0
	for _, e := range entries {
		if err := store.AddBook(e); err != nil {
			if errors.Is(err, ErrDuplicateCode) || errors.Is(err, ErrInvalidQuantity) {
				log.Warn().Err(err).Str("code", e.Code).Msg("seed: skipping entry")
				continue
			}
			return added, err
		}
		added++
	}

	log.Info().
		Str("catalog", store.Name()).
		Int("loaded", len(entries)).
		Int("added", added).
		Msg("seeded catalog")
	return added, nil
}
