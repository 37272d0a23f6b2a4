package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/propwire/resolve-cli/internal/db"
	"github.com/propwire/resolve-cli/internal/store"
)

// initStore connects to Postgres, runs migrations, and returns the
// store plus a cleanup func.
func initStore(ctx context.Context) (*store.Store, func(), error) {
	if cfg.Store.DatabaseURL == "" {
		return nil, nil, eris.New("store.database_url not configured")
	}

	pool, err := db.Connect(ctx, cfg.Store.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	if err := store.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}

	return store.NewStore(pool), pool.Close, nil
}
