package prefs

import (
	"context"
	"fmt"

	"github.com/CrestNiraj12/terminalfeed/app"
	"github.com/CrestNiraj12/terminalfeed/infra/config"
)

// Open builds the preference store selected by cfg.PrefsBackend.
func Open(ctx context.Context, cfg config.Config) (app.PreferenceStore, error) {
	switch cfg.PrefsBackend {
	case config.BackendFile, "":
		return NewFileStore(cfg.PrefsPath, cfg.Scope), nil
	case config.BackendSQLite:
		store, err := NewSQLiteStore(cfg.SQLitePath, cfg.Scope)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.BackendRedis:
		store, err := NewRedisStore(ctx, cfg.RedisURL, cfg.Scope)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	return nil, fmt.Errorf("unknown preference backend %q", cfg.PrefsBackend)
}
