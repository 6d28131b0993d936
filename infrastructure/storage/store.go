package storage

import (
	"context"
	"dynamic-voice/contract"
	"dynamic-voice/errors"
	"fmt"
	"log/slog"
)

type Driver string

const (
	DriverBadger Driver = "badger"
	DriverSQLite Driver = "sqlite"
)

// Open returns the store selected by driver, rooted at path.
func Open(ctx context.Context, driver Driver, path string, log *slog.Logger) (contract.Store, error) {
	log.Info("Use storage", "driver", driver, "path", path)
	var (
		store contract.Store
		err   error
	)
	switch driver {
	case DriverBadger:
		store, err = OpenBadger(path, log)
	case DriverSQLite:
		store, err = OpenSQLite(ctx, path, log)
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownStore, driver)
	}
	if err != nil {
		return nil, err
	}
	return store, nil
}

// NameLister is implemented by both backends for offline inspection.
type NameLister interface {
	AllPreferredNames(ctx context.Context) (map[string]string, error)
}

var (
	_ NameLister = (*BadgerStore)(nil)
	_ NameLister = (*SQLiteStore)(nil)
)
