package storage

import (
	"context"
	"dynamic-voice/contract"
	"dynamic-voice/domain"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

var _ contract.Store = (*BadgerStore)(nil)

// Key layout, one prefix per table:
//
//	channel:{channelID}     -> ownerID
//	custom_name:{userID}    -> customName
const (
	channelPrefix    = "channel:"
	customNamePrefix = "custom_name:"
)

type BadgerStore struct {
	db  *badger.DB
	log *slog.Logger
}

func NewBadgerStore(db *badger.DB, log *slog.Logger) *BadgerStore {
	return &BadgerStore{db: db, log: log}
}

// DB exposes the handle to the debug inspector.
func (s *BadgerStore) DB() *badger.DB { return s.db }

// OpenBadger opens (or creates) the database directory at path.
func OpenBadger(path string, log *slog.Logger) (*BadgerStore, error) {
	options := badger.DefaultOptions(path)
	if log.Enabled(context.Background(), slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.WARNING)
	}
	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("badger open %s: %w", path, err)
	}
	return NewBadgerStore(db, log), nil
}

// GetAllChannelRecords scans the channel prefix. Order follows the channel ID.
func (s *BadgerStore) GetAllChannelRecords(_ context.Context) ([]domain.ChannelRecord, error) {
	var records []domain.ChannelRecord
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(channelPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			channelID := strings.TrimPrefix(string(item.Key()), channelPrefix)
			err := item.Value(func(v []byte) error {
				records = append(records, domain.ChannelRecord{ChannelID: channelID, OwnerID: string(v)})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during channel scan: %w", err)
	}
	return records, nil
}

func (s *BadgerStore) UpsertChannelRecord(_ context.Context, channelID, ownerID string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(channelPrefix+channelID), []byte(ownerID))
	})
}

func (s *BadgerStore) DeleteChannelRecord(_ context.Context, channelID string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(channelPrefix + channelID))
	})
}

func (s *BadgerStore) GetPreferredName(_ context.Context, userID string) (string, bool, error) {
	var name string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(customNamePrefix + userID))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			name = string(v)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return name, true, nil
}

func (s *BadgerStore) SetPreferredName(_ context.Context, userID, name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(customNamePrefix+userID), []byte(name))
	})
}

func (s *BadgerStore) DeletePreferredName(_ context.Context, userID string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(customNamePrefix + userID))
	})
}

func (s *BadgerStore) AllPreferredNames(_ context.Context) (map[string]string, error) {
	names := make(map[string]string)
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(customNamePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			userID := strings.TrimPrefix(string(item.Key()), customNamePrefix)
			if err := item.Value(func(v []byte) error {
				names[userID] = string(v)
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during custom name scan: %w", err)
	}
	return names, nil
}

// Close releases the directory lock and flushes pending writes.
func (s *BadgerStore) Close() error {
	s.log.Info("Closing BadgerDB...")
	return s.db.Close()
}
