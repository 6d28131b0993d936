package storage

import (
	"context"
	"database/sql"
	"dynamic-voice/contract"
	"dynamic-voice/domain"
	"errors"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"
)

var _ contract.Store = (*SQLiteStore)(nil)

const (
	channelsTableStmt = `
	CREATE TABLE IF NOT EXISTS "channels" (
		"channelId" TEXT NOT NULL UNIQUE,
		"ownerId" TEXT NOT NULL,
		PRIMARY KEY("channelId")
	);`
	customNamesTableStmt = `
	CREATE TABLE IF NOT EXISTS "custom_channel_names" (
		"userId" TEXT NOT NULL UNIQUE,
		"customName" TEXT NOT NULL,
		PRIMARY KEY("userId")
	);`
)

type SQLiteStore struct {
	db  *sql.DB
	log *slog.Logger
}

// OpenSQLite opens the database file and creates both tables if needed.
func OpenSQLite(ctx context.Context, dataSourceName string, log *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("sqlite open %s: %w", dataSourceName, err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{channelsTableStmt, customNamesTableStmt} {
		if _, err = db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to create table: %w", err)
		}
	}
	return &SQLiteStore{db: db, log: log}, nil
}

func (s *SQLiteStore) GetAllChannelRecords(ctx context.Context) ([]domain.ChannelRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT channelId, ownerId FROM channels ORDER BY channelId`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.ChannelRecord
	for rows.Next() {
		var r domain.ChannelRecord
		if err := rows.Scan(&r.ChannelID, &r.OwnerID); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) UpsertChannelRecord(ctx context.Context, channelID, ownerID string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO channels (channelId, ownerId) VALUES (?, ?)
		ON CONFLICT(channelId) DO UPDATE SET ownerId=excluded.ownerId`,
		channelID, ownerID)
	return err
}

func (s *SQLiteStore) DeleteChannelRecord(ctx context.Context, channelID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM channels WHERE channelId = ?`, channelID)
	return err
}

func (s *SQLiteStore) GetPreferredName(ctx context.Context, userID string) (string, bool, error) {
	var name string
	err := s.db.QueryRowContext(ctx,
		`SELECT customName FROM custom_channel_names WHERE userId = ?`, userID).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return name, true, nil
}

func (s *SQLiteStore) SetPreferredName(ctx context.Context, userID, name string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO custom_channel_names (userId, customName) VALUES (?, ?)
		ON CONFLICT(userId) DO UPDATE SET customName=excluded.customName`,
		userID, name)
	return err
}

func (s *SQLiteStore) DeletePreferredName(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM custom_channel_names WHERE userId = ?`, userID)
	return err
}

func (s *SQLiteStore) AllPreferredNames(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT userId, customName FROM custom_channel_names`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make(map[string]string)
	for rows.Next() {
		var userID, name string
		if err := rows.Scan(&userID, &name); err != nil {
			return nil, err
		}
		names[userID] = name
	}
	return names, rows.Err()
}

func (s *SQLiteStore) Close() error {
	s.log.Info("Closing SQLite...")
	return s.db.Close()
}
