package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/planet-app/user-services/migrations"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// defaultDatabasePath is used when the DATABASE environment variable is unset.
const defaultDatabasePath = "planet.db"

type UserDB struct {
	DB  *sql.DB
	Log *zerolog.Logger
}

// NewUserDB opens the SQLite database file selected by the DATABASE
// environment variable. The busy_timeout pragma bounds how long a write
// waits for the file lock, and foreign_keys enables the cascading deletes
// declared in the schema.
func NewUserDB(log *zerolog.Logger) (*UserDB, error) {
	path := os.Getenv("DATABASE")
	if path == "" {
		path = defaultDatabasePath
		log.Warn().Str("path", path).Msg("DATABASE environment variable is not set, using default path")
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Error().Err(err).Msg("Failed to open database")
		return nil, err
	}

	// Check we can actually reach the file
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Error().Err(err).Str("path", path).Msg("Database ping failed")
		return nil, err
	}

	return &UserDB{
		DB:  db,
		Log: log,
	}, nil
}

func (u *UserDB) Close() error {
	if err := u.DB.Close(); err != nil {
		return err
	}
	u.Log.Info().Msg("database connection closed")
	return nil
}

// Migrate applies the embedded goose migrations. This is a one-time setup
// step run by the init-db command; request handling assumes the tables exist.
func (u *UserDB) Migrate() error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("error setting goose dialect: %w", err)
	}

	if err := goose.Up(u.DB, "."); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	u.Log.Info().Msg("Tables initialized successfully")
	return nil
}

func (u *UserDB) execQuery(tx *sql.Tx, query string, args ...interface{}) error {
	if u.DB == nil {
		return fmt.Errorf("database connection is not established")
	}

	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}
