package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-auth-service/internal/logger"
)

// sqliteParams enables foreign keys and waits on a locked database instead
// of failing immediately.
const sqliteParams = "_foreign_keys=on&_busy_timeout=5000"

func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	path, driverDSN := sqliteDSN(dsn)

	// db will be in file
	if path != "" {
		if err := createLocalDBFileIfNotExists(path); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
			return nil, fmt.Errorf("error creating database file: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", driverDSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// one writer at a time; also keeps an in-memory database alive and shared
	conn.SetMaxOpenConns(1)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return newDB(conn, DialectSQLite, log), nil
}

// sqliteDSN converts a sqlite:// or file: DSN into a go-sqlite3 DSN. path is
// the database file on disk, empty for in-memory databases.
func sqliteDSN(dsn string) (path, driverDSN string) {
	trimmed := strings.TrimPrefix(dsn, "sqlite://")
	trimmed = strings.TrimPrefix(trimmed, "file:")

	name, query, _ := strings.Cut(trimmed, "?")
	if query == "" {
		query = sqliteParams
	} else {
		query += "&" + sqliteParams
	}
	driverDSN = "file:" + name + "?" + query

	if name == ":memory:" || strings.Contains(query, "mode=memory") {
		return "", driverDSN
	}

	return name, driverDSN
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
