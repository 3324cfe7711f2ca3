package topology

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-home-io/imager/plugins/common"
	"github.com/go-home-io/imager/plugins/imager"
	"github.com/go-home-io/imager/plugins/imager/enums"
	"github.com/go-home-io/imager/systems"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/pkg/errors"
)

const (
	dirPermissions = 0750
	busyTimeoutMS  = 5000
	queryTimeout   = 5 * time.Second

	schema = `CREATE TABLE IF NOT EXISTS peripherals (
	id    INTEGER PRIMARY KEY AUTOINCREMENT,
	guid  TEXT NOT NULL,
	class TEXT NOT NULL
)`
)

// DatabaseSettings describes peripheral database configuration.
type DatabaseSettings struct {
	Path string `yaml:"path" validate:"required"`
}

// ConstructDatabase has data required for a new peripheral database.
type ConstructDatabase struct {
	Logger   common.ILoggerProvider
	Settings *DatabaseSettings
}

// PeripheralDatabase is a peripheral provider backed by SQLite.
// GUIDs are stored in their string form so the table stays editable by hand.
type PeripheralDatabase struct {
	sync.Mutex

	logger common.ILoggerProvider
	db     *sql.DB
	path   string
}

// OpenPeripheralDatabase opens or creates peripheral database.
func OpenPeripheralDatabase(ctor *ConstructDatabase) (*PeripheralDatabase, error) {
	path := ctor.Settings.Path
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return nil, errors.Wrap(err, "creating database directory")
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_busy_timeout=%d", path, busyTimeoutMS))
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}

	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close() // nolint: gosec
		return nil, errors.Wrap(err, "creating schema")
	}

	ctor.Logger.Debug("Peripheral database opened", common.LogSystemToken, systems.SysPeripherals.String(),
		common.LogFileToken, path)

	return &PeripheralDatabase{
		logger: ctor.Logger,
		db:     db,
		path:   path,
	}, nil
}

// Enumerate returns up to max GUIDs of the class in insertion order.
// Rows with unparsable GUIDs are skipped.
func (p *PeripheralDatabase) Enumerate(class enums.PeripheralClass, max int) ([]imager.GUID, error) {
	if max <= 0 {
		return nil, &ErrInvalidMax{Max: max}
	}

	p.Lock()
	defer p.Unlock()

	if nil == p.db {
		return nil, &ErrDatabaseClosed{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	rows, err := p.db.QueryContext(ctx,
		"SELECT guid FROM peripherals WHERE class = ? ORDER BY id", class.String())
	if err != nil {
		return nil, errors.Wrap(err, "querying peripherals")
	}
	defer rows.Close() // nolint: errcheck

	result := make([]imager.GUID, 0)
	for rows.Next() && len(result) < max {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, errors.Wrap(err, "reading peripheral")
		}

		guid, err := imager.ParseGUID(raw)
		if err != nil {
			p.logger.Warn("Skipping invalid peripheral", common.LogSystemToken, systems.SysPeripherals.String(),
				common.LogGUIDToken, raw)
			continue
		}

		result = append(result, guid)
	}

	return result, errors.Wrap(rows.Err(), "iterating peripherals")
}

// Add appends a peripheral record.
func (p *PeripheralDatabase) Add(guid imager.GUID, class enums.PeripheralClass) error {
	p.Lock()
	defer p.Unlock()

	if nil == p.db {
		return &ErrDatabaseClosed{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	_, err := p.db.ExecContext(ctx, "INSERT INTO peripherals (guid, class) VALUES (?, ?)",
		guid.String(), class.String())
	return errors.Wrap(err, "adding peripheral")
}

// Path returns database file location.
func (p *PeripheralDatabase) Path() string {
	return p.path
}

// Close closes database connection.
func (p *PeripheralDatabase) Close() error {
	p.Lock()
	defer p.Unlock()

	if nil == p.db {
		return nil
	}

	err := p.db.Close()
	p.db = nil
	return errors.Wrap(err, "closing database")
}
