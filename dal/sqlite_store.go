package dal

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"follower_bot/shared"
	_ "github.com/mattn/go-sqlite3"
	"sync"
	"time"
)

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

type sqliteStore struct {
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
}

func NewSqliteStore(cfg *shared.Config, logger shared.ILogger) IDocStore {

	var err error
	var db *sql.DB

	// https://phiresky.github.io/blog/2020/sqlite-performance-tuning/
	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	store := sqliteStore{
		logger: logger,
		db:     db,
	}
	store.mustInitUpdateDb()
	return &store
}

func (store *sqliteStore) mustInitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = store.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		store.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		store.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := store.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			store.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		store.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		store.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			store.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		if _, err = store.db.Exec(string(sqlBytes)); err != nil {
			store.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = store.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			store.logger.Errorf("Failed to update schema_ver to %d: %v", nextVer, err)
			panic(err)
		}
	}
}

func (store *sqliteStore) ReadDoc(kind Kind) ([]byte, error) {

	store.muDb.RLock()
	defer store.muDb.RUnlock()

	row := store.db.QueryRow(`SELECT body FROM documents WHERE kind=?`, string(kind))
	var body string
	if err := row.Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDocNotFound
		}
		return nil, err
	}
	return []byte(body), nil
}

func (store *sqliteStore) WriteDoc(kind Kind, doc []byte) error {

	store.muDb.Lock()
	defer store.muDb.Unlock()

	_, err := store.db.Exec(`INSERT INTO documents (kind, body, updated_at) VALUES(?, ?, ?)
		ON CONFLICT(kind) DO UPDATE SET body=excluded.body, updated_at=excluded.updated_at`,
		string(kind), string(doc), time.Now().UTC())
	return err
}
