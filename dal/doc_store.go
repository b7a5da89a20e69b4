package dal

import (
	"errors"
	"follower_bot/shared"
)

var ErrDocNotFound = errors.New("document not found")

// IDocStore reads and writes whole state documents, one per kind.
type IDocStore interface {
	ReadDoc(kind Kind) ([]byte, error)
	WriteDoc(kind Kind, doc []byte) error
}

// NewDocStore returns the backend selected in the config.
func NewDocStore(cfg *shared.Config, logger shared.ILogger) IDocStore {
	switch cfg.StateBackend {
	case shared.StateBackendSqlite:
		return NewSqliteStore(cfg, logger)
	case shared.StateBackendFile, "":
		return NewFileStore(cfg, logger)
	default:
		logger.Warnf("Unknown state backend '%s'; falling back to %s", cfg.StateBackend, shared.StateBackendFile)
		return NewFileStore(cfg, logger)
	}
}
