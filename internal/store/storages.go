package store

import "github.com/Raphalinho91/user-accounts/internal/logger"

// Storages bundles every repository the services depend on.
type Storages struct {
	UserRepository UserRepository
	Pinger         Pinger
}

// NewStorages builds the repositories on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		Pinger:         db,
	}
}
