package store

import "github.com/MKhiriev/go-auth-service/internal/logger"

// Storages bundles the repositories backed by one database connection.
type Storages struct {
	UserRepository UserRepository
	RoleRepository RoleRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		RoleRepository: NewRoleRepository(db, logger),
	}
}
