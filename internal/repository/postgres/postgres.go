package postgres

import (
	"database/sql"
	"motorcycle-rental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.MotorcycleRepository
	repository.DriverRepository
	repository.RentalRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		MotorcycleRepository:   NewMotorcycleRepository(db),
		DriverRepository:       NewDriverRepository(db),
		RentalRepository:       NewRentalRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
