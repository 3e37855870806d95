package postgres

import (
	"context"
	"database/sql"
	"time"

	"motorcycle-rental-backend/internal/domain"
	"motorcycle-rental-backend/internal/logger"
	"motorcycle-rental-backend/internal/repository"
)

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.NotificationLog) error {
	query := `INSERT INTO notification_logs (id, motorcycle_id, message, created_on)
	          VALUES ($1, $2, $3, $4)`
	logger.DatabaseCall("INSERT", "notification_logs", "motorcycleID", n.MotorcycleID)

	if n.CreatedOn.IsZero() {
		n.CreatedOn = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, query, n.ID, n.MotorcycleID, n.Message, n.CreatedOn)
	logger.DatabaseResult("INSERT", 1, err, "notificationID", n.ID)
	return err
}

func (r *notificationRepository) List(ctx context.Context, limit, offset int32) ([]domain.NotificationLog, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM notification_logs`).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, motorcycle_id, message, created_on
	          FROM notification_logs ORDER BY created_on DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var logs []domain.NotificationLog
	for rows.Next() {
		var n domain.NotificationLog
		if err := rows.Scan(&n.ID, &n.MotorcycleID, &n.Message, &n.CreatedOn); err != nil {
			return nil, 0, err
		}
		logs = append(logs, n)
	}
	return logs, count, rows.Err()
}
