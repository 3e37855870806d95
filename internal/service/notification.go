package service

import (
	"context"

	"motorcycle-rental-backend/internal/domain"
	"motorcycle-rental-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) List(ctx context.Context, page, pageSize int32) ([]domain.NotificationLog, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	return s.noteRepo.List(ctx, pageSize, offset)
}
