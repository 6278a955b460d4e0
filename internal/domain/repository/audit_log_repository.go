package repository

import (
	"clinic-appointment-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindByUserID(db *gorm.DB, userID int64, limit int) ([]entity.AuditLog, error)
}
