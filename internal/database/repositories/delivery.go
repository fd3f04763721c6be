package repositories

import (
	"context"

	"github.com/slidesync/SlideBot/internal/database/models"
	"gorm.io/gorm"
)

type DeliveryRepository struct {
	db *gorm.DB
}

func NewDeliveryRepository(db *gorm.DB) *DeliveryRepository {
	return &DeliveryRepository{db: db}
}

func (r *DeliveryRepository) Record(ctx context.Context, rec *models.DeliveryRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *DeliveryRepository) Recent(ctx context.Context, limit int) ([]models.DeliveryRecord, error) {
	var recs []models.DeliveryRecord
	err := r.db.WithContext(ctx).
		Order("id desc").
		Limit(limit).
		Find(&recs).Error
	return recs, err
}

func (r *DeliveryRepository) ByChannel(ctx context.Context, channel string, limit int) ([]models.DeliveryRecord, error) {
	var recs []models.DeliveryRecord
	err := r.db.WithContext(ctx).
		Where("channel = ?", channel).
		Order("id desc").
		Limit(limit).
		Find(&recs).Error
	return recs, err
}
