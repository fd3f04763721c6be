package models

import "time"

// DeliveryRecord is one completed (or failed) slide-change
// notification. StatusCode 0 marks a request that never got a
// response.
type DeliveryRecord struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Channel    string    `gorm:"index" json:"channel"`
	URL        string    `json:"url"`
	StatusCode int       `json:"statusCode"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (DeliveryRecord) TableName() string {
	return "deliveries"
}
