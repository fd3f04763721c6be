package container

import (
	"github.com/slidesync/SlideBot/internal/database/repositories"
	"github.com/slidesync/SlideBot/internal/membership"
	"github.com/slidesync/SlideBot/internal/session"
	"gorm.io/gorm"
)

type AppContainer struct {
	DB           *gorm.DB
	DeliveryRepo *repositories.DeliveryRepository

	Sessions *session.Store
	Members  *membership.File
}

func NewAppContainer(db *gorm.DB, sessions *session.Store, members *membership.File) *AppContainer {
	return &AppContainer{
		DB:           db,
		DeliveryRepo: repositories.NewDeliveryRepository(db),

		Sessions: sessions,
		Members:  members,
	}
}
