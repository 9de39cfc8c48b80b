package services

import (
	"time"

	"github.com/baetin/monsfer-api/src/models"
	"gorm.io/gorm"
)

type ArtworkService = CrudService[models.ArtworkModel, *models.ArtworkModel]

// NewArtworkService creates a new instance of ArtworkService
func NewArtworkService(db *gorm.DB, timeout time.Duration) *ArtworkService {
	return NewCrudService[models.ArtworkModel](db, "artwork", timeout)
}
