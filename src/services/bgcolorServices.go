package services

import (
	"time"

	"github.com/baetin/monsfer-api/src/models"
	"gorm.io/gorm"
)

type BgColorService = CrudService[models.BgColorModel, *models.BgColorModel]

// NewBgColorService creates a new instance of BgColorService
func NewBgColorService(db *gorm.DB, timeout time.Duration) *BgColorService {
	return NewCrudService[models.BgColorModel](db, "bgcolor", timeout)
}
