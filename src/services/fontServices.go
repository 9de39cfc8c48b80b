package services

import (
	"time"

	"github.com/baetin/monsfer-api/src/models"
	"gorm.io/gorm"
)

type FontService = CrudService[models.FontModel, *models.FontModel]

// NewFontService creates a new instance of FontService
func NewFontService(db *gorm.DB, timeout time.Duration) *FontService {
	return NewCrudService[models.FontModel](db, "font", timeout)
}
