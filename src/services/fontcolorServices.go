package services

import (
	"time"

	"github.com/baetin/monsfer-api/src/models"
	"gorm.io/gorm"
)

type FontColorService = CrudService[models.FontColorModel, *models.FontColorModel]

// NewFontColorService creates a new instance of FontColorService
func NewFontColorService(db *gorm.DB, timeout time.Duration) *FontColorService {
	return NewCrudService[models.FontColorModel](db, "fontcolor", timeout)
}
