package controllers

import (
	"github.com/baetin/monsfer-api/src/dtos"
	"github.com/baetin/monsfer-api/src/models"
	"github.com/baetin/monsfer-api/src/services"
)

type FontColorController = ResourceController[models.FontColorModel, *models.FontColorModel, dtos.FontColorInput]

func NewFontColorController(service *services.FontColorService) *FontColorController {
	return NewResourceController[models.FontColorModel, *models.FontColorModel, dtos.FontColorInput](service, Resource{
		MissingFields: "Invalid request - fontcolor_name is required",
		InvalidID:     "Invalid font color ID",
		NotFound:      "Font color not found",
		Deleted:       "Font color deleted successfully",
	})
}
