package controllers

import (
	"github.com/baetin/monsfer-api/src/dtos"
	"github.com/baetin/monsfer-api/src/models"
	"github.com/baetin/monsfer-api/src/services"
)

type FontController = ResourceController[models.FontModel, *models.FontModel, dtos.FontInput]

func NewFontController(service *services.FontService) *FontController {
	return NewResourceController[models.FontModel, *models.FontModel, dtos.FontInput](service, Resource{
		MissingFields: "Invalid request - font_name, hexcode_id and font_file_path are required",
		InvalidID:     "Invalid font ID",
		NotFound:      "Font not found",
		Deleted:       "Font deleted successfully",
	})
}
