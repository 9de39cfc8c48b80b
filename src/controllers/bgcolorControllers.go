package controllers

import (
	"github.com/baetin/monsfer-api/src/dtos"
	"github.com/baetin/monsfer-api/src/models"
	"github.com/baetin/monsfer-api/src/services"
)

type BgColorController = ResourceController[models.BgColorModel, *models.BgColorModel, dtos.BgColorInput]

func NewBgColorController(service *services.BgColorService) *BgColorController {
	return NewResourceController[models.BgColorModel, *models.BgColorModel, dtos.BgColorInput](service, Resource{
		MissingFields: "Invalid request - bgcolor_name and hexcode_id are required",
		InvalidID:     "Invalid background color ID",
		NotFound:      "Background color not found",
		Deleted:       "Background color deleted successfully",
	})
}
