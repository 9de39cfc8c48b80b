package controllers

import (
	"github.com/baetin/monsfer-api/src/dtos"
	"github.com/baetin/monsfer-api/src/models"
	"github.com/baetin/monsfer-api/src/services"
)

type ArtworkController = ResourceController[models.ArtworkModel, *models.ArtworkModel, dtos.ArtworkInput]

func NewArtworkController(service *services.ArtworkService) *ArtworkController {
	return NewResourceController[models.ArtworkModel, *models.ArtworkModel, dtos.ArtworkInput](service, Resource{
		MissingFields: "Invalid request - title and image_path are required",
		InvalidID:     "Invalid artwork ID",
		NotFound:      "Artwork not found",
		Deleted:       "Artwork deleted successfully",
	})
}
