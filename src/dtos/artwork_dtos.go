package dtos

import "github.com/baetin/monsfer-api/src/models"

type ArtworkInput struct {
	Title     string  `json:"title" binding:"required" example:"The Great Wave"`
	Artist    *string `json:"artist" example:"Hokusai"`
	ImagePath string  `json:"image_path" binding:"required" example:"/images/great-wave.png"`
}

func (in ArtworkInput) ToModel() (*models.ArtworkModel, error) {
	return &models.ArtworkModel{
		Title:     in.Title,
		Artist:    in.Artist,
		ImagePath: in.ImagePath,
	}, nil
}
