package dtos

import "github.com/baetin/monsfer-api/src/models"

type FontColorInput struct {
	Name      string `json:"fontcolor_name" binding:"required" example:"Black"`
	HexcodeID *int   `json:"hexcode_id" example:"2"`
}

func (in FontColorInput) ToModel() (*models.FontColorModel, error) {
	return &models.FontColorModel{Name: in.Name, HexcodeID: in.HexcodeID}, nil
}
