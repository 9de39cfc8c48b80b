package dtos

import "github.com/baetin/monsfer-api/src/models"

type BgColorInput struct {
	Name      string `json:"bgcolor_name" binding:"required" example:"Red"`
	HexcodeID int    `json:"hexcode_id" binding:"required" example:"3"`
}

func (in BgColorInput) ToModel() (*models.BgColorModel, error) {
	return &models.BgColorModel{Name: in.Name, HexcodeID: in.HexcodeID}, nil
}
