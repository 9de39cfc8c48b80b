package dtos

import "github.com/baetin/monsfer-api/src/models"

type FontInput struct {
	Name      string `json:"font_name" binding:"required" example:"Nanum Gothic"`
	HexcodeID int    `json:"hexcode_id" binding:"required" example:"1"`
	FilePath  string `json:"font_file_path" binding:"required" example:"/fonts/NanumGothic.ttf"`
}

func (in FontInput) ToModel() (*models.FontModel, error) {
	return &models.FontModel{Name: in.Name, HexcodeID: in.HexcodeID, FilePath: in.FilePath}, nil
}
