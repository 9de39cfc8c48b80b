package dtos

import (
	"time"

	"github.com/baetin/monsfer-api/src/models"
	"gorm.io/datatypes"
)

type OrderInput struct {
	ProductFolderName string `json:"order_product_folder_name" binding:"required" example:"2024-05-01_case_001"`
	GoodsName         string `json:"order_goods_name" binding:"required" example:"iPhone 15 Pro custom case"`
	Date              string `json:"order_date" binding:"required" example:"2024-05-01"`
	Check1            string `json:"order_check1" binding:"required" example:"Y"`
	Check2            string `json:"order_check2" binding:"required" example:"N"`
	Download          string `json:"order_download" binding:"required" example:"N"`
}

func (in OrderInput) ToModel() (*models.OrderModel, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}

	return &models.OrderModel{
		ProductFolderName: in.ProductFolderName,
		GoodsName:         in.GoodsName,
		Date:              datatypes.Date(date),
		Check1:            in.Check1,
		Check2:            in.Check2,
		Download:          in.Download,
	}, nil
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}
