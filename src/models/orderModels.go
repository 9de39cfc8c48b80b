package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// OrderModel is a finalized custom case ready for production.
// The check and download columns hold the flag values sent by the client as-is.
type OrderModel struct {
	ID                int            `json:"order_custom_case_id" gorm:"column:order_custom_case_id;primaryKey;autoIncrement"`
	ProductFolderName string         `json:"order_product_folder_name" gorm:"column:order_product_folder_name;type:varchar(255);not null"`
	GoodsName         string         `json:"order_goods_name" gorm:"column:order_goods_name;type:varchar(255);not null"`
	Date              datatypes.Date `json:"order_date" gorm:"column:order_date;not null" swaggertype:"string" example:"2024-05-01"`
	Check1            string         `json:"order_check1" gorm:"column:order_check1;type:varchar(255);not null"`
	Check2            string         `json:"order_check2" gorm:"column:order_check2;type:varchar(255);not null"`
	Download          string         `json:"order_download" gorm:"column:order_download;type:varchar(255);not null"`
}

func (OrderModel) TableName() string { return "order" }

func (m *OrderModel) PrimaryKey() int      { return m.ID }
func (m *OrderModel) SetPrimaryKey(id int) { m.ID = id }

// orderJSON drops the methods of OrderModel so the wrappers below don't recurse.
type orderJSON OrderModel

// MarshalJSON writes order_date as a calendar date, matching the DATE column.
func (m OrderModel) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		orderJSON
		Date string `json:"order_date"`
	}{orderJSON(m), time.Time(m.Date).Format(time.DateOnly)})
}

func (m *OrderModel) UnmarshalJSON(data []byte) error {
	aux := struct {
		*orderJSON
		Date string `json:"order_date"`
	}{orderJSON: (*orderJSON)(m)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Date == "" {
		return nil
	}

	date, err := time.Parse(time.DateOnly, aux.Date)
	if err != nil {
		if date, err = time.Parse(time.RFC3339, aux.Date); err != nil {
			return fmt.Errorf("invalid order_date %q: %w", aux.Date, err)
		}
	}
	m.Date = datatypes.Date(date)
	return nil
}
