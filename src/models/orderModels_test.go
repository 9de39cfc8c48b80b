package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestOrderModel_JSONDate(t *testing.T) {
	order := OrderModel{
		ID:                7,
		ProductFolderName: "folder",
		GoodsName:         "case",
		Date:              datatypes.Date(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
		Check1:            "Y",
		Check2:            "N",
		Download:          "N",
	}

	data, err := json.Marshal(order)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"order_custom_case_id": 7,
		"order_product_folder_name": "folder",
		"order_goods_name": "case",
		"order_date": "2024-05-01",
		"order_check1": "Y",
		"order_check2": "N",
		"order_download": "N"
	}`, string(data))

	var decoded OrderModel
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, order, decoded)
}

func TestOrderModel_JSONDateInSlice(t *testing.T) {
	data, err := json.Marshal([]OrderModel{{ID: 1, Date: datatypes.Date(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC))}})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"order_date":"2023-12-31"`)
}

func TestOrderModel_UnmarshalInvalidDate(t *testing.T) {
	var order OrderModel
	assert.Error(t, json.Unmarshal([]byte(`{"order_date":"yesterday"}`), &order))
}
