package services_test

import (
	"bytes"
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/baetin/monsfer-api/src/models"
	"github.com/baetin/monsfer-api/src/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/datatypes"
)

func newOrder(folder string) *models.OrderModel {
	return &models.OrderModel{
		ProductFolderName: folder,
		GoodsName:         "iPhone 15 case",
		Date:              datatypes.Date(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
		Check1:            "Y",
		Check2:            "N",
		Download:          "N",
	}
}

func TestOrderService_DeleteAllEmpty(t *testing.T) {
	svc := services.NewOrderService(newTestDB(t), time.Second)

	assert.ErrorIs(t, svc.DeleteAll(context.Background()), services.ErrNothingToDelete)
}

func TestOrderService_DeleteAll(t *testing.T) {
	svc := services.NewOrderService(newTestDB(t), time.Second)
	ctx := context.Background()

	for _, folder := range []string{"a", "b", "c"} {
		_, err := svc.Create(ctx, newOrder(folder))
		require.NoError(t, err)
	}

	require.NoError(t, svc.DeleteAll(ctx))

	orders, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	assert.ErrorIs(t, svc.DeleteAll(ctx), services.ErrNothingToDelete)
}

func TestOrderService_CreateKeepsDate(t *testing.T) {
	svc := services.NewOrderService(newTestDB(t), time.Second)
	ctx := context.Background()

	created, err := svc.Create(ctx, newOrder("folder-1"))
	require.NoError(t, err)

	stored, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", time.Time(stored.Date).Format(time.DateOnly))
	assert.Equal(t, "folder-1", stored.ProductFolderName)
}

func TestOrderService_Export(t *testing.T) {
	svc := services.NewOrderService(newTestDB(t), time.Second)
	ctx := context.Background()

	first, err := svc.Create(ctx, newOrder("folder-1"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, newOrder("folder-2"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(ctx, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Orders")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "order_custom_case_id", rows[0][0])
	assert.Equal(t, []string{strconv.Itoa(first.ID), "folder-1", "iPhone 15 case", "2024-05-01", "Y", "N", "N"}, rows[1])
	assert.Equal(t, "folder-2", rows[2][1])
}

func TestOrderService_ExportEmpty(t *testing.T) {
	svc := services.NewOrderService(newTestDB(t), time.Second)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Orders")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
