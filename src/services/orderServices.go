package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/baetin/monsfer-api/src/models"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const orderSheet = "Orders"

var orderExportHeaders = []string{
	"order_custom_case_id",
	"order_product_folder_name",
	"order_goods_name",
	"order_date",
	"order_check1",
	"order_check2",
	"order_download",
}

// OrderService adds the collection operations orders support on top of the
// single-row ones.
type OrderService struct {
	*CrudService[models.OrderModel, *models.OrderModel]
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(db *gorm.DB, timeout time.Duration) *OrderService {
	return &OrderService{CrudService: NewCrudService[models.OrderModel](db, "order", timeout)}
}

// DeleteAll removes every order. An empty collection yields ErrNothingToDelete.
func (s *OrderService) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result := s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.OrderModel{})
	if result.Error != nil {
		return s.fail("delete all", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNothingToDelete
	}
	return nil
}

// Export writes every order as an xlsx workbook with one row per order.
func (s *OrderService) Export(ctx context.Context, w io.Writer) error {
	orders, err := s.List(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", orderSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(orderSheet, "A1", &orderExportHeaders); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, order := range orders {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			order.ID,
			order.ProductFolderName,
			order.GoodsName,
			time.Time(order.Date).Format(time.DateOnly),
			order.Check1,
			order.Check2,
			order.Download,
		}
		if err := f.SetSheetRow(orderSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write order %d: %w", order.ID, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
