package controllers

import (
	"bytes"
	"net/http"

	"github.com/baetin/monsfer-api/src/dtos"
	"github.com/baetin/monsfer-api/src/models"
	"github.com/baetin/monsfer-api/src/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	lastOrderKey   = "lastOrderId"
	exportFilename = "orders.xlsx"
	xlsxMimeType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type OrderController struct {
	*ResourceController[models.OrderModel, *models.OrderModel, dtos.OrderInput]
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{
		ResourceController: NewResourceController[models.OrderModel, *models.OrderModel, dtos.OrderInput](service, Resource{
			MissingFields: "Invalid request - required order information is missing",
			InvalidID:     "Invalid order ID",
			NotFound:      "Order not found",
			Deleted:       "Order deleted successfully",
		}),
		service: service,
	}
}

// Create handles POST requests to create an order and remembers it in the caller's session
func (c *OrderController) Create(ctx *gin.Context) {
	created, ok := c.create(ctx)
	if !ok {
		return
	}

	session := sessions.Default(ctx)
	session.Set(lastOrderKey, created.ID)
	if err := session.Save(); err != nil {
		zerolog.Ctx(ctx.Request.Context()).Warn().Err(err).Msg("failed to save session")
	}

	ctx.JSON(http.StatusCreated, created)
}

// DeleteAll handles DELETE requests removing every order
func (c *OrderController) DeleteAll(ctx *gin.Context) {
	if err := c.service.DeleteAll(ctx.Request.Context()); err != nil {
		respondError(ctx, err, "No orders to delete")
		return
	}
	ctx.JSON(http.StatusOK, dtos.MessageResponse{Message: "All orders deleted successfully"})
}

// Last handles GET requests for the order most recently created in this session
func (c *OrderController) Last(ctx *gin.Context) {
	id, ok := sessions.Default(ctx).Get(lastOrderKey).(int)
	if !ok {
		ctx.JSON(http.StatusNotFound, dtos.MessageResponse{Message: "No order created in this session"})
		return
	}

	order, err := c.service.Get(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, "Order not found")
		return
	}
	ctx.JSON(http.StatusOK, order)
}

// Export handles GET requests downloading every order as a spreadsheet
func (c *OrderController) Export(ctx *gin.Context) {
	var buf bytes.Buffer
	if err := c.service.Export(ctx.Request.Context(), &buf); err != nil {
		respondError(ctx, err, "Order not found")
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	ctx.Data(http.StatusOK, xlsxMimeType, buf.Bytes())
}
