package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/baetin/monsfer-api/src/dtos"
	"github.com/baetin/monsfer-api/src/services"
	"github.com/gin-gonic/gin"
)

// RecordService is the persistence contract a resource controller needs.
type RecordService[T any, P services.Keyed[T]] interface {
	Entity() string
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int) (P, error)
	Create(ctx context.Context, record P) (P, error)
	Update(ctx context.Context, id int, record P) (P, error)
	Delete(ctx context.Context, id int) error
}

// Resource holds the per-resource response messages.
type Resource struct {
	MissingFields string
	InvalidID     string
	NotFound      string
	Deleted       string
}

// ResourceController serves list/get/create/update/delete for one entity.
// In is the request body type bound on create and update.
type ResourceController[T any, P services.Keyed[T], In dtos.Input[T]] struct {
	service  RecordService[T, P]
	resource Resource
}

func NewResourceController[T any, P services.Keyed[T], In dtos.Input[T]](service RecordService[T, P], resource Resource) *ResourceController[T, P, In] {
	return &ResourceController[T, P, In]{service: service, resource: resource}
}

// List handles GET requests to retrieve every record
func (c *ResourceController[T, P, In]) List(ctx *gin.Context) {
	records, err := c.service.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, c.resource.NotFound)
		return
	}
	ctx.JSON(http.StatusOK, records)
}

// Get handles GET requests to retrieve one record by ID
func (c *ResourceController[T, P, In]) Get(ctx *gin.Context) {
	id, ok := c.pathID(ctx)
	if !ok {
		return
	}
	record, err := c.service.Get(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, c.resource.NotFound)
		return
	}
	ctx.JSON(http.StatusOK, record)
}

// Create handles POST requests to create a new record
func (c *ResourceController[T, P, In]) Create(ctx *gin.Context) {
	if created, ok := c.create(ctx); ok {
		ctx.JSON(http.StatusCreated, created)
	}
}

// Update handles PUT requests overwriting a record by ID
func (c *ResourceController[T, P, In]) Update(ctx *gin.Context) {
	id, ok := c.pathID(ctx)
	if !ok {
		return
	}
	record, ok := c.bind(ctx)
	if !ok {
		return
	}
	updated, err := c.service.Update(ctx.Request.Context(), id, record)
	if err != nil {
		respondError(ctx, err, c.resource.NotFound)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// Delete handles DELETE requests to delete a record by ID
func (c *ResourceController[T, P, In]) Delete(ctx *gin.Context) {
	id, ok := c.pathID(ctx)
	if !ok {
		return
	}
	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err, c.resource.NotFound)
		return
	}
	ctx.JSON(http.StatusOK, dtos.MessageResponse{Message: c.resource.Deleted})
}

func (c *ResourceController[T, P, In]) create(ctx *gin.Context) (P, bool) {
	record, ok := c.bind(ctx)
	if !ok {
		return nil, false
	}
	created, err := c.service.Create(ctx.Request.Context(), record)
	if err != nil {
		respondError(ctx, err, c.resource.NotFound)
		return nil, false
	}
	return created, true
}

// bind validates the body and builds the model; the store is never reached on failure.
func (c *ResourceController[T, P, In]) bind(ctx *gin.Context) (P, bool) {
	var in In
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, dtos.MessageResponse{Message: c.resource.MissingFields})
		return nil, false
	}
	record, err := in.ToModel()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dtos.MessageResponse{Message: c.resource.MissingFields})
		return nil, false
	}
	return record, true
}

func (c *ResourceController[T, P, In]) pathID(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dtos.MessageResponse{Message: c.resource.InvalidID})
		return 0, false
	}
	return id, true
}
