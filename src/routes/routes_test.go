package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/baetin/monsfer-api/src/config"
	"github.com/baetin/monsfer-api/src/db"
	"github.com/baetin/monsfer-api/src/dtos"
	"github.com/baetin/monsfer-api/src/models"
	"github.com/baetin/monsfer-api/src/routes"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := db.Connect(&config.Config{DBDriver: "sqlite", LogLevel: "disabled"}, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() { _ = db.Close(gdb) })

	cfg := &config.Config{SessionName: "test_session", AllowedOrigins: []string{"*"}}
	store := cookie.NewStore([]byte("test-session-secret"))
	router := routes.NewRouter(cfg, zerolog.Nop(), store, routes.NewServices(gdb, time.Second))

	return router, gdb
}

func doRequest(router *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func validOrder(folder string) gin.H {
	return gin.H{
		"order_product_folder_name": folder,
		"order_goods_name":          "Galaxy S24 case",
		"order_date":                "2024-05-01",
		"order_check1":              "Y",
		"order_check2":              "N",
		"order_download":            "N",
	}
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "GET", "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestSwaggerDoc(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "GET", "/api-docs/doc.json", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/order/all")
}

func TestBgColorLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "POST", "/bgcolor", gin.H{"bgcolor_name": "Red", "hexcode_id": 3})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[models.BgColorModel](t, w)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Red", created.Name)
	assert.Equal(t, 3, created.HexcodeID)

	w = doRequest(router, "GET", "/bgcolor", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []models.BgColorModel{created}, decode[[]models.BgColorModel](t, w))

	w = doRequest(router, "DELETE", fmt.Sprintf("/bgcolor/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Background color deleted successfully", decode[dtos.MessageResponse](t, w).Message)

	w = doRequest(router, "GET", "/bgcolor", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestCreateFont_MissingName(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "POST", "/font", gin.H{"hexcode_id": 1, "font_file_path": "/fonts/a.ttf"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request - font_name, hexcode_id and font_file_path are required", decode[dtos.MessageResponse](t, w).Message)

	w = doRequest(router, "GET", "/font", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestCreate_ZeroHexcodeCountsAsMissing(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "POST", "/bgcolor", gin.H{"bgcolor_name": "Red", "hexcode_id": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestArtwork_GetAndUpdate(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "POST", "/artwork", gin.H{"title": "Waves", "artist": "Hokusai", "image_path": "/img/waves.png"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[models.ArtworkModel](t, w)

	w = doRequest(router, "GET", fmt.Sprintf("/artwork/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decode[models.ArtworkModel](t, w))

	w = doRequest(router, "PUT", fmt.Sprintf("/artwork/%d", created.ID), gin.H{"title": "Great Wave", "image_path": "/img/great-wave.png"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[models.ArtworkModel](t, w)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Great Wave", updated.Title)
	assert.Nil(t, updated.Artist)

	w = doRequest(router, "GET", "/artwork/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Artwork not found", decode[dtos.MessageResponse](t, w).Message)
}

func TestUpdate_Missing(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "POST", "/fontcolor", gin.H{"fontcolor_name": "Black"})
	require.Equal(t, http.StatusCreated, w.Code)
	existing := decode[models.FontColorModel](t, w)

	w = doRequest(router, "PUT", "/fontcolor/999", gin.H{"fontcolor_name": "White"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Font color not found", decode[dtos.MessageResponse](t, w).Message)

	w = doRequest(router, "GET", "/fontcolor", nil)
	assert.Equal(t, []models.FontColorModel{existing}, decode[[]models.FontColorModel](t, w))
}

func TestUpdate_Validation(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "PUT", "/fontcolor/abc", gin.H{"fontcolor_name": "White"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid font color ID", decode[dtos.MessageResponse](t, w).Message)

	w = doRequest(router, "PUT", "/fontcolor/1", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request - fontcolor_name is required", decode[dtos.MessageResponse](t, w).Message)
}

func TestDeleteTwice(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "POST", "/font", gin.H{"font_name": "Nanum", "hexcode_id": 1, "font_file_path": "/fonts/nanum.ttf"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[models.FontModel](t, w)

	path := fmt.Sprintf("/font/%d", created.ID)
	assert.Equal(t, http.StatusOK, doRequest(router, "DELETE", path, nil).Code)

	w = doRequest(router, "DELETE", path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Font not found", decode[dtos.MessageResponse](t, w).Message)
}

func TestDeleteAllOrders(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "DELETE", "/order/all", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No orders to delete", decode[dtos.MessageResponse](t, w).Message)

	for _, folder := range []string{"a", "b"} {
		require.Equal(t, http.StatusCreated, doRequest(router, "POST", "/order", validOrder(folder)).Code)
	}

	w = doRequest(router, "DELETE", "/order/all", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "All orders deleted successfully", decode[dtos.MessageResponse](t, w).Message)

	w = doRequest(router, "GET", "/order", nil)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestCreateOrder_Validation(t *testing.T) {
	router, _ := newTestRouter(t)

	missing := validOrder("a")
	delete(missing, "order_download")
	w := doRequest(router, "POST", "/order", missing)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request - required order information is missing", decode[dtos.MessageResponse](t, w).Message)

	badDate := validOrder("a")
	badDate["order_date"] = "next tuesday"
	assert.Equal(t, http.StatusBadRequest, doRequest(router, "POST", "/order", badDate).Code)

	w = doRequest(router, "GET", "/order", nil)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestLastOrder_Session(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "GET", "/order/last", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, "POST", "/order", validOrder("mine"))
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[models.OrderModel](t, w)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	w = doRequest(router, "GET", "/order/last", nil, cookies...)
	require.Equal(t, http.StatusOK, w.Code)
	last := decode[models.OrderModel](t, w)
	assert.Equal(t, created.ID, last.ID)
	assert.Equal(t, "mine", last.ProductFolderName)

	require.Equal(t, http.StatusOK, doRequest(router, "DELETE", fmt.Sprintf("/order/%d", created.ID), nil).Code)
	w = doRequest(router, "GET", "/order/last", nil, cookies...)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrder_DateIsDateOnly(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "POST", "/order", validOrder("a"))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"order_date":"2024-05-01"`)
	created := decode[models.OrderModel](t, w)

	w = doRequest(router, "GET", fmt.Sprintf("/order/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"order_date":"2024-05-01"`)
}

func TestUpdateOrder(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "POST", "/order", validOrder("before"))
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[models.OrderModel](t, w)

	changed := validOrder("after")
	changed["order_date"] = "2024-06-15T09:30:00Z"
	changed["order_download"] = "Y"
	path := fmt.Sprintf("/order/%d", created.ID)

	w = doRequest(router, "PUT", path, changed)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[models.OrderModel](t, w)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "after", updated.ProductFolderName)
	assert.Equal(t, "Y", updated.Download)
	assert.Equal(t, "2024-06-15", time.Time(updated.Date).Format(time.DateOnly))

	w = doRequest(router, "GET", path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"order_date":"2024-06-15"`)

	badDate := validOrder("after")
	badDate["order_date"] = "15/06/2024"
	assert.Equal(t, http.StatusBadRequest, doRequest(router, "PUT", path, badDate).Code)

	assert.Equal(t, http.StatusNotFound, doRequest(router, "PUT", "/order/999", changed).Code)
}

func TestExportOrders(t *testing.T) {
	router, _ := newTestRouter(t)

	require.Equal(t, http.StatusCreated, doRequest(router, "POST", "/order", validOrder("folder-1")).Code)

	w := doRequest(router, "GET", "/order/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "orders.xlsx")

	f, err := excelize.OpenReader(w.Body)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Orders")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "folder-1", rows[1][1])
}

func TestDatabaseError_IsOpaque(t *testing.T) {
	router, gdb := newTestRouter(t)
	require.NoError(t, db.Close(gdb))

	w := doRequest(router, "GET", "/artwork", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Database error"}`, w.Body.String())
}
