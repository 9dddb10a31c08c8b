package productController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bilalhossainshah/ecommerce-api/models"
	"github.com/bilalhossainshah/ecommerce-api/routes"
	"github.com/bilalhossainshah/ecommerce-api/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("UPLOAD_DIR", t.TempDir())
	t.Setenv("ADMIN_API_KEY", "admin-key")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	))

	uploader, err := services.NewUploader()
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.SetupProductRoutes(r, db, uploader)
	routes.SetupCategoryRoutes(r, db)
	routes.SetupAdminRoutes(r, db)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return &testEnv{server: server, db: db}
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	return body
}

func decodeList(t *testing.T, resp *http.Response) []map[string]interface{} {
	t.Helper()
	var body []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	return body
}

func (env *testEnv) seedProduct(t *testing.T, categoryID uint, title, brand, price string, inStock bool) models.Product {
	t.Helper()
	p := models.Product{
		CategoryID: categoryID,
		Title:      title,
		Brand:      brand,
		Price:      decimal.RequireFromString(price),
		InStock:    inStock,
	}
	require.NoError(t, env.db.Create(&p).Error)
	return p
}

func TestCreateProductDuplicateTitle(t *testing.T) {
	env := setupTestEnv(t)

	payload := map[string]interface{}{
		"category_id": 1,
		"title":       "Laptop Model X",
		"price":       "999.99",
	}
	resp := postJSON(t, env.server.URL+"/products/", payload)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, env.server.URL+"/products/", payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestProductCRUD(t *testing.T) {
	env := setupTestEnv(t)

	resp := postJSON(t, env.server.URL+"/products/", map[string]interface{}{
		"category_id": 1,
		"title":       "Laptop Model X",
		"brand":       "BrandName",
		"description": "A fast, light laptop.",
		"price":       "999.99",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	id := int(created["id"].(float64))
	assert.Equal(t, "999.99", created["price"])
	assert.Equal(t, true, created["in_stock"])

	productURL := fmt.Sprintf("%s/products/%d", env.server.URL, id)

	resp, err := http.Get(productURL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// update price
	data, _ := json.Marshal(map[string]interface{}{"price": "899.99"})
	req, _ := http.NewRequest(http.MethodPut, productURL, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var stored models.Product
	require.NoError(t, env.db.First(&stored, id).Error)
	assert.True(t, stored.Price.Equal(decimal.RequireFromString("899.99")))

	// delete
	req, _ = http.NewRequest(http.MethodDelete, productURL, nil)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(productURL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCreateProductOutOfStock(t *testing.T) {
	env := setupTestEnv(t)

	resp := postJSON(t, env.server.URL+"/products/", map[string]interface{}{
		"category_id": 1,
		"title":       "Sold Out Item",
		"price":       "19.99",
		"in_stock":    false,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	assert.Equal(t, false, created["in_stock"])
	id := int(created["id"].(float64))

	// the false must survive the round trip to the database
	var stored models.Product
	require.NoError(t, env.db.First(&stored, id).Error)
	assert.False(t, stored.InStock)

	// struct-based creates must persist false too
	direct := models.Product{
		CategoryID: 1,
		Title:      "Direct Sold Out",
		Price:      decimal.RequireFromString("9.99"),
		InStock:    false,
	}
	require.NoError(t, env.db.Create(&direct).Error)
	var directStored models.Product
	require.NoError(t, env.db.First(&directStored, direct.ID).Error)
	assert.False(t, directStored.InStock)

	resp, err := http.Get(env.server.URL + "/products/filter/?in_stock=false")
	require.NoError(t, err)
	assert.Len(t, decodeList(t, resp), 2)
}

func TestListProductsPagination(t *testing.T) {
	env := setupTestEnv(t)
	env.seedProduct(t, 1, "Alpha", "", "10.00", true)
	env.seedProduct(t, 1, "Beta", "", "20.00", true)
	env.seedProduct(t, 1, "Gamma", "", "30.00", true)

	resp, err := http.Get(env.server.URL + "/products/?limit=2")
	require.NoError(t, err)
	assert.Len(t, decodeList(t, resp), 2)

	resp, err = http.Get(env.server.URL + "/products/?skip=2&limit=2")
	require.NoError(t, err)
	list := decodeList(t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "Gamma", list[0]["title"])
}

func TestSearchProducts(t *testing.T) {
	env := setupTestEnv(t)
	env.seedProduct(t, 1, "Laptop Model X", "Acme", "999.99", true)
	env.seedProduct(t, 1, "Gaming Mouse", "RodentCorp", "49.99", true)

	resp, err := http.Get(env.server.URL + "/products/search/?q=LAPTOP")
	require.NoError(t, err)
	list := decodeList(t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "Laptop Model X", list[0]["title"])

	// brand matches too
	resp, err = http.Get(env.server.URL + "/products/search/?q=rodent")
	require.NoError(t, err)
	list = decodeList(t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "Gaming Mouse", list[0]["title"])

	// missing query
	resp, err = http.Get(env.server.URL + "/products/search/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestFilterProducts(t *testing.T) {
	env := setupTestEnv(t)
	env.seedProduct(t, 1, "Cheap Thing", "", "5.00", true)
	env.seedProduct(t, 1, "Mid Thing", "", "50.00", true)
	env.seedProduct(t, 2, "Other Category Thing", "", "50.00", true)
	env.seedProduct(t, 1, "Pricey Thing", "", "500.00", false)

	resp, err := http.Get(env.server.URL + "/products/filter/?category_id=1&min_price=10&max_price=100")
	require.NoError(t, err)
	list := decodeList(t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "Mid Thing", list[0]["title"])

	resp, err = http.Get(env.server.URL + "/products/filter/?in_stock=false")
	require.NoError(t, err)
	list = decodeList(t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "Pricey Thing", list[0]["title"])

	resp, err = http.Get(env.server.URL + "/products/filter/?min_price=abc")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestCategoryEndpoints(t *testing.T) {
	env := setupTestEnv(t)

	resp := postJSON(t, env.server.URL+"/catgory/", map[string]string{"name": "Electronics"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	assert.Equal(t, "electronics", created["slug"])
	categoryID := uint(created["id"].(float64))

	// duplicate name
	resp = postJSON(t, env.server.URL+"/catgory/", map[string]string{"name": "Electronics"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp, err := http.Get(fmt.Sprintf("%s/catgory/%d", env.server.URL, categoryID))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// no products yet
	productsURL := fmt.Sprintf("%s/catgory/%d/products/", env.server.URL, categoryID)
	resp, err = http.Get(productsURL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	env.seedProduct(t, categoryID, "Laptop Model X", "", "999.99", true)
	resp, err = http.Get(productsURL)
	require.NoError(t, err)
	assert.Len(t, decodeList(t, resp), 1)
}

func uploadFile(t *testing.T, url, field, filename string, content []byte) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = io.Copy(part, bytes.NewReader(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	resp, err := http.Post(url, writer.FormDataContentType(), &buf)
	require.NoError(t, err)
	return resp
}

func TestUploadProductImage(t *testing.T) {
	env := setupTestEnv(t)
	uploadURL := env.server.URL + "/products/upload-image/"

	resp := uploadFile(t, uploadURL, "file", "photo.png", []byte("fake png bytes"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	url, ok := body["image_url"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(url, "/uploads/products/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	// disallowed extension
	resp = uploadFile(t, uploadURL, "file", "script.exe", []byte("nope"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// oversized file
	resp = uploadFile(t, uploadURL, "file", "huge.png", make([]byte, 6*1024*1024))
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	resp.Body.Close()

	// missing file part
	resp = uploadFile(t, uploadURL, "other", "photo.png", []byte("fake"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestAdminExportRequiresAPIKey(t *testing.T) {
	env := setupTestEnv(t)
	env.seedProduct(t, 1, "Laptop Model X", "", "999.99", true)
	exportURL := env.server.URL + "/admin/products/export-excel"

	resp, err := http.Get(exportURL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	req, _ := http.NewRequest(http.MethodGet, exportURL, nil)
	req.Header.Set("X-API-KEY", "admin-key")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	resp.Body.Close()
}
