package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/axrasp/start-burger/controllers"
	"github.com/axrasp/start-burger/models"
	"github.com/axrasp/start-burger/services"
	"github.com/axrasp/start-burger/utils"
)

func setupProductRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := controllers.NewProductController(db, services.NewMenuIndex(db))
	router.GET("/api/products", ctrl.GetProducts)
	router.GET("/api/banners", ctrl.GetBanners)
	return router
}

func TestGetProductsListsOnlyAvailable(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)

	category := models.ProductCategory{Name: "Burgers"}
	db.Create(&category)

	onSale := models.Product{Name: "Burger", Price: 5, CategoryID: &category.ID}
	offSale := models.Product{Name: "Old Dish", Price: 9}
	orphan := models.Product{Name: "Unlisted", Price: 3}
	db.Create(&onSale)
	db.Create(&offSale)
	db.Create(&orphan)

	rest := models.Restaurant{Name: "X", Address: "x st"}
	db.Create(&rest)
	db.Create(&models.RestaurantMenuItem{RestaurantID: rest.ID, ProductID: onSale.ID, Availability: true})
	db.Create(&models.RestaurantMenuItem{RestaurantID: rest.ID, ProductID: offSale.ID, Availability: false})

	router := setupProductRouter(db)
	req, _ := http.NewRequest("GET", "/api/products", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			Name     string `json:"name"`
			Category *struct {
				Name string `json:"name"`
			} `json:"category"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	if assert.Len(t, resp.Data, 1) {
		assert.Equal(t, "Burger", resp.Data[0].Name)
		if assert.NotNil(t, resp.Data[0].Category) {
			assert.Equal(t, "Burgers", resp.Data[0].Category.Name)
		}
	}
}

func TestGetBanners(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)
	router := setupProductRouter(db)

	req, _ := http.NewRequest("GET", "/api/banners", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []map[string]string `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 3)
}
