package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/axrasp/start-burger/services"
	"github.com/axrasp/start-burger/utils"
)

type ProductController struct {
	DB   *gorm.DB
	Menu *services.MenuIndex
}

func NewProductController(db *gorm.DB, menu *services.MenuIndex) *ProductController {
	return &ProductController{DB: db, Menu: menu}
}

// GetProducts -> products currently on sale in at least one restaurant.
func (pc *ProductController) GetProducts(c *gin.Context) {
	products, err := pc.Menu.AvailableProducts()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of products", products)
}

// GetBanners -> static promo content for the landing page.
func (pc *ProductController) GetBanners(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of banners", []gin.H{
		{
			"title": "Burger",
			"src":   "/media/burger.jpg",
			"text":  "Tasty Burger at your door step",
		},
		{
			"title": "Spices",
			"src":   "/media/food.jpg",
			"text":  "All Cuisines",
		},
		{
			"title": "New York",
			"src":   "/media/tasty.jpg",
			"text":  "Food is incomplete without a tasty dessert",
		},
	})
}
