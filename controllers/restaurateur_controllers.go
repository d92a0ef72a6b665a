package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/axrasp/start-burger/models"
	"github.com/axrasp/start-burger/services"
	"github.com/axrasp/start-burger/utils"
)

// RestaurateurController serves the manager dashboard: every open order with
// the restaurants able to fulfil it, closest first.
type RestaurateurController struct {
	DB      *gorm.DB
	Matcher *services.MatcherService
}

func NewRestaurateurController(db *gorm.DB, matcher *services.MatcherService) *RestaurateurController {
	return &RestaurateurController{DB: db, Matcher: matcher}
}

type orderBoardRow struct {
	ID          uint    `json:"id"`
	Firstname   string  `json:"firstname"`
	Lastname    string  `json:"lastname"`
	Phonenumber string  `json:"phonenumber"`
	Address     string  `json:"address"`
	Status      string  `json:"status"`
	Comment     string  `json:"comment"`
	TotalPrice  float64 `json:"total_price"`
	// Null when the delivery address could not be geocoded. The order is
	// still shown, just without distances.
	RestaurantDistances []services.RestaurantDistance `json:"restaurant_distances"`
}

// GetOrderBoard -> open orders ranked for fulfilment. One order's geocoding
// trouble never hides the other orders.
func (rc *RestaurateurController) GetOrderBoard(c *gin.Context) {
	var orders []models.Order
	err := rc.DB.Preload("Items").
		Where("status <> ?", models.OrderStatusClosed).
		Order("registered_at").
		Find(&orders).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	rows := make([]orderBoardRow, 0, len(orders))
	for i := range orders {
		row := orderBoardRow{
			ID:          orders[i].ID,
			Firstname:   orders[i].Firstname,
			Lastname:    orders[i].Lastname,
			Phonenumber: orders[i].Phonenumber,
			Address:     orders[i].Address,
			Status:      orders[i].Status,
			Comment:     orders[i].Comment,
			TotalPrice:  orders[i].TotalPrice(),
		}

		ranking, err := rc.Matcher.RankOrder(c.Request.Context(), &orders[i])
		if err != nil {
			utils.ErrorLogger.Printf("ranking order %d failed: %v", orders[i].ID, err)
		} else if !ranking.Unavailable {
			row.RestaurantDistances = ranking.Restaurants
		}

		rows = append(rows, row)
	}

	utils.RespondJSON(c, http.StatusOK, "Order board", rows)
}
