package controllers

import (
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/axrasp/start-burger/models"
	"github.com/axrasp/start-burger/services"
	"github.com/axrasp/start-burger/utils"
)

type OrderController struct {
	DB     *gorm.DB
	Events *services.OrderEventPublisher
}

func NewOrderController(db *gorm.DB, events *services.OrderEventPublisher) *OrderController {
	return &OrderController{DB: db, Events: events}
}

var phonePattern = regexp.MustCompile(`^\+?\d{7,15}$`)

type orderItemRequest struct {
	Product  uint `json:"product"`
	Quantity int  `json:"quantity"`
}

type orderRequest struct {
	Firstname   string             `json:"firstname"`
	Lastname    string             `json:"lastname"`
	Phonenumber string             `json:"phonenumber"`
	Address     string             `json:"address"`
	Comment     string             `json:"comment"`
	Products    []orderItemRequest `json:"products"`
}

func (r *orderRequest) validate() *ValidationError {
	var fields []FieldError
	if r.Firstname == "" {
		fields = append(fields, FieldError{Field: "firstname", Message: "is required"})
	}
	if r.Phonenumber == "" {
		fields = append(fields, FieldError{Field: "phonenumber", Message: "is required"})
	} else if !phonePattern.MatchString(r.Phonenumber) {
		fields = append(fields, FieldError{Field: "phonenumber", Message: "is not a valid phone number"})
	}
	if r.Address == "" {
		fields = append(fields, FieldError{Field: "address", Message: "is required"})
	}
	if len(r.Products) == 0 {
		fields = append(fields, FieldError{Field: "products", Message: "must not be empty"})
	}
	for i, item := range r.Products {
		if item.Product == 0 {
			fields = append(fields, FieldError{
				Field:   fmt.Sprintf("products[%d].product", i),
				Message: "is required",
			})
		}
		if item.Quantity < 1 {
			fields = append(fields, FieldError{
				Field:   fmt.Sprintf("products[%d].quantity", i),
				Message: "must be at least 1",
			})
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// RegisterOrder -> public order intake. Creation is all-or-nothing: a bad
// payload or unknown product leaves no partial order behind.
func (oc *OrderController) RegisterOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if verr := req.validate(); verr != nil {
		utils.RespondJSON(c, http.StatusBadRequest, verr.Error(), verr.Fields)
		return
	}

	productIDs := make([]uint, 0, len(req.Products))
	for _, item := range req.Products {
		productIDs = append(productIDs, item.Product)
	}

	var products []models.Product
	if err := oc.DB.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	for _, item := range req.Products {
		if _, ok := byID[item.Product]; !ok {
			utils.RespondError(c, http.StatusBadRequest,
				integrityErrorf("product %d does not exist", item.Product))
			return
		}
	}

	order := models.Order{
		Firstname:    req.Firstname,
		Lastname:     req.Lastname,
		Phonenumber:  req.Phonenumber,
		Address:      req.Address,
		Comment:      req.Comment,
		Status:       models.OrderStatusNew,
		RegisteredAt: time.Now(),
	}
	for _, item := range req.Products {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: item.Product,
			Quantity:  item.Quantity,
			// Snapshot the catalog price at order time.
			Price: byID[item.Product].Price,
		})
	}

	if err := oc.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	}); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("order %d registered for %s (%d items)",
		order.ID, order.Firstname, len(order.Items))
	oc.Events.PublishStatus(c.Request.Context(), order.ID, order.Status)

	utils.RespondJSON(c, http.StatusCreated, "Order registered", order)
}

// GetAllOrders -> list orders with items, managers only.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := oc.DB.Preload("Items").Order("registered_at").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// UpdateOrderStatus -> move an order through its lifecycle, stamping the
// call and delivery timestamps on the matching transitions.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("order_id")

	var order models.Order
	if err := oc.DB.Preload("Items").First(&order, orderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !models.ValidOrderStatus(req.Status) {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("unknown status %q", req.Status))
		return
	}

	now := time.Now()
	order.Status = req.Status
	if req.Status == models.OrderStatusPreparing && order.CalledAt == nil {
		order.CalledAt = &now
	}
	if req.Status == models.OrderStatusClosed && order.DeliveredAt == nil {
		order.DeliveredAt = &now
	}

	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	oc.Events.PublishStatus(c.Request.Context(), order.ID, order.Status)
	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}
