package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/axrasp/start-burger/controllers"
	"github.com/axrasp/start-burger/utils"
)

func setupAuthRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	userCtrl := controllers.NewUserController(db)
	router.POST("/api/auth/register", userCtrl.Register)
	router.POST("/api/auth/login", userCtrl.Login)
	return router
}

func TestRegisterAndLogin(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)
	router := setupAuthRouter(db)

	w := postJSON(t, router, "/api/auth/register", map[string]string{
		"name":     "Manager",
		"email":    "manager@star-burger.test",
		"password": "secret",
		"role":     "manager",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, router, "/api/auth/login", map[string]string{
		"email":    "manager@star-burger.test",
		"password": "secret",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
			Role  string `json:"role"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.Token)
	assert.Equal(t, "manager", resp.Data.Role)

	claims, err := utils.ParseToken(resp.Data.Token)
	assert.NoError(t, err)
	assert.Equal(t, "manager", claims.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t)
	router := setupAuthRouter(db)

	w := postJSON(t, router, "/api/auth/register", map[string]string{
		"name":     "Manager",
		"email":    "manager@star-burger.test",
		"password": "secret",
		"role":     "manager",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, router, "/api/auth/login", map[string]string{
		"email":    "manager@star-burger.test",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(t, router, "/api/auth/register", map[string]string{
		"name":     "Sneaky",
		"email":    "sneaky@star-burger.test",
		"password": "secret",
		"role":     "courier",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
