package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/router"
	"github.com/yeremiapane/restaurant-pos/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Table{},
		&models.Seat{},
		&models.Food{},
		&models.DiningGroup{},
		&models.GroupSeat{},
		&models.OrderItem{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// seedUserToken creates a user directly and returns a valid bearer token,
// keeping the strict auth rate limiter out of unrelated tests.
func seedUserToken(t *testing.T, db *gorm.DB, username, role string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	user := models.User{Username: username, Password: string(hashed), Role: role}
	assert.NoError(t, db.Create(&user).Error)

	token, err := utils.GenerateToken(user.ID, user.Role)
	assert.NoError(t, err)
	return token
}

func seedTableWithSeats(t *testing.T, db *gorm.DB, number int, labels ...string) (models.Table, []models.Seat) {
	table := models.Table{TableNumber: number}
	assert.NoError(t, db.Create(&table).Error)

	seats := make([]models.Seat, 0, len(labels))
	for _, label := range labels {
		seat := models.Seat{SeatNumber: label, TableID: table.ID}
		assert.NoError(t, db.Create(&seat).Error)
		seats = append(seats, seat)
	}
	return table, seats
}

func seedFood(t *testing.T, db *gorm.DB, name string, price float64) models.Food {
	food := models.Food{Name: name, Price: price}
	assert.NoError(t, db.Create(&food).Error)
	return food
}

// doJSON performs one request against the router and decodes the reply.
func doJSON(t *testing.T, r *gin.Engine, method, url, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var response map[string]interface{}
	if w.Body.Len() > 0 {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	}
	return w, response
}

func newRouter(db *gorm.DB) *gin.Engine {
	return router.SetupRouter(db)
}
