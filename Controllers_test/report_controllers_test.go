package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/restaurant-pos/models"
)

func TestReportsRoleGating(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter(db)
	waiter := seedUserToken(t, db, "waiter1", "WAITER")
	manager := seedUserToken(t, db, "manager1", "MANAGER")
	admin := seedUserToken(t, db, "admin1", "ADMIN")

	for _, url := range []string{
		"/api/admin/reports/top-selling-foods",
		"/api/admin/reports/least-selling-foods",
		"/api/admin/reports/monthly-sales",
		"/api/admin/reports/table-usage",
	} {
		w, _ := doJSON(t, r, "GET", url, waiter, nil)
		assert.Equal(t, http.StatusForbidden, w.Code, url)

		w, _ = doJSON(t, r, "GET", url, manager, nil)
		assert.Equal(t, http.StatusForbidden, w.Code, url)

		w, _ = doJSON(t, r, "GET", url, admin, nil)
		assert.Equal(t, http.StatusOK, w.Code, url)
	}
}

func TestLeastSellingFoodsIncludesZeroSales(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter(db)
	waiter := seedUserToken(t, db, "waiter1", "WAITER")
	admin := seedUserToken(t, db, "admin1", "ADMIN")

	table, seats := seedTableWithSeats(t, db, 1, "S1")
	burger := seedFood(t, db, "Burger", 8.5)
	tea := seedFood(t, db, "Iced Tea", 2.0)

	w, response := doJSON(t, r, "POST", "/api/groups/create", waiter, map[string]interface{}{
		"table_id": table.ID,
		"seat_ids": []uint{seats[0].ID},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	groupID := uint(response["data"].(map[string]interface{})["id"].(float64))

	w, _ = doJSON(t, r, "POST", fmt.Sprintf("/api/groups/%d/add-item", groupID), waiter, map[string]interface{}{
		"food_id": burger.ID, "quantity": 3,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	w, _ = doJSON(t, r, "POST", fmt.Sprintf("/api/groups/%d/submit", groupID), waiter, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, response = doJSON(t, r, "GET", "/api/admin/reports/least-selling-foods", admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	rows := response["data"].([]interface{})
	assert.Len(t, rows, 2)

	// the never-ordered food leads the ascending list with zero sales
	first := rows[0].(map[string]interface{})
	assert.EqualValues(t, tea.ID, first["id"])
	assert.EqualValues(t, 0, first["total_quantity"])

	w, response = doJSON(t, r, "GET", "/api/admin/reports/top-selling-foods", admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	top := response["data"].([]interface{})
	assert.Len(t, top, 1)
	assert.Equal(t, "Burger", top[0].(map[string]interface{})["name"])
	assert.EqualValues(t, 3, top[0].(map[string]interface{})["total_quantity"])
}

func TestFoodCatalogRoleGating(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter(db)
	waiter := seedUserToken(t, db, "waiter1", "WAITER")
	manager := seedUserToken(t, db, "manager1", "MANAGER")
	admin := seedUserToken(t, db, "admin1", "ADMIN")

	body := map[string]interface{}{"name": "Soup", "price": 4.75}

	w, _ := doJSON(t, r, "POST", "/api/foods", waiter, body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, response := doJSON(t, r, "POST", "/api/foods", manager, body)
	assert.Equal(t, http.StatusCreated, w.Code)
	foodID := uint(response["data"].(map[string]interface{})["id"].(float64))

	w, _ = doJSON(t, r, "GET", "/api/foods", waiter, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, "PUT", fmt.Sprintf("/api/foods/%d", foodID), manager, map[string]interface{}{
		"name": "Soup of the Day", "price": 5.25,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// only admins may delete catalog entries
	w, _ = doJSON(t, r, "DELETE", fmt.Sprintf("/api/foods/%d", foodID), manager, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = doJSON(t, r, "DELETE", fmt.Sprintf("/api/foods/%d", foodID), admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	assert.NoError(t, db.Model(&models.Food{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestTableEndpoints(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter(db)
	waiter := seedUserToken(t, db, "waiter1", "WAITER")
	manager := seedUserToken(t, db, "manager1", "MANAGER")

	body := map[string]interface{}{
		"table_number": 7,
		"seat_numbers": []string{"S1", "S2", "S3"},
	}

	w, _ := doJSON(t, r, "POST", "/api/tables", waiter, body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, response := doJSON(t, r, "POST", "/api/tables", manager, body)
	assert.Equal(t, http.StatusCreated, w.Code)
	seatsJSON := response["data"].(map[string]interface{})["seats"].([]interface{})
	assert.Len(t, seatsJSON, 3)

	// duplicate table numbers are rejected
	w, _ = doJSON(t, r, "POST", "/api/tables", manager, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, response = doJSON(t, r, "GET", "/api/tables", waiter, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	tables := response["data"].([]interface{})
	assert.Len(t, tables, 1)
}
