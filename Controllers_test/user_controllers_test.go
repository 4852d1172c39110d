package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Each router carries its own auth rate limiter (5 req/min), so every
// test here runs against a fresh router and stays under that limit.

func TestRegisterPublicWaiter(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter(db)

	w, response := doJSON(t, r, "POST", "/auth/register", "", map[string]interface{}{
		"username": "anna", "password": "secret123", "role": "waiter",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "WAITER", data["role"])
	assert.NotEmpty(t, data["token"])
}

func TestRegisterPublicManagerRejected(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter(db)

	w, response := doJSON(t, r, "POST", "/auth/register", "", map[string]interface{}{
		"username": "boss", "password": "secret123", "role": "MANAGER",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Validation Error", response["error"])
	assert.Equal(t, "/auth/register", response["path"])
}

func TestRegisterPrivilegedByManager(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter(db)
	managerToken := seedUserToken(t, db, "manager1", "MANAGER")

	w, response := doJSON(t, r, "POST", "/auth/register", managerToken, map[string]interface{}{
		"username": "boss2", "password": "secret123", "role": "ADMIN",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "ADMIN", response["data"].(map[string]interface{})["role"])
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter(db)
	seedUserToken(t, db, "anna", "WAITER")

	w, response := doJSON(t, r, "POST", "/auth/register", "", map[string]interface{}{
		"username": "anna", "password": "secret123", "role": "WAITER",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Validation Error", response["error"])
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter(db)
	seedUserToken(t, db, "anna", "WAITER")

	// seeded users all use the password "password"
	w, response := doJSON(t, r, "POST", "/auth/login", "", map[string]interface{}{
		"username": "anna", "password": "password",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "WAITER", data["role"])
	assert.NotEmpty(t, data["token"])

	w, response = doJSON(t, r, "POST", "/auth/login", "", map[string]interface{}{
		"username": "anna", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized", response["error"])

	w, _ = doJSON(t, r, "POST", "/auth/login", "", map[string]interface{}{
		"username": "ghost", "password": "password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetProfile(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter(db)
	token := seedUserToken(t, db, "anna", "WAITER")

	w, response := doJSON(t, r, "GET", "/api/profile", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "anna", data["username"])
	assert.Nil(t, data["password"])

	w, _ = doJSON(t, r, "GET", "/api/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
