package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sakibmorshed/assignment-11-new-serverside/config"
	"github.com/sakibmorshed/assignment-11-new-serverside/middleware"
	"github.com/sakibmorshed/assignment-11-new-serverside/models"
	"github.com/sakibmorshed/assignment-11-new-serverside/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testDBCounter int64

// newTestAPI wires a fresh engine against its own in-memory database and
// points the shared handle at it for the duration of the test.
func newTestAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.RoleRequest{},
		&models.Meal{},
		&models.Order{},
		&models.Review{},
		&models.Favorite{},
		&models.Payment{},
	)
	require.NoError(t, err)

	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func createTestUser(t *testing.T, name, email string, role models.UserRole, status models.UserStatus) models.User {
	t.Helper()
	user := models.User{Name: name, Email: email, Role: role, Status: status}
	require.NoError(t, config.DB.Create(&user).Error)
	return user
}

func bearerToken(t *testing.T, email string) string {
	t.Helper()
	token, err := middleware.GenerateToken(email)
	require.NoError(t, err)
	return token
}

// doJSON performs a request with an optional JSON body and bearer token and
// returns the recorder plus the decoded response body.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	decoded := map[string]interface{}{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded),
			"response body was not JSON: %s", w.Body.String())
	}
	return w, decoded
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "unexpected status, body: %s", w.Body.String())
}
