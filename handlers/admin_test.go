package handlers_test

import (
	"net/http"
	"testing"

	"github.com/sakibmorshed/assignment-11-new-serverside/config"
	"github.com/sakibmorshed/assignment-11-new-serverside/models"

	"github.com/stretchr/testify/require"
)

func TestAdminStats(t *testing.T) {
	r := newTestAPI(t)

	createTestUser(t, "Buyer", "buyer@example.com", models.RoleUser, models.StatusActive)
	createTestUser(t, "Chef", "chef@example.com", models.RoleChef, models.StatusActive)
	require.NoError(t, config.DB.Create(&models.Meal{FoodName: "Dal", Price: 5}).Error)
	require.NoError(t, config.DB.Create(&models.Order{UserEmail: "buyer@example.com", OrderStatus: models.OrderDelivered}).Error)
	require.NoError(t, config.DB.Create(&models.Order{UserEmail: "buyer@example.com", OrderStatus: models.OrderPending}).Error)
	require.NoError(t, config.DB.Create(&models.Payment{TransactionID: "t1", UserEmail: "buyer@example.com", Amount: 12.5}).Error)
	require.NoError(t, config.DB.Create(&models.Payment{TransactionID: "t2", UserEmail: "buyer@example.com", Amount: 7.5}).Error)

	w, body := doJSON(t, r, http.MethodGet, "/admin/stats", nil, "")
	requireStatus(t, w, http.StatusOK)

	require.EqualValues(t, 2, body["users"])
	require.EqualValues(t, 1, body["chefs"])
	require.EqualValues(t, 1, body["meals"])
	require.EqualValues(t, 2, body["orders"])
	require.EqualValues(t, 1, body["delivered_orders"])
	require.EqualValues(t, 2, body["payments"])
	require.EqualValues(t, 20.0, body["total_revenue"])
}
