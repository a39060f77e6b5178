package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/sakibmorshed/assignment-11-new-serverside/config"
	"github.com/sakibmorshed/assignment-11-new-serverside/models"

	"github.com/stretchr/testify/require"
)

func TestAddFavoriteRejectsDuplicatePair(t *testing.T) {
	r := newTestAPI(t)

	payload := map[string]interface{}{
		"user_email": "buyer@example.com",
		"meal_id":    7,
		"food_name":  "Dal",
	}

	w, _ := doJSON(t, r, http.MethodPost, "/favorites", payload, "")
	requireStatus(t, w, http.StatusCreated)

	w, body := doJSON(t, r, http.MethodPost, "/favorites", payload, "")
	requireStatus(t, w, http.StatusOK)
	require.Equal(t, "already added", body["message"])

	var count int64
	config.DB.Model(&models.Favorite{}).
		Where("user_email = ? AND meal_id = ?", "buyer@example.com", 7).
		Count(&count)
	require.EqualValues(t, 1, count)

	// same meal for another user is a new favorite
	payload["user_email"] = "other@example.com"
	w, _ = doJSON(t, r, http.MethodPost, "/favorites", payload, "")
	requireStatus(t, w, http.StatusCreated)
}

func TestListAndDeleteFavorites(t *testing.T) {
	r := newTestAPI(t)
	favorite := models.Favorite{UserEmail: "buyer@example.com", MealID: 3, FoodName: "Rice"}
	require.NoError(t, config.DB.Create(&favorite).Error)

	w, body := doJSON(t, r, http.MethodGet, "/favorites/buyer@example.com", nil, "")
	requireStatus(t, w, http.StatusOK)
	require.EqualValues(t, 1, body["count"])

	w, _ = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/favorites/%d", favorite.ID), nil, "")
	requireStatus(t, w, http.StatusOK)

	var count int64
	config.DB.Model(&models.Favorite{}).Count(&count)
	require.EqualValues(t, 0, count)
}
