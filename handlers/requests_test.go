package handlers_test

import (
	"fmt"
	"net/http"
	"regexp"
	"testing"

	"github.com/sakibmorshed/assignment-11-new-serverside/config"
	"github.com/sakibmorshed/assignment-11-new-serverside/models"

	"github.com/stretchr/testify/require"
)

var chefIDPattern = regexp.MustCompile(`^chef-\d{4}$`)

func TestDuplicatePendingRequestIsRejected(t *testing.T) {
	r := newTestAPI(t)
	createTestUser(t, "Amina", "a@x.com", models.RoleUser, models.StatusActive)

	payload := map[string]interface{}{"name": "Amina", "email": "a@x.com", "request_type": "chef"}

	w, _ := doJSON(t, r, http.MethodPost, "/requests", payload, "")
	requireStatus(t, w, http.StatusCreated)

	w, body := doJSON(t, r, http.MethodPost, "/requests", payload, "")
	requireStatus(t, w, http.StatusOK)
	require.Equal(t, "request already exists", body["message"])

	var count int64
	config.DB.Model(&models.RoleRequest{}).
		Where("email = ? AND request_type = ? AND request_status = ?", "a@x.com", "chef", "pending").
		Count(&count)
	require.EqualValues(t, 1, count)
}

func TestDifferentRequestTypesMayCoexist(t *testing.T) {
	r := newTestAPI(t)

	w, _ := doJSON(t, r, http.MethodPost, "/requests",
		map[string]interface{}{"name": "Amina", "email": "a@x.com", "request_type": "chef"}, "")
	requireStatus(t, w, http.StatusCreated)

	w, _ = doJSON(t, r, http.MethodPost, "/requests",
		map[string]interface{}{"name": "Amina", "email": "a@x.com", "request_type": "admin"}, "")
	requireStatus(t, w, http.StatusCreated)
}

func TestApproveChefRequestPromotesUserAndAssignsChefID(t *testing.T) {
	r := newTestAPI(t)
	createTestUser(t, "Amina", "a@x.com", models.RoleUser, models.StatusActive)

	w, _ := doJSON(t, r, http.MethodPost, "/requests",
		map[string]interface{}{"name": "Amina", "email": "a@x.com", "request_type": "chef"}, "")
	requireStatus(t, w, http.StatusCreated)

	var request models.RoleRequest
	require.NoError(t, config.DB.Where("email = ?", "a@x.com").First(&request).Error)
	require.Equal(t, models.RequestPending, request.RequestStatus)

	w, _ = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/requests/%d", request.ID),
		map[string]interface{}{"status": "approved"}, "")
	requireStatus(t, w, http.StatusOK)

	var user models.User
	require.NoError(t, config.DB.Where("email = ?", "a@x.com").First(&user).Error)
	require.Equal(t, models.RoleChef, user.Role)
	require.Regexp(t, chefIDPattern, user.ChefID)

	require.NoError(t, config.DB.First(&request, request.ID).Error)
	require.Equal(t, models.RequestApproved, request.RequestStatus)

	// Once resolved, the same request may be submitted again
	w, _ = doJSON(t, r, http.MethodPost, "/requests",
		map[string]interface{}{"name": "Amina", "email": "a@x.com", "request_type": "chef"}, "")
	requireStatus(t, w, http.StatusCreated)
}

func TestRejectRequestLeavesUserRoleUnchanged(t *testing.T) {
	r := newTestAPI(t)
	createTestUser(t, "Rafi", "rafi@example.com", models.RoleUser, models.StatusActive)

	w, _ := doJSON(t, r, http.MethodPost, "/requests",
		map[string]interface{}{"name": "Rafi", "email": "rafi@example.com", "request_type": "admin"}, "")
	requireStatus(t, w, http.StatusCreated)

	var request models.RoleRequest
	require.NoError(t, config.DB.Where("email = ?", "rafi@example.com").First(&request).Error)

	w, _ = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/requests/%d", request.ID),
		map[string]interface{}{"status": "rejected"}, "")
	requireStatus(t, w, http.StatusOK)

	var user models.User
	require.NoError(t, config.DB.Where("email = ?", "rafi@example.com").First(&user).Error)
	require.Equal(t, models.RoleUser, user.Role)
	require.Empty(t, user.ChefID)

	require.NoError(t, config.DB.First(&request, request.ID).Error)
	require.Equal(t, models.RequestRejected, request.RequestStatus)
}

func TestResolveUnknownRequestNotFound(t *testing.T) {
	r := newTestAPI(t)

	w, _ := doJSON(t, r, http.MethodPatch, "/requests/4242",
		map[string]interface{}{"status": "approved"}, "")
	requireStatus(t, w, http.StatusNotFound)
}
