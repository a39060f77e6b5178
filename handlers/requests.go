package handlers

import (
	"net/http"

	"github.com/sakibmorshed/assignment-11-new-serverside/config"
	"github.com/sakibmorshed/assignment-11-new-serverside/models"
	"github.com/sakibmorshed/assignment-11-new-serverside/policy"

	"github.com/gin-gonic/gin"
)

type SubmitRequestRequest struct {
	UserID      uint               `json:"user_id"`
	Name        string             `json:"name" binding:"required"`
	Email       string             `json:"email" binding:"required,email"`
	RequestType models.RequestType `json:"request_type" binding:"required"`
}

// SubmitRequest files a role-upgrade request. At most one pending request may
// exist per (email, request type); a duplicate is reported, not created.
func SubmitRequest(c *gin.Context) {
	var req SubmitRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.RequestType != models.RequestChef && req.RequestType != models.RequestAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request type. Must be: chef or admin"})
		return
	}

	var existing models.RoleRequest
	result := config.DB.Where("email = ? AND request_type = ? AND request_status = ?",
		req.Email, req.RequestType, models.RequestPending).First(&existing)
	if result.Error == nil {
		c.JSON(http.StatusOK, gin.H{"message": "request already exists", "inserted": false})
		return
	}

	request := models.RoleRequest{
		UserID:        req.UserID,
		Name:          req.Name,
		Email:         req.Email,
		RequestType:   req.RequestType,
		RequestStatus: models.RequestPending,
	}
	if err := config.DB.Create(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit request"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Request submitted", "inserted": true, "request": request})
}

// ListRequests returns all role-upgrade requests, optionally by status
func ListRequests(c *gin.Context) {
	var requests []models.RoleRequest
	query := config.DB
	if status := c.Query("status"); status != "" {
		query = query.Where("request_status = ?", status)
	}
	query.Order("created_at desc").Find(&requests)
	c.JSON(http.StatusOK, gin.H{"count": len(requests), "requests": requests})
}

type ResolveRequestRequest struct {
	Status models.RequestStatus `json:"status" binding:"required"`
}

// ResolveRequest approves or rejects a pending role-upgrade request.
// Approval promotes the target user to the requested role; chef approvals
// additionally assign a fresh chef id. The user and request writes are
// sequential, not atomic.
func ResolveRequest(c *gin.Context) {
	var req ResolveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != models.RequestApproved && req.Status != models.RequestRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Must be: approved or rejected"})
		return
	}

	var request models.RoleRequest
	if err := config.DB.First(&request, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}

	if req.Status == models.RequestApproved {
		update := map[string]interface{}{"role": models.UserRole(request.RequestType)}
		if request.RequestType == models.RequestChef {
			update["chef_id"] = policy.NewChefID()
		}
		config.DB.Model(&models.User{}).Where("email = ?", request.Email).Updates(update)
	}

	config.DB.Model(&request).Update("request_status", req.Status)

	c.JSON(http.StatusOK, gin.H{
		"message":    "Request resolved",
		"request_id": request.ID,
		"status":     req.Status,
	})
}
