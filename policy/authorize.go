package policy

import (
	"errors"

	"github.com/sakibmorshed/assignment-11-new-serverside/models"

	"gorm.io/gorm"
)

// ErrUserNotFound means no user record exists for the email
var ErrUserNotFound = errors.New("user not found")

// ErrForbidden means the user exists but fails the role/status check
var ErrForbidden = errors.New("forbidden")

// Authorize resolves a verified caller email to its stored user record and
// checks it against the required role and forbidden status. Pass a zero
// requiredRole to accept any role; pass a zero forbiddenStatus to skip the
// status check. Callers must be able to tell a missing user (404) apart
// from a role/status mismatch (403), so the two errors stay distinct.
func Authorize(db *gorm.DB, email string, requiredRole models.UserRole, forbiddenStatus models.UserStatus) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if requiredRole != "" && user.Role != requiredRole {
		return nil, ErrForbidden
	}
	if forbiddenStatus != "" && user.Status == forbiddenStatus {
		return nil, ErrForbidden
	}
	return &user, nil
}
