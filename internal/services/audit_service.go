package services

import (
	"encoding/json"

	"gorm.io/gorm"

	"spendwise/internal/logger"
	"spendwise/internal/models"
)

// Audited actions.
const (
	AuditActionSignup        = "SIGNUP"
	AuditActionLogin         = "LOGIN"
	AuditActionLogout        = "LOGOUT"
	AuditActionUpdateProfile = "UPDATE_PROFILE"
	AuditActionDeleteAccount = "DELETE_ACCOUNT"
	AuditActionCreateExpense = "CREATE_EXPENSE"
	AuditActionDeleteExpense = "DELETE_EXPENSE"
	AuditActionSetBudget     = "SET_BUDGET"
)

// Audited resource types.
const (
	AuditResourceUser    = "user"
	AuditResourceExpense = "expense"
	AuditResourceBudget  = "budget"
)

// auditService appends to the audit_logs table.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log appends an entry for action. It never fails the caller: write errors
// are logged and dropped.
func (s *auditService) Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]any) {
	entry := models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		Changes:      encodeChanges(action, changes),
	}

	if err := s.db.Create(&entry).Error; err != nil {
		logger.Named("audit").Errorw("dropped audit entry",
			"error", err,
			"user_id", userID,
			"action", action,
			"resource", resourceType,
			"resource_id", resourceID,
		)
	}
}

// encodeChanges renders changes as compact JSON, or "" when there are none.
func encodeChanges(action string, changes map[string]any) string {
	if len(changes) == 0 {
		return ""
	}
	data, err := json.Marshal(changes)
	if err != nil {
		logger.Named("audit").Warnw("unencodable audit changes", "error", err, "action", action)
		return "{}"
	}
	return string(data)
}
