package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/middleware"
	"spendwise/internal/models"
)

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (uint, error) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		return 0, apperrors.ErrUnauthorized
	}
	return userID.(uint), nil
}

// parsePathID parses a uint path parameter.
// Returns ErrInvalidInput if the parameter is not a valid positive integer.
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return uint(id), nil
}

// bindingError converts a request binding failure into an AppError. Any
// problem with the amount field is reported as INVALID_AMOUNT.
func bindingError(err error) *apperrors.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "Amount" {
				return apperrors.WithMessage(apperrors.ErrInvalidAmount, amountMessage(fe.Tag()))
			}
		}
		return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}

	var serr *models.AmountSyntaxError
	if errors.As(err, &serr) {
		return apperrors.WithMessage(apperrors.ErrInvalidAmount, "amount must be a number")
	}

	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

func amountMessage(tag string) string {
	switch tag {
	case "required":
		return "amount is required"
	case "positive_amount":
		return "amount must be greater than zero"
	case "nonnegative_amount":
		return "amount cannot be negative"
	case "max_amount":
		return "amount must not exceed " + models.MaxAmount.StringFixed(2)
	default:
		return "invalid amount"
	}
}

// respondWithError writes the JSON error body for err and stops the chain.
func respondWithError(c *gin.Context, err error) {
	middleware.WriteError(c, err)
}

// UserResponse represents the user data in the response
type UserResponse struct {
	ID         uint    `json:"id"`
	Username   string  `json:"username"`
	Email      *string `json:"email"`
	JoinedDate string  `json:"joined_date"`
}

func newUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		JoinedDate: u.JoinedDate,
	}
}

// MessageResponse is the body of simple acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
