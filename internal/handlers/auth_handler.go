package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendwise/internal/logger"
	"spendwise/internal/middleware"
	"spendwise/internal/models"
	"spendwise/internal/services"
)

// AuthHandler handles account and session requests.
type AuthHandler struct {
	userService    services.UserServicer
	sessionService services.SessionServicer
	auditService   services.AuditServicer
	cookies        middleware.CookieConfig
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	userService services.UserServicer,
	sessionService services.SessionServicer,
	auditService services.AuditServicer,
	cookies middleware.CookieConfig,
) *AuthHandler {
	return &AuthHandler{
		userService:    userService,
		sessionService: sessionService,
		auditService:   auditService,
		cookies:        cookies,
	}
}

// SignupRequest represents the signup request payload
type SignupRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Email    string `json:"email" binding:"omitempty,email,max=255"`
	Password string `json:"password" binding:"required,max=72"`
}

// LoginRequest represents the login request payload. Either username or
// email identifies the user.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest represents the profile update payload. Empty fields
// are left unchanged.
type UpdateProfileRequest struct {
	Email    string `json:"email" binding:"omitempty,email,max=255"`
	Password string `json:"password" binding:"omitempty,max=72"`
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// Signup handles user registration
// @Summary     Sign up
// @Description Create an account and start a session
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body SignupRequest true "Account details"
// @Success     200 {object} AuthResponse "Account created, session cookie set"
// @Failure     400 {object} ErrorResponse "Missing fields or duplicate username/email"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	user, err := h.userService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.startSession(c, user); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(user.ID, services.AuditActionSignup, services.AuditResourceUser, user.ID, c.ClientIP(),
		map[string]any{"username": user.Username})

	c.JSON(http.StatusOK, AuthResponse{Message: "Created", User: newUserResponse(user)})
}

// Login handles user login
// @Summary     Log in
// @Description Authenticate by username or email and start a session
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Credentials"
// @Success     200 {object} AuthResponse "Session cookie set"
// @Failure     400 {object} ErrorResponse "Malformed body"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	identifier := req.Username
	if identifier == "" {
		identifier = req.Email
	}

	user, err := h.userService.Authenticate(identifier, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.startSession(c, user); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(user.ID, services.AuditActionLogin, services.AuditResourceUser, user.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, AuthResponse{Message: "Logged in", User: newUserResponse(user)})
}

// Logout ends the current session
// @Summary     Log out
// @Description Delete the current session and clear the cookie
// @Tags        auth
// @Produce     json
// @Security    SessionCookie
// @Success     200 {object} MessageResponse "Logged out"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.sessionService.End(c.GetString(middleware.ContextSessionToken)); err != nil {
		logger.Get().Warnw("failed to delete session", "error", err, "user_id", userID)
	}
	middleware.ClearSessionCookie(c, h.cookies)

	h.auditService.Log(userID, services.AuditActionLogout, services.AuditResourceUser, userID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Logged out"})
}

// DeleteAccount removes the user and all of their data
// @Summary     Delete account
// @Description Permanently delete the account, its expenses, budget and sessions
// @Tags        auth
// @Produce     json
// @Security    SessionCookie
// @Success     200 {object} MessageResponse "Account deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /delete_account [delete]
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.userService.DeleteAccount(userID); err != nil {
		respondWithError(c, err)
		return
	}
	middleware.ClearSessionCookie(c, h.cookies)

	h.auditService.Log(userID, services.AuditActionDeleteAccount, services.AuditResourceUser, userID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Account deleted"})
}

// GetProfile returns the user's profile
// @Summary     Get profile
// @Description Get the authenticated user's profile
// @Tags        user
// @Produce     json
// @Security    SessionCookie
// @Success     200 {object} map[string]UserResponse "User profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}

// UpdateProfile changes the email and/or password
// @Summary     Update profile
// @Description Update the email and/or password; empty fields are left unchanged
// @Tags        user
// @Accept      json
// @Produce     json
// @Security    SessionCookie
// @Param       request body UpdateProfileRequest true "Fields to change"
// @Success     200 {object} AuthResponse "Profile updated"
// @Failure     400 {object} ErrorResponse "Invalid or duplicate email"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	user, err := h.userService.UpdateProfile(userID, req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionUpdateProfile, services.AuditResourceUser, userID, c.ClientIP(),
		map[string]any{"email_changed": req.Email != "", "password_changed": req.Password != ""})

	c.JSON(http.StatusOK, AuthResponse{Message: "Profile updated", User: newUserResponse(user)})
}

func (h *AuthHandler) startSession(c *gin.Context, user *models.User) error {
	token, _, err := h.sessionService.Start(user.ID)
	if err != nil {
		return err
	}
	middleware.SetSessionCookie(c, h.cookies, token)
	return nil
}
