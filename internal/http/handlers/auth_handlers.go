package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/you/notesvc/domain"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	DateOfBirth string `json:"dateOfBirth" binding:"required"`
}

// OTPRequest represents verify and login requests
type OTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

// EmailRequest represents resend and request-login-otp requests
type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validateName(req.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dob, err := validateDateOfBirth(req.DateOfBirth)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issued, err := h.authSvc.Register(c.Request.Context(), req.Name, normalizeEmail(req.Email), dob)
	if err != nil {
		switch err {
		case domain.ErrUserAlreadyExists:
			c.JSON(http.StatusBadRequest, gin.H{"error": "User with this email already exists"})
		case domain.ErrDeliveryFailed:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send OTP email. Please try again."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"message":    "Registration successful. Please check your email for OTP.",
			"email":      issued.Email,
			"expires_at": issued.ExpiresAt,
		},
	})
}

// VerifyOTP handles email verification
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	var req OTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateOTPCode(req.OTP); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.VerifyOTP(c.Request.Context(), normalizeEmail(req.Email), req.OTP)
	if err != nil {
		switch err {
		case domain.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case domain.ErrOTPInvalid:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OTP"})
		case domain.ErrOTPExpired:
			c.JSON(http.StatusBadRequest, gin.H{"error": "OTP has expired. Please request a new one."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "OTP verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Email verified successfully",
			"token":   result.Token,
			"user":    sanitizeUser(result.User),
		},
	})
}

// ResendOTP handles unconditional OTP reissue
func (h *AuthHandlers) ResendOTP(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issued, err := h.authSvc.ResendOTP(c.Request.Context(), normalizeEmail(req.Email))
	if err != nil {
		h.respondIssueError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message":    "OTP sent successfully",
			"email":      issued.Email,
			"expires_at": issued.ExpiresAt,
		},
	})
}

// RequestLoginOTP handles login challenge issuance
func (h *AuthHandlers) RequestLoginOTP(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issued, err := h.authSvc.RequestLoginOTP(c.Request.Context(), normalizeEmail(req.Email))
	if err != nil {
		h.respondIssueError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message":    "Login OTP sent successfully",
			"email":      issued.Email,
			"expires_at": issued.ExpiresAt,
		},
	})
}

// Login handles OTP login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req OTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateOTPCode(req.OTP); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), normalizeEmail(req.Email), req.OTP)
	if err != nil {
		switch err {
		case domain.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case domain.ErrEmailNotVerified:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please verify your email first"})
		case domain.ErrOTPInvalid:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OTP"})
		case domain.ErrOTPExpired:
			c.JSON(http.StatusBadRequest, gin.H{"error": "OTP has expired. Please request a new one."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Login successful",
			"token":   result.Token,
			"user":    sanitizeUser(result.User),
		},
	})
}

// Me handles getting the authenticated user's profile
func (h *AuthHandlers) Me(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	user, err := h.authSvc.GetUserProfile(c.Request.Context(), userID.(uint))
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"user": sanitizeUser(user)}})
}

func (h *AuthHandlers) respondIssueError(c *gin.Context, err error) {
	switch err {
	case domain.ErrUserNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case domain.ErrEmailNotVerified:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please verify your email first"})
	case domain.ErrDeliveryFailed:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send OTP email. Please try again."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send OTP"})
	}
}

// sanitizeUser strips everything but the public profile fields. The
// challenge never appears here because it is not part of the user record.
func sanitizeUser(user *domain.User) gin.H {
	return gin.H{
		"id":                user.ID,
		"name":              user.Name,
		"email":             user.Email,
		"date_of_birth":     user.DateOfBirth.Format("2006-01-02"),
		"is_email_verified": user.IsEmailVerified,
		"created_at":        user.CreatedAt.Format(time.RFC3339),
		"updated_at":        user.UpdatedAt.Format(time.RFC3339),
	}
}
