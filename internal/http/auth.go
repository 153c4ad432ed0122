package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/service"
)

// sessionCookie is the cookie carrying the signed session token.
const sessionCookie = "token"

// CookieConfig selects cookie attributes per deployment environment.
// Production uses Secure + SameSite=None so the SPA can run on another
// origin; development stays on Lax without Secure.
type CookieConfig struct {
	Secure   bool
	SameSite http.SameSite
	MaxAge   int
}

// ProductionCookies returns the attribute set for deployed environments.
func ProductionCookies(maxAge int) CookieConfig {
	return CookieConfig{Secure: true, SameSite: http.SameSiteNoneMode, MaxAge: maxAge}
}

// DevelopmentCookies returns the permissive local attribute set.
func DevelopmentCookies(maxAge int) CookieConfig {
	return CookieConfig{Secure: false, SameSite: http.SameSiteLaxMode, MaxAge: maxAge}
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(h.cookies.SameSite)
	c.SetCookie(sessionCookie, token, h.cookies.MaxAge, "/", "", h.cookies.Secure, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(h.cookies.SameSite)
	c.SetCookie(sessionCookie, "", -1, "/", "", h.cookies.Secure, true)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Missing Details"})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Missing Details"})
		case errors.Is(err, service.ErrUserAlreadyExists):
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "User already exists"})
		default:
			c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		}
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}
	h.setSessionCookie(c, token)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Register Success"})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Email and Password are required"})
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Email and Password are required"})
		case errors.Is(err, service.ErrInvalidEmail):
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid Email"})
		case errors.Is(err, service.ErrInvalidPassword):
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid Password"})
		default:
			c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		}
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}
	h.setSessionCookie(c, token)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login Success"})
}

// logout clears the cookie unconditionally; it never fails regardless of
// prior session state.
func (h *Handler) logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logout Success"})
}

// isAuthenticated only confirms what the auth middleware already verified.
func (h *Handler) isAuthenticated(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type sendResetOtpRequest struct {
	Email string `json:"email"`
}

func (h *Handler) sendResetOtp(c *gin.Context) {
	var req sendResetOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email is required"})
		return
	}

	if err := h.auth.SendResetOtp(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email is required"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP sent to your Email"})
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	Otp         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

func (h *Handler) resetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email, OTP, and new password are required"})
		return
	}

	if err := h.auth.ResetPassword(c.Request.Context(), req.Email, req.Otp, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email, OTP, and new password are required"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		case errors.Is(err, service.ErrOtpRequestNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "OTP request not found"})
		case errors.Is(err, service.ErrOtpExpired):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "OTP has expired"})
		case errors.Is(err, service.ErrInvalidOtp):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid OTP"})
		case errors.Is(err, service.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Password must be at least 6 characters"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password has been reset successfully"})
}
