package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/artefakt/archive-api/api/types"
	"github.com/artefakt/archive-api/internal/services/auth"
)

// LoginRequest carries login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login issues a session token for valid credentials
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} types.LoginResponse
// @Failure 401 {object} types.ErrorResponse
// @Router /api/v1/auth/login [post]
func Login(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		token, user, err := deps.AuthService.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) || errors.Is(err, auth.ErrUserInactive) {
				c.JSON(http.StatusUnauthorized, types.ErrorResponse{Error: err.Error()})
				return
			}
			types.SendInternalError(c, "Failed to log in")
			return
		}

		c.JSON(http.StatusOK, types.LoginResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Token:        token,
			User:         types.User{ID: user.ID, Email: user.Email},
		})
	}
}

// Me returns the authenticated user
// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} types.User
// @Failure 401 {object} types.ErrorResponse
// @Router /api/v1/auth/me [get]
func Me(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsValue, exists := c.Get("claims")
		if !exists {
			c.JSON(http.StatusUnauthorized, types.ErrorResponse{Error: "Unauthorized"})
			return
		}
		claims := claimsValue.(*auth.Claims)

		user, err := deps.AuthService.CurrentUser(c.Request.Context(), claims)
		if err != nil {
			c.JSON(http.StatusUnauthorized, types.ErrorResponse{Error: "Unknown user"})
			return
		}
		c.JSON(http.StatusOK, types.User{ID: user.ID, Email: user.Email})
	}
}

// Logout acknowledges a logout. Sessions are stateless JWTs, so the
// server has nothing to invalidate; the client discards its token.
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} types.BaseResponse
// @Router /api/v1/auth/logout [post]
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Logged out. Discard the token client-side.",
		})
	}
}

// Middleware validates Bearer tokens and stores the claims
func Middleware(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, types.ErrorResponse{Error: "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, types.ErrorResponse{Error: "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := deps.AuthService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, types.ErrorResponse{Error: "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}
