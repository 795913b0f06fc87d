package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"roadbuddy/middleware"
	"roadbuddy/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthorizeHandler handles POST /auth. It verifies the Bearer ID token,
// warms the identity cache and returns the resolved identity.
func (h *HandlerBundle) AuthorizeHandler(c *gin.Context) {
	tokenString, ok := bearerToken(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized: No token provided", "")
		return
	}

	identity, err := middleware.ResolveIdentity(c.Request.Context(), tokenString)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized: Invalid token", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in successfully",
		"user":    identity,
	})
}

// SignUpHandler handles POST /api/signup.
func (h *HandlerBundle) SignUpHandler(c *gin.Context) {
	data, _, ok := bindPayload(c, []string{"name", "email", "password"})
	if !ok {
		return
	}

	name := strings.TrimSpace(stringField(data, "name"))
	email := strings.TrimSpace(stringField(data, "email"))
	password := strings.TrimSpace(stringField(data, "password"))
	if email == "" || password == "" {
		utils.JSONError(c, http.StatusBadRequest, "Email and password are required", "")
		return
	}

	if err := h.Users.SignUp(c.Request.Context(), name, email, password); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Signup successful"})
}

// LogoutHandler handles POST /api/logout. It evicts the caller's cached
// identity so the token must be re-verified.
func (h *HandlerBundle) LogoutHandler(c *gin.Context) {
	if tokenString, ok := bearerToken(c); ok {
		middleware.EvictIdentity(c.Request.Context(), tokenString)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// UserIDHandler handles GET /api/user-id.
func (h *HandlerBundle) UserIDHandler(c *gin.Context) {
	userID, _, ok := callerIdentity(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"userId": userID})
}

// HomeHandler handles GET /api/home.
func (h *HandlerBundle) HomeHandler(c *gin.Context) {
	_, userName, ok := callerIdentity(c)
	if !ok {
		return
	}
	getLogger(c).Debug("Home requested", zap.String("userName", userName))
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Welcome %s!", userName)})
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	return tokenString, tokenString != ""
}
