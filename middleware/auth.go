package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"roadbuddy/database"
	"roadbuddy/models"
	"roadbuddy/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// FirebaseAuthMiddleware authenticates every request from its Bearer ID
// token. Verified identities are cached in Redis keyed by the token hash so
// repeated requests skip token verification.
func FirebaseAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization token required",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization token required",
			})
			return
		}

		ctx := c.Request.Context()
		cacheKey := utils.AuthCachePrefix + utils.HashToken(tokenString)

		if identity, ok := cachedIdentity(ctx, cacheKey); ok {
			setIdentity(c, identity)
			c.Next()
			return
		}

		identity, err := ResolveIdentity(ctx, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			return
		}

		setIdentity(c, identity)
		c.Next()
	}
}

func setIdentity(c *gin.Context, identity *models.Identity) {
	c.Set("userID", identity.UserID)
	c.Set("userName", identity.Name)
}

func cachedIdentity(ctx context.Context, cacheKey string) (*models.Identity, bool) {
	authCache := utils.GetAuthCacheClient()
	raw, err := authCache.Get(ctx, cacheKey).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		zap.L().Warn("Auth cache lookup failed", zap.Error(err))
		return nil, false
	}

	var identity models.Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil || identity.UserID == "" {
		return nil, false
	}
	// Sliding expiry: active tokens stay warm.
	_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
	return &identity, true
}

func cacheIdentity(ctx context.Context, cacheKey string, identity *models.Identity) {
	raw, err := json.Marshal(identity)
	if err != nil {
		return
	}
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, raw, utils.AuthCacheTTL).Err(); err != nil {
		zap.L().Warn("Failed to cache verified identity", zap.Error(err))
	}
}

// ResolveIdentity verifies the ID token against Firebase, resolves the
// caller's display name from the token claims (falling back to the user
// document) and warms the auth cache.
func ResolveIdentity(ctx context.Context, tokenString string) (*models.Identity, error) {
	token, err := utils.GetAuthClient().VerifyIDToken(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	identity := &models.Identity{UserID: token.UID}
	if name, ok := token.Claims["name"].(string); ok {
		identity.Name = name
	}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}

	if identity.Name == "" {
		snap, err := database.GetClient().Collection("users").Doc(token.UID).Get(ctx)
		if err == nil {
			if name, err := snap.DataAt("name"); err == nil {
				if s, ok := name.(string); ok {
					identity.Name = s
				}
			}
		}
	}

	cacheIdentity(ctx, utils.AuthCachePrefix+utils.HashToken(tokenString), identity)
	return identity, nil
}

// EvictIdentity drops the cached identity for a token. Used at logout.
func EvictIdentity(ctx context.Context, tokenString string) {
	cacheKey := utils.AuthCachePrefix + utils.HashToken(tokenString)
	if err := utils.GetAuthCacheClient().Del(ctx, cacheKey).Err(); err != nil {
		zap.L().Warn("Failed to evict cached identity", zap.Error(err))
	}
}
