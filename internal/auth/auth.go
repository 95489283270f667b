// Package auth issues and verifies the JWTs used by the HTTP surface.
// There is no password flow; tokens carry a user id and a role and teacher
// routes require the teacher or admin role.
package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/lessonlab/backend/config"
	"github.com/lessonlab/backend/internal/dto"
)

const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"

	TokenTTL = 7 * 24 * time.Hour

	// ContextKey is where the middleware stores the verified claims.
	ContextKey = "auth_claims"
)

type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret []byte
}

func NewManager(cfg *config.Config) *Manager {
	return &Manager{secret: []byte(cfg.Auth.JWTSecret)}
}

func (m *Manager) GenerateToken(userID uint, role string) (string, error) {
	if userID == 0 {
		return "", fmt.Errorf("userID is required")
	}
	switch role {
	case RoleStudent, RoleTeacher, RoleAdmin:
	default:
		return "", fmt.Errorf("invalid role %q: must be student, teacher, or admin", role)
	}

	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *Manager) ParseToken(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// RequireRoles is a gin middleware that authenticates the request from the
// Authorization header and rejects callers whose role is not allowed.
func (m *Manager) RequireRoles(allowed ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing or invalid Authorization header"})
			return
		}

		claims, err := m.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: err.Error()})
			return
		}

		permitted := false
		for _, role := range allowed {
			if claims.Role == role {
				permitted = true
				break
			}
		}
		if !permitted {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Message: "Forbidden: requires one of roles: " + strings.Join(allowed, ", "),
			})
			return
		}

		ctx.Set(ContextKey, claims)
		ctx.Next()
	}
}
