package middleware

import (
	"errors"
	"fmt"
	"strings"

	"hris-backoffice/internal/shared/contextutil"
	"hris-backoffice/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies an HS256 bearer token (or access_token cookie)
// issued by the identity service and exposes its tenant claims.
func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.ServiceError(c, ErrTokenNotFound)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return key, nil
		})

		if err != nil || !token.Valid {
			errObj := ErrInvalidToken
			if errors.Is(err, jwt.ErrTokenExpired) {
				errObj = ErrTokenExpired
			}
			response.ServiceError(c, errObj)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.ServiceError(c, ErrInvalidToken)
			c.Abort()
			return
		}

		companyID, _ := claims["company_id"].(string)
		employeeID, _ := claims["employee_id"].(string)
		if companyID == "" || employeeID == "" {
			response.ServiceError(c, ErrInvalidToken)
			c.Abort()
			return
		}

		userID, _ := claims["user_id"].(string)
		if userID == "" {
			userID = employeeID
		}
		role, _ := claims["role"].(string)

		c.Set("user_id", userID)
		c.Set("employee_id", employeeID)
		c.Set("company_id", companyID)
		c.Set("role", role)

		ctx := contextutil.WithUserID(c.Request.Context(), userID)
		ctx = contextutil.WithCompanyID(ctx, companyID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
