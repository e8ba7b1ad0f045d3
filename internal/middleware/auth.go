package middleware

import (
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"
)

const userIDKey = "user_id"

type AccessTokenParser interface {
	ParseAccess(token string) (string, error)
}

// Auth rejects requests without a valid bearer access token and stores the
// caller's user ID for UserID.
func Auth(tokens AccessTokenParser) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing bearer token"})
			return
		}

		userID, err := tokens.ParseAccess(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": err.Error()})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func UserID(c *ginext.Context) string {
	return c.GetString(userIDKey)
}
