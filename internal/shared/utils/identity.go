package utils

import "github.com/gin-gonic/gin"

// IdentityKey is the gin context key holding the resolved identity token.
const IdentityKey = "identity"

func SetIdentity(c *gin.Context, token string) {
	c.Set(IdentityKey, token)
}

// GetIdentity returns the identity token, or "" for anonymous requests.
func GetIdentity(c *gin.Context) string {
	return c.GetString(IdentityKey)
}
