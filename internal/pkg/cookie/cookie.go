package cookie

import (
	"github.com/gin-gonic/gin"
)

// The portal's auth service sets this cookie; this service only reads it.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
