package middleware

import (
	"net/http"
	"strings"

	"blogpessoal/utils"

	"github.com/gin-gonic/gin"
)

// AuthRequired exige um token Bearer válido e grava o e-mail autenticado no
// contexto sob a chave "usuario".
func AuthRequired(jwt *utils.JwtService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = authHeader[7:]
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		usuario, err := jwt.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("usuario", usuario)
		c.Next()
	}
}
