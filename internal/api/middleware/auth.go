// internal/api/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mel-lab-api-server/internal/auth"
)

// Authenticate valida o token JWT do header Authorization e coloca a
// identidade do usuário no contexto da requisição. O segredo vem da
// configuração, injetado na montagem do router.
func Authenticate(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Header Authorization é obrigatório"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Formato de token inválido"})
			return
		}

		claims, err := auth.ParseJWT(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token inválido ou expirado"})
			return
		}

		// Identidade usada apenas para exibição e auditoria.
		c.Set("user_email", claims.Email)
		c.Set("user_nome", claims.Nome)

		c.Next()
	}
}
