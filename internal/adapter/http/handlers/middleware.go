package handlers

import (
	"net/http"
	"strings"

	"grafica_gestao/internal/usecase"
	"grafica_gestao/pkg"

	"github.com/gin-gonic/gin"
)

const (
	contextKeyUserName  = "auth.user.name"
	contextKeyUserEmail = "auth.user.email"
	contextKeyUserRole  = "auth.user.role"
)

var errMissingBearerToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)

// RequireAuth validates the Authorization bearer token and stores the claims
// in the gin context for downstream handlers.
func RequireAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(errMissingBearerToken.HTTPStatus, errMissingBearerToken.ToHTTPError())
			return
		}

		claims, err := auth.ValidateAccessToken(token)
		if err != nil {
			appErr := mapAuthError(err)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(contextKeyUserName, claims.Name)
		c.Set(contextKeyUserEmail, claims.Email)
		c.Set(contextKeyUserRole, claims.Role)
		c.Next()
	}
}

// AuthenticatedUserName returns the display name carried by the validated
// token, or empty when the route is unauthenticated.
func AuthenticatedUserName(c *gin.Context) string {
	return c.GetString(contextKeyUserName)
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}
