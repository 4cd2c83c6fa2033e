package middleware

import (
	"errors"
	"net/http"

	"commute-notice/internal/models"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// JWTAuth configures and returns Echo's JWT middleware. The session token
// carries only the allow-list username.
func JWTAuth(jwtSecretKey string) echo.MiddlewareFunc {
	config := echojwt.Config{
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(models.JwtCustomClaims)
		},
		SigningKey: []byte(jwtSecretKey),

		// Copy the custom claims into the context for handlers.
		SuccessHandler: func(c echo.Context) {
			userToken := c.Get("user").(*jwt.Token)
			claims := userToken.Claims.(*models.JwtCustomClaims)
			c.Set("username", claims.Username)
		},

		ErrorHandler: func(c echo.Context, err error) error {
			c.Logger().Errorf("JWT Error: %v", err)

			if errors.Is(err, echojwt.ErrJWTMissing) {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "Missing or malformed JWT"})
			}
			if errors.Is(err, jwt.ErrTokenExpired) {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "Token has expired"})
			}
			return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "Invalid or expired JWT"})
		},
	}
	return echojwt.WithConfig(config)
}
