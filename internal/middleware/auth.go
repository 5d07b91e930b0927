// Package middleware provides authentication, logging and rate limiting
// middleware for the application.
package middleware

import (
	"context"
	"fmt"

	"commune/internal/config"
	"commune/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TokenHeader is the request header carrying the raw session token.
// Clients send the bare signed token, no Bearer-scheme wrapping.
const TokenHeader = "x-auth-token"

// TokenIssuer is the `iss` claim stamped on issued tokens and required
// during verification.
const TokenIssuer = "commune-api"

// UserIDLocal is the Fiber locals key holding the authenticated user's id.
const UserIDLocal = "userID"

// Auth returns a middleware that enforces authentication for protected
// routes. It is a pure, stateless gate: signature and expiry are checked
// against the shared secret, the subject claim is decoded into the
// principal's ObjectID, and no session store is consulted. The same token
// always yields the same decision until its expiry passes.
func Auth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Get(TokenHeader)
		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthenticatedError("No token, authorization denied"))
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			// Validate signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(cfg.JWTSecret), nil
		}, jwt.WithIssuer(TokenIssuer), jwt.WithExpirationRequired())

		if err != nil || !token.Valid {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewInvalidTokenError())
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewInvalidTokenError())
		}

		sub, err := claims.GetSubject()
		if err != nil || sub == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewInvalidTokenError())
		}

		userID, err := primitive.ObjectIDFromHex(sub)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewInvalidTokenError())
		}

		// Store user ID in context
		c.Locals(UserIDLocal, userID)
		// Sync to UserContext for logging and downstream services
		ctx := context.WithValue(c.UserContext(), UserIDKey, userID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}
