package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"technocy-server/models"
	"technocy-server/utils"
)

// Key type for context
type contextKey string

const UserContextKey = contextKey("user")

// RoleChecker reports whether the caller identified by email holds the
// admin role. The check runs against stored state on every request, so
// a revoked role takes effect immediately.
type RoleChecker func(ctx context.Context, email string) (bool, error)

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// TokenVerify validates the bearer token and attaches the decoded
// claims to the request context
func TokenVerify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeMessage(w, http.StatusUnauthorized, "Unauthorized-Access")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			writeMessage(w, http.StatusUnauthorized, "Unauthorized-Access")
			return
		}

		claims := &utils.Claims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			return utils.JwtKey, nil
		})
		if err != nil || !token.Valid {
			log.Debug().Err(err).Msg("token verification failed")
			writeMessage(w, http.StatusUnauthorized, "Unauthorized-Access")
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminVerify gates a route on the caller's stored role. It must run
// after TokenVerify, which supplies the caller's email.
func AdminVerify(isAdmin RoleChecker) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(UserContextKey).(*utils.Claims)
			if !ok {
				writeMessage(w, http.StatusUnauthorized, "Unauthorized-Access")
				return
			}

			admin, err := isAdmin(r.Context(), claims.Email)
			if err != nil {
				http.Error(w, "Error checking role", http.StatusInternalServerError)
				return
			}
			if !admin {
				writeMessage(w, http.StatusForbidden, "Forbidden-Access")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// MongoRoleChecker looks the caller up in the users collection. An
// absent record is an ordinary user, not an error.
func MongoRoleChecker(users *mongo.Collection) RoleChecker {
	return func(ctx context.Context, email string) (bool, error) {
		var user models.User
		err := users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return user.Role == "admin", nil
	}
}
