package middleware

import (
	"net/http"
	"strings"

	"bistro-boss/internal/data/repository"
	"bistro-boss/pkg/token"
	"bistro-boss/pkg/utils"

	"go.uber.org/zap"
)

// TokenVerifier decodes a signed access token into its claims.
type TokenVerifier interface {
	Verify(tokenString string) (map[string]any, error)
}

// VerifyToken requires "Authorization: Bearer <token>" and stores the decoded
// claims and email in the request context.
func VerifyToken(verifier TokenVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseForbidden(w, "Forbidden access!")
				return
			}

			// only the second space-separated part is read
			parts := strings.Split(authHeader, " ")
			if len(parts) < 2 || parts[1] == "" {
				utils.ResponseUnauthorized(w, "Unauthorized access!")
				return
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				logger.Warn("Rejected access token",
					zap.Error(err),
					zap.String("path", r.URL.Path),
					zap.String("request_id", utils.GetRequestIDFromContext(r.Context())),
				)
				utils.ResponseUnauthorized(w, "Unauthorized access!")
				return
			}

			ctx := utils.SetIdentityContext(r.Context(), token.Email(claims))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// VerifyAdmin must run after VerifyToken. It passes only when the user stored
// under the token email has the admin role.
func VerifyAdmin(userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := utils.GetEmailFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Unauthorized access!")
				return
			}

			user, err := userRepo.FindByEmail(r.Context(), email)
			if err != nil {
				logger.Error("Admin check: failed to get user",
					zap.Error(err), zap.String("email", email))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if !user.IsAdmin() {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("email", email),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "forbidden access")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
