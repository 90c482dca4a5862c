package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bistro-boss/internal/data/entity"
	"bistro-boss/internal/testutil"
	"bistro-boss/pkg/middleware"
	"bistro-boss/pkg/token"
	"bistro-boss/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "kitchen-secret"

func okHandler(t *testing.T, gotEmail *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, _ := utils.GetEmailFromContext(r.Context())
		if gotEmail != nil {
			*gotEmail = email
		}
		w.WriteHeader(http.StatusOK)
	})
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body utils.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func signedToken(t *testing.T, email string) string {
	t.Helper()
	tok, err := token.NewManager(testSecret, time.Hour).Sign(map[string]any{"email": email})
	require.NoError(t, err)
	return tok
}

func TestVerifyToken(t *testing.T) {
	verifier := token.NewManager(testSecret, time.Hour)
	otherKey := token.NewManager("another-secret", time.Hour)
	foreign, err := otherKey.Sign(map[string]any{"email": "ann@bistro.test"})
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantMsg    string
		wantEmail  string
	}{
		{name: "missing header", header: "", wantStatus: http.StatusForbidden, wantMsg: "Forbidden access!"},
		{name: "no token part", header: "Bearer", wantStatus: http.StatusUnauthorized, wantMsg: "Unauthorized access!"},
		{name: "garbage token", header: "Bearer not.a.jwt", wantStatus: http.StatusUnauthorized, wantMsg: "Unauthorized access!"},
		{name: "wrong secret", header: "Bearer " + foreign, wantStatus: http.StatusUnauthorized, wantMsg: "Unauthorized access!"},
		{name: "valid", header: "Bearer " + signedToken(t, "ann@bistro.test"), wantStatus: http.StatusOK, wantEmail: "ann@bistro.test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotEmail string
			h := middleware.VerifyToken(verifier, zap.NewNop())(okHandler(t, &gotEmail))

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decodeMessage(t, rec))
			}
			assert.Equal(t, tt.wantEmail, gotEmail)
		})
	}
}

func TestVerifyAdmin(t *testing.T) {
	store := testutil.NewStore()
	store.Users = []*entity.User{
		{Email: "boss@bistro.test", Role: entity.RoleAdmin},
		{Email: "guest@bistro.test"},
	}
	gate := middleware.VerifyAdmin(store.Repository().User, zap.NewNop())

	tests := []struct {
		name       string
		email      string
		wantStatus int
	}{
		{name: "admin", email: "boss@bistro.test", wantStatus: http.StatusOK},
		{name: "not admin", email: "guest@bistro.test", wantStatus: http.StatusForbidden},
		{name: "unknown user", email: "ghost@bistro.test", wantStatus: http.StatusForbidden},
		{name: "no identity", email: "", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			if tt.email != "" {
				req = testutil.WithEmail(req, tt.email)
			}
			rec := httptest.NewRecorder()
			gate(okHandler(t, nil)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestVerifyAdmin_StoreError(t *testing.T) {
	store := testutil.NewStore()
	store.Err = assert.AnError
	gate := middleware.VerifyAdmin(store.Repository().User, zap.NewNop())

	req := testutil.WithEmail(httptest.NewRequest(http.MethodGet, "/users", nil), "boss@bistro.test")
	rec := httptest.NewRecorder()
	gate(okHandler(t, nil)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeMessage(t, rec))
}
