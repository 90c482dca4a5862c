package testutil

import (
	"context"
	"net/http"

	"bistro-boss/pkg/utils"

	"github.com/go-chi/chi/v5"
)

// WithChiURLParam adds a chi URL parameter to the request context.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// WithEmail puts email in the request context as if VerifyToken had run.
func WithEmail(r *http.Request, email string) *http.Request {
	return r.WithContext(utils.SetIdentityContext(r.Context(), email))
}
