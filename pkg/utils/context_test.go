package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityContext(t *testing.T) {
	ctx := SetIdentityContext(context.Background(), "ann@bistro.test")

	email, ok := GetEmailFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "ann@bistro.test", email)
}

func TestGetEmailFromContext_Missing(t *testing.T) {
	_, ok := GetEmailFromContext(context.Background())
	assert.False(t, ok)

	_, ok = GetEmailFromContext(SetIdentityContext(context.Background(), ""))
	assert.False(t, ok)
}

func TestRequestIDContext(t *testing.T) {
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Equal(t, "req-1", GetRequestIDFromContext(SetRequestIDContext(context.Background(), "req-1")))
}
