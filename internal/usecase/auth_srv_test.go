package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueToken(t *testing.T) {
	signer := &fakeSigner{}
	srv := NewAuthService(signer, testLogger())

	payload := map[string]any{"email": "guest@bistro.test", "name": "Guest"}
	resp, err := srv.IssueToken(context.Background(), payload)

	require.NoError(t, err)
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, payload, signer.payload)
}

func TestIssueToken_SignError(t *testing.T) {
	srv := NewAuthService(&fakeSigner{err: errors.New("boom")}, testLogger())

	resp, err := srv.IssueToken(context.Background(), map[string]any{})

	assert.Error(t, err)
	assert.Nil(t, resp)
}
