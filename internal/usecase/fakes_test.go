package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type fakeSigner struct {
	payload map[string]any
	err     error
}

func (f *fakeSigner) Sign(payload map[string]any) (string, error) {
	f.payload = payload
	if f.err != nil {
		return "", f.err
	}
	return "signed-token", nil
}

type fakeProcessor struct {
	amounts []int64
	err     error
}

func (f *fakeProcessor) CreateIntent(ctx context.Context, amount int64) (string, error) {
	f.amounts = append(f.amounts, amount)
	if f.err != nil {
		return "", f.err
	}
	return "pi_secret_123", nil
}

type sentMail struct {
	to            string
	transactionID string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeMailer) SendOrderConfirmation(ctx context.Context, to, transactionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{to: to, transactionID: transactionID})
	return f.err
}

func (f *fakeMailer) Sent() []sentMail {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMail(nil), f.sent...)
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
