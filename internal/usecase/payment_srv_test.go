package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"bistro-boss/internal/data/entity"
	"bistro-boss/internal/dto/request"
	"bistro-boss/internal/testutil"
	"bistro-boss/pkg/mailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestCreatePaymentIntent_AmountInCents(t *testing.T) {
	tests := []struct {
		price string
		want  int64
	}{
		{price: "12", want: 1200},
		{price: "12.5", want: 1250},
		{price: "0.015", want: 1},
		{price: "19.999", want: 1999},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			processor := &fakeProcessor{}
			srv := NewPaymentService(testutil.NewStore().Repository(), processor, nil, testLogger())

			resp, err := srv.CreatePaymentIntent(context.Background(), &request.PaymentIntentRequest{Price: json.Number(tt.price)})

			require.NoError(t, err)
			assert.Equal(t, "pi_secret_123", resp.ClientSecret)
			assert.Equal(t, []int64{tt.want}, processor.amounts)
		})
	}
}

func TestCreatePaymentIntent_NonNumericPrice(t *testing.T) {
	processor := &fakeProcessor{}
	srv := NewPaymentService(testutil.NewStore().Repository(), processor, nil, testLogger())

	_, err := srv.CreatePaymentIntent(context.Background(), &request.PaymentIntentRequest{Price: json.Number("twelve")})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, processor.amounts)
}

func TestCreatePaymentIntent_ProcessorError(t *testing.T) {
	srv := NewPaymentService(testutil.NewStore().Repository(), &fakeProcessor{err: errors.New("card_declined")}, nil, testLogger())

	resp, err := srv.CreatePaymentIntent(context.Background(), &request.PaymentIntentRequest{Price: json.Number("5")})

	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestRecordPayment(t *testing.T) {
	store := testutil.NewStore()
	paid1 := &entity.CartItem{ID: primitive.NewObjectID(), Email: "ann@bistro.test"}
	paid2 := &entity.CartItem{ID: primitive.NewObjectID(), Email: "ann@bistro.test"}
	other := &entity.CartItem{ID: primitive.NewObjectID(), Email: "ann@bistro.test"}
	store.Cart = []*entity.CartItem{paid1, paid2, other}
	menuID := primitive.NewObjectID()

	mailer := &fakeMailer{}
	srv := NewPaymentService(store.Repository(), &fakeProcessor{}, mailer, testLogger())

	resp, err := srv.RecordPayment(context.Background(), &request.PaymentRequest{
		Email:         "ann@bistro.test",
		Price:         12,
		TransactionID: "pi_3N",
		CartIDs:       []string{paid1.ID.Hex(), paid2.ID.Hex()},
		MenuItemIDs:   []string{menuID.Hex(), menuID.Hex()},
	})
	require.NoError(t, err)

	assert.True(t, resp.PaymentResult.Acknowledged)
	require.NotNil(t, resp.PaymentResult.InsertedID)
	assert.Equal(t, int64(2), resp.DeleteResult.DeletedCount)

	require.Len(t, store.Cart, 1)
	assert.Equal(t, other.ID, store.Cart[0].ID)

	require.Len(t, store.Payments, 1)
	stored := store.Payments[0]
	assert.Equal(t, entity.PaymentStatusPending, stored.Status)
	assert.Equal(t, []primitive.ObjectID{menuID, menuID}, stored.MenuItemIDs)
	assert.Equal(t, []primitive.ObjectID{paid1.ID, paid2.ID}, stored.CartIDs)
	assert.False(t, stored.Date.IsZero())

	assert.Eventually(t, func() bool { return len(mailer.Sent()) == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, sentMail{to: "ann@bistro.test", transactionID: "pi_3N"}, mailer.Sent()[0])
}

func TestRecordPayment_KeepsClientDateAndStatus(t *testing.T) {
	store := testutil.NewStore()
	srv := NewPaymentService(store.Repository(), &fakeProcessor{}, nil, testLogger())
	date := time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC)

	_, err := srv.RecordPayment(context.Background(), &request.PaymentRequest{
		Email:         "ann@bistro.test",
		TransactionID: "pi_1",
		Date:          &date,
		Status:        "paid",
	})
	require.NoError(t, err)

	require.Len(t, store.Payments, 1)
	assert.Equal(t, date, store.Payments[0].Date)
	assert.Equal(t, entity.PaymentStatus("paid"), store.Payments[0].Status)
	assert.NotNil(t, store.Payments[0].CartIDs)
}

func TestRecordPayment_MailFailureDoesNotFailCheckout(t *testing.T) {
	store := testutil.NewStore()
	mailer := &fakeMailer{err: errors.New("mailgun down")}
	srv := NewPaymentService(store.Repository(), &fakeProcessor{}, mailer, testLogger())

	resp, err := srv.RecordPayment(context.Background(), &request.PaymentRequest{
		Email: "ann@bistro.test", TransactionID: "pi_2",
	})

	require.NoError(t, err)
	assert.NotNil(t, resp.PaymentResult)
	assert.Eventually(t, func() bool { return len(mailer.Sent()) == 1 }, time.Second, 10*time.Millisecond)
	assert.Len(t, store.Payments, 1)
}

func TestRecordPayment_InvalidCartID(t *testing.T) {
	store := testutil.NewStore()
	srv := NewPaymentService(store.Repository(), &fakeProcessor{}, nil, testLogger())

	_, err := srv.RecordPayment(context.Background(), &request.PaymentRequest{
		Email: "ann@bistro.test", TransactionID: "pi_3", CartIDs: []string{"bad"},
	})

	assert.ErrorIs(t, err, ErrInvalidID)
	assert.Zero(t, store.CallCount("payments.Create"))
}

func TestRecordPayment_StoreError(t *testing.T) {
	store := testutil.NewStore()
	store.Err = errors.New("write conflict")
	mailer := &fakeMailer{}
	srv := NewPaymentService(store.Repository(), &fakeProcessor{}, mailer, testLogger())

	_, err := srv.RecordPayment(context.Background(), &request.PaymentRequest{
		Email: "ann@bistro.test", TransactionID: "pi_4",
	})

	assert.Error(t, err)
	assert.Zero(t, store.CallCount("cart.DeleteMany"))
	assert.Empty(t, mailer.Sent())
}

func TestGetUserPayments(t *testing.T) {
	store := testutil.NewStore()
	store.Payments = []*entity.Payment{
		{ID: primitive.NewObjectID(), Email: "ann@bistro.test", TransactionID: "old"},
		{ID: primitive.NewObjectID(), Email: "bob@bistro.test", TransactionID: "bob"},
		{ID: primitive.NewObjectID(), Email: "ann@bistro.test", TransactionID: "new"},
	}
	srv := NewPaymentService(store.Repository(), &fakeProcessor{}, nil, testLogger())

	payments, err := srv.GetUserPayments(context.Background(), "ann@bistro.test", "ann@bistro.test")

	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "new", payments[0].TransactionID)
	assert.Equal(t, "old", payments[1].TransactionID)
}

func TestGetUserPayments_OtherEmailForbiddenWithoutQuery(t *testing.T) {
	store := testutil.NewStore()
	srv := NewPaymentService(store.Repository(), &fakeProcessor{}, nil, testLogger())

	payments, err := srv.GetUserPayments(context.Background(), "ann@bistro.test", "bob@bistro.test")

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Nil(t, payments)
	assert.Zero(t, store.CallCount("payments.FindByEmail"))
}

func TestRecordPayment_UnconfiguredMailStillDispatches(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	srv := NewPaymentService(testutil.NewStore().Repository(), &fakeProcessor{}, mailer.NewLogMailer(zap.New(core)), testLogger())

	_, err := srv.RecordPayment(context.Background(), &request.PaymentRequest{
		Email:         "ann@bistro.test",
		Price:         3,
		TransactionID: "pi_9",
		CartIDs:       []string{},
		MenuItemIDs:   []string{},
	})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return logs.FilterField(zap.String("transaction_id", "pi_9")).Len() == 1
	}, time.Second, 10*time.Millisecond)
}
