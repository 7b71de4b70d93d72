package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/Xebarter/Manziz/apperr"
	"github.com/Xebarter/Manziz/cart"
	"github.com/Xebarter/Manziz/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartWith(items ...cart.Line) *cart.Store {
	s := cart.NewStore(cart.NewMemoryAdapter())
	for _, l := range items {
		for i := 0; i < l.Quantity; i++ {
			s.AddItem(l.Item, l.Note)
		}
	}
	return s
}

func line(id string, price int64, qty int) cart.Line {
	return cart.Line{Item: entity.MenuItem{ID: id, Name: id, Price: price, IsAvailable: true}, Quantity: qty}
}

func cashReq() *CheckoutReq {
	return &CheckoutReq{
		CustomerName:  "Jane Apio",
		PhoneNumber:   "+256784811208",
		Email:         "jane@example.com",
		DeliveryType:  entity.DeliveryTypePickup,
		PaymentMethod: entity.PaymentMethodCash,
	}
}

func TestQuoteDeliveryFeeMatrix(t *testing.T) {
	cases := []struct {
		subtotal     int64
		deliveryType string
		wantFee      int64
		wantTotal    int64
	}{
		{25000, entity.DeliveryTypePickup, 0, 25000},
		{30000, entity.DeliveryTypeDelivery, 5000, 35000},
		{50000, entity.DeliveryTypeDelivery, 0, 50000},
		{120000, entity.DeliveryTypeDelivery, 0, 120000},
		{120000, entity.DeliveryTypePickup, 0, 120000},
	}
	for _, tc := range cases {
		fee, total := Quote(tc.subtotal, tc.deliveryType)
		assert.Equal(t, tc.wantFee, fee, "subtotal=%d type=%s", tc.subtotal, tc.deliveryType)
		assert.Equal(t, tc.wantTotal, total, "subtotal=%d type=%s", tc.subtotal, tc.deliveryType)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db, nil)

	_, err := svc.Checkout(cart.NewStore(cart.NewMemoryAdapter()), cashReq())
	require.ErrorIs(t, err, apperr.ErrEmptyCart)
}

func TestCheckoutMissingEmailCreatesNoOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db, nil)

	req := cashReq()
	req.Email = ""
	_, err := svc.Checkout(cartWith(line("a", 25000, 1)), req)

	var vErr *apperr.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "email")

	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCheckoutDeliveryRequiresAddress(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db, nil)

	req := cashReq()
	req.DeliveryType = entity.DeliveryTypeDelivery
	_, err := svc.Checkout(cartWith(line("a", 25000, 1)), req)

	var vErr *apperr.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "delivery_address")
}

func TestCheckoutScheduleValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db, nil)

	// In the past: rejected.
	req := cashReq()
	req.ScheduleOrder = true
	past := time.Now().Add(-time.Hour)
	req.ScheduledDate = past.Format("2006-01-02")
	req.ScheduledTime = past.Format("15:04")
	_, err := svc.Checkout(cartWith(line("a", 25000, 1)), req)
	var vErr *apperr.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "scheduled_for")

	// Shortly in the future: accepted.
	req = cashReq()
	req.ScheduleOrder = true
	future := time.Now().Add(2 * time.Minute)
	req.ScheduledDate = future.Format("2006-01-02")
	req.ScheduledTime = future.Format("15:04")
	res, err := svc.Checkout(cartWith(line("a", 25000, 1)), req)
	require.NoError(t, err)

	var order entity.Order
	require.NoError(t, db.First(&order, "id = ?", res.OrderID).Error)
	require.NotNil(t, order.ScheduledFor)
	assert.True(t, order.ScheduledFor.After(time.Now().Add(-time.Minute)))
}

func TestCheckoutCashPickup(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db, nil)

	store := cartWith(line("a", 25000, 1))
	res, err := svc.Checkout(store, cashReq())
	require.NoError(t, err)

	assert.Equal(t, int64(25000), res.TotalAmount)
	assert.Zero(t, res.DeliveryFee)
	assert.Empty(t, res.RedirectURL)

	// Cart is cleared on success.
	assert.Empty(t, store.Lines())

	var order entity.Order
	require.NoError(t, db.Preload("Items").First(&order, "id = ?", res.OrderID).Error)
	assert.Equal(t, entity.StatusPending, order.OrderStatus)
	assert.Equal(t, entity.PaymentPending, order.PaymentStatus)
	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(25000), order.Items[0].PriceAtTime)
}

func TestCheckoutDeliveryFeeApplied(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db, nil)

	req := cashReq()
	req.DeliveryType = entity.DeliveryTypeDelivery
	req.DeliveryAddress = "123 Main Street, Kampala"

	res, err := svc.Checkout(cartWith(line("a", 10000, 3)), req)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), res.DeliveryFee)
	assert.Equal(t, int64(35000), res.TotalAmount)
}

func TestCheckoutOnlineSuccess(t *testing.T) {
	db := newTestDB(t)
	gateway, _ := newGateway(t, gatewayStub{submit: acceptingSubmit("track-42")})
	svc := newOrderService(t, db, gateway)

	req := cashReq()
	req.PaymentMethod = entity.PaymentMethodOnline
	store := cartWith(line("a", 25000, 1))

	res, err := svc.Checkout(store, req)
	require.NoError(t, err)

	assert.Equal(t, "https://pay.example/redirect", res.RedirectURL)
	assert.Equal(t, "track-42", res.TrackingID)
	assert.Empty(t, store.Lines(), "cart cleared once the gateway accepted")

	var payment entity.Payment
	require.NoError(t, db.First(&payment, "order_id = ?", res.OrderID).Error)
	assert.Equal(t, "initiated", payment.Status)
	assert.Equal(t, "track-42", payment.TrackingID)
	assert.Equal(t, int64(25000), payment.Amount)
}

func TestCheckoutOnlineGatewayFailureKeepsCart(t *testing.T) {
	db := newTestDB(t)
	gateway, _ := newGateway(t, gatewayStub{
		submit: func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "provider down", http.StatusBadGateway)
		},
	})
	svc := newOrderService(t, db, gateway)

	req := cashReq()
	req.PaymentMethod = entity.PaymentMethodOnline
	store := cartWith(line("a", 25000, 1))

	_, err := svc.Checkout(store, req)
	var gErr *apperr.GatewayError
	require.ErrorAs(t, err, &gErr)

	// Cart must stay intact for the retry.
	assert.Len(t, store.Lines(), 1)

	// The orphaned order row is marked failed.
	var order entity.Order
	require.NoError(t, db.First(&order).Error)
	assert.Equal(t, entity.PaymentFailed, order.PaymentStatus)
	assert.Equal(t, entity.StatusPending, order.OrderStatus)
}

func TestSetStatusAdminOverride(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db, nil)

	store := cartWith(line("a", 25000, 1))
	res, err := svc.Checkout(store, cashReq())
	require.NoError(t, err)

	// Jump straight to ready, skipping intermediate states.
	require.NoError(t, svc.SetStatus(res.OrderID, entity.StatusReady))
	// And back again: the override has no ordering guard.
	require.NoError(t, svc.SetStatus(res.OrderID, entity.StatusConfirmed))

	var order entity.Order
	require.NoError(t, db.First(&order, "id = ?", res.OrderID).Error)
	assert.Equal(t, entity.StatusConfirmed, order.OrderStatus)

	require.Error(t, svc.SetStatus(res.OrderID, "bogus"))
}

func TestSetStatusCancelGuard(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db, nil)

	res, err := svc.Checkout(cartWith(line("a", 25000, 1)), cashReq())
	require.NoError(t, err)

	require.NoError(t, svc.SetStatus(res.OrderID, entity.StatusDelivered))
	err = svc.SetStatus(res.OrderID, entity.StatusCancelled)
	var vErr *apperr.ValidationError
	require.ErrorAs(t, err, &vErr)

	require.ErrorIs(t, svc.SetStatus("missing", entity.StatusCancelled), apperr.ErrNotFound)
}

func TestTrackRendersSteps(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db, nil)

	res, err := svc.Checkout(cartWith(line("a", 25000, 1)), cashReq())
	require.NoError(t, err)
	require.NoError(t, svc.SetStatus(res.OrderID, entity.StatusPreparing))

	track, err := svc.Track(res.OrderID)
	require.NoError(t, err)
	require.Len(t, track.Steps, 5)
	assert.False(t, track.Cancelled)
	assert.True(t, track.Steps[0].Reached)
	assert.True(t, track.Steps[2].Reached)
	assert.True(t, track.Steps[2].Current)
	assert.False(t, track.Steps[3].Reached)
}

func TestTrackCancelledOrderDoesNotBreak(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db, nil)

	res, err := svc.Checkout(cartWith(line("a", 25000, 1)), cashReq())
	require.NoError(t, err)
	require.NoError(t, svc.SetStatus(res.OrderID, entity.StatusCancelled))

	track, err := svc.Track(res.OrderID)
	require.NoError(t, err)
	assert.True(t, track.Cancelled)
	for _, step := range track.Steps {
		assert.False(t, step.Reached)
		assert.False(t, step.Current)
	}
}

func TestTrackUnknownOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db, nil)

	_, err := svc.Track("nope")
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
