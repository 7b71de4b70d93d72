package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Xebarter/Manziz/entity"
	"github.com/Xebarter/Manziz/pesapal"
	"github.com/Xebarter/Manziz/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.MenuItem{}, &entity.Order{}, &entity.OrderItem{},
		&entity.Payment{}, &entity.Reservation{}, &entity.Message{},
	))
	return db
}

// gatewayStub fakes the Pesapal API: token endpoint always succeeds,
// submit/status behavior is configurable per test.
type gatewayStub struct {
	submit func(w http.ResponseWriter, r *http.Request)
	status func(w http.ResponseWriter, r *http.Request)
}

func newGateway(t *testing.T, stub gatewayStub) (*pesapal.Client, *httptest.Server) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/Auth/RequestToken", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"token": "test-token"})
	})
	if stub.submit != nil {
		mux.HandleFunc("/api/Transactions/SubmitOrderRequest", stub.submit)
	}
	if stub.status != nil {
		mux.HandleFunc("/api/Transactions/GetTransactionStatus", stub.status)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := pesapal.NewClient(pesapal.Config{
		BaseURL:        srv.URL,
		ConsumerKey:    "key",
		ConsumerSecret: "secret",
		IPNID:          "ipn-test",
		CallbackURL:    "http://localhost/payment/callback",
	}, srv.Client())
	return client, srv
}

func acceptingSubmit(trackingID string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(pesapal.OrderResponse{
			OrderTrackingID:   trackingID,
			MerchantReference: "ref",
			RedirectURL:       "https://pay.example/redirect",
		})
	}
}

func statusReporting(code int) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(pesapal.TransactionStatus{
			StatusCode:               code,
			PaymentStatusDescription: "desc",
			ConfirmationCode:         "CONF-1",
			PaymentMethod:            "MTN Mobile Money",
		})
	}
}

func newOrderService(t *testing.T, db *gorm.DB, gateway *pesapal.Client) *OrderService {
	t.Helper()
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewPaymentRepository(db),
		gateway,
	)
}
