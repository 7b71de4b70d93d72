package pesapal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/mail"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/Xebarter/Manziz/apperr"
)

// Tokens really last an hour; renew at 50 minutes to stay clear of the edge.
const tokenLifetime = 50 * time.Minute

type Config struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	IPNID          string
	CallbackURL    string
}

// Client wraps Pesapal's token-based REST API.
type Client struct {
	cfg  Config
	http *http.Client

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewClient(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{cfg: cfg, http: httpClient}
}

// GetAccessToken returns the cached token while it is fresh, otherwise
// exchanges the consumer credentials for a new one.
func (c *Client) GetAccessToken() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	body, _ := json.Marshal(map[string]string{
		"consumer_key":    c.cfg.ConsumerKey,
		"consumer_secret": c.cfg.ConsumerSecret,
	})
	req, err := http.NewRequest(http.MethodPost, c.cfg.BaseURL+"/api/Auth/RequestToken", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return "", &apperr.NetworkError{Op: "pesapal token request", Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", &apperr.AuthError{Reason: fmt.Sprintf("token request rejected (http %d)", res.StatusCode)}
	}

	var tr tokenResponse
	if err := json.NewDecoder(res.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tr.Error != nil {
		return "", &apperr.AuthError{Reason: tr.Error.Message}
	}
	if tr.Token == "" {
		return "", &apperr.AuthError{Reason: "empty token in response"}
	}

	c.token = tr.Token
	c.tokenExpiry = time.Now().Add(tokenLifetime)
	return c.token, nil
}

// ValidatePaymentRequest reports every violation at once so the checkout
// form can show them all.
func ValidatePaymentRequest(req *PaymentRequest) error {
	v := apperr.NewValidation()
	if strings.TrimSpace(req.OrderID) == "" {
		v.Add("order_id", "order ID is required")
	}
	if req.Amount <= 0 {
		v.Add("amount", "amount must be greater than 0")
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		v.Add("customer_name", "customer name is required")
	}
	if _, err := mail.ParseAddress(req.CustomerEmail); err != nil {
		v.Add("customer_email", "valid customer email is required")
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		v.Add("customer_phone", "customer phone is required")
	}
	return v.OrNil()
}

// InitiatePayment submits an order request and returns the hosted payment
// page URL plus the provider's tracking id for the attempt.
func (c *Client) InitiatePayment(req *PaymentRequest) (*OrderResponse, error) {
	if err := ValidatePaymentRequest(req); err != nil {
		return nil, err
	}

	first, last := splitName(req.CustomerName)
	payload := submitOrderRequest{
		ID:             req.OrderID,
		Currency:       req.Currency,
		Amount:         req.Amount,
		Description:    req.Description,
		CallbackURL:    c.cfg.CallbackURL,
		NotificationID: c.cfg.IPNID,
		BillingAddress: billingAddress{
			EmailAddress: req.CustomerEmail,
			PhoneNumber:  req.CustomerPhone,
			CountryCode:  "UG",
			FirstName:    first,
			LastName:     last,
			Line1:        "Kampala, Uganda",
			City:         "Kampala",
			State:        "Central",
			PostalCode:   "00000",
			ZipCode:      "00000",
		},
	}

	var out OrderResponse
	if err := c.post("/api/Transactions/SubmitOrderRequest", payload, &out); err != nil {
		return nil, err
	}
	if out.Error != nil {
		return nil, &apperr.GatewayError{Body: out.Error.Message}
	}
	if out.RedirectURL == "" || out.OrderTrackingID == "" {
		return nil, &apperr.GatewayError{Body: "incomplete order response from provider"}
	}
	return &out, nil
}

// CheckPaymentStatus fetches the current state of one payment attempt.
func (c *Client) CheckPaymentStatus(trackingID string) (*TransactionStatus, error) {
	token, err := c.GetAccessToken()
	if err != nil {
		return nil, err
	}

	endpoint := c.cfg.BaseURL + "/api/Transactions/GetTransactionStatus?orderTrackingId=" + url.QueryEscape(trackingID)
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, &apperr.NetworkError{Op: "pesapal status check", Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return nil, &apperr.GatewayError{StatusCode: res.StatusCode, Body: string(body)}
	}

	var ts TransactionStatus
	if err := json.NewDecoder(res.Body).Decode(&ts); err != nil {
		return nil, fmt.Errorf("decode transaction status: %w", err)
	}
	if ts.Error != nil && ts.Error.Message != "" {
		return nil, &apperr.GatewayError{Body: ts.Error.Message}
	}
	return &ts, nil
}

func (c *Client) post(path string, payload any, out any) error {
	token, err := c.GetAccessToken()
	if err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := c.http.Do(req)
	if err != nil {
		return &apperr.NetworkError{Op: "pesapal " + path, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(res.Body)
		return &apperr.GatewayError{StatusCode: res.StatusCode, Body: string(raw)}
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// splitName turns a full name into the first/last pair the billing address
// wants. A single-word name becomes the first name with an empty last name.
func splitName(full string) (string, string) {
	parts := strings.Fields(strings.TrimSpace(full))
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
