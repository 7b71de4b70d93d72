package pesapal

// Status codes reported by GetTransactionStatus. Anything else is still
// in flight and callers should poll again.
const (
	StatusCodeCompleted = 1
	StatusCodeFailed    = 2
)

// PaymentRequest is what checkout hands to the gateway for one attempt.
type PaymentRequest struct {
	OrderID       string
	Amount        int64
	Currency      string
	Description   string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

// ProviderError is the error object Pesapal embeds in otherwise-200 bodies.
type ProviderError struct {
	Type    string `json:"error_type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type tokenResponse struct {
	Token  string         `json:"token"`
	Expiry string         `json:"expiryDate"`
	Error  *ProviderError `json:"error"`
}

type billingAddress struct {
	EmailAddress string `json:"email_address"`
	PhoneNumber  string `json:"phone_number"`
	CountryCode  string `json:"country_code"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Line1        string `json:"line_1"`
	Line2        string `json:"line_2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	ZipCode      string `json:"zip_code"`
}

type submitOrderRequest struct {
	ID             string         `json:"id"`
	Currency       string         `json:"currency"`
	Amount         int64          `json:"amount"`
	Description    string         `json:"description"`
	CallbackURL    string         `json:"callback_url"`
	NotificationID string         `json:"notification_id"`
	BillingAddress billingAddress `json:"billing_address"`
}

// OrderResponse is the gateway's answer to SubmitOrderRequest.
type OrderResponse struct {
	OrderTrackingID   string         `json:"order_tracking_id"`
	MerchantReference string         `json:"merchant_reference"`
	RedirectURL       string         `json:"redirect_url"`
	Status            string         `json:"status"`
	Error             *ProviderError `json:"error"`
}

// TransactionStatus is the gateway's answer to GetTransactionStatus.
type TransactionStatus struct {
	PaymentMethod            string         `json:"payment_method"`
	Amount                   int64          `json:"amount"`
	CreatedDate              string         `json:"created_date"`
	ConfirmationCode         string         `json:"confirmation_code"`
	PaymentStatusDescription string         `json:"payment_status_description"`
	Description              string         `json:"description"`
	Message                  string         `json:"message"`
	PaymentAccount           string         `json:"payment_account"`
	CallBackURL              string         `json:"call_back_url"`
	StatusCode               int            `json:"status_code"`
	MerchantReference        string         `json:"merchant_reference"`
	Currency                 string         `json:"currency"`
	Error                    *ProviderError `json:"error"`
}

// Completed reports a successful payment.
func (t *TransactionStatus) Completed() bool { return t.StatusCode == StatusCodeCompleted }

// Failed reports a definitively failed payment.
func (t *TransactionStatus) Failed() bool { return t.StatusCode == StatusCodeFailed }
