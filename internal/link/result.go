package link

// Result statuses and types returned to API callers.
const (
	StatusSuccess = "success"
	StatusError   = "error"

	TypeCreated  = "created"
	TypeVerified = "verified"

	PaymentApproved = "APPROVED"
	PaymentPending  = "PENDING"
)

// Result is the discriminated reply produced for every inbound call. Business
// failures are reported through Status, never through the HTTP status code.
type Result struct {
	Status        string `json:"status"`
	Type          string `json:"type,omitempty"`
	Name          string `json:"name,omitempty"`
	ShortURL      string `json:"shortUrl,omitempty"`
	ID            string `json:"id,omitempty"`
	Price         string `json:"price,omitempty"`
	PaymentStatus string `json:"paymentStatus,omitempty"`
	PaidAt        string `json:"paidAt,omitempty"`
	ProductID     string `json:"productId,omitempty"`
	Message       string `json:"message"`
}
