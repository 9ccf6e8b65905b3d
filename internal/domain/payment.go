package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type Payment struct {
	ID                string        `json:"id"`
	BookingID         string        `json:"booking_id"`
	Amount            int64         `json:"amount"`
	Method            string        `json:"method"`
	Status            PaymentStatus `json:"status"`
	CorrelationID     string        `json:"correlation_id"`
	MerchantRequestID string        `json:"merchant_request_id"`
	ReceiptNumber     string        `json:"receipt_number"`
	ResultDescription string        `json:"result_description"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// ConfirmationOutcome is the terminal result the provider reports for a
// push request, whether it arrives via callback or via a status poll.
type ConfirmationOutcome struct {
	Success           bool
	ReceiptNumber     string
	ResultCode        int
	ResultDescription string
}

// PushResult identifies an accepted push-payment request. The
// CheckoutRequestID is the correlation id every later confirmation
// carries.
type PushResult struct {
	CheckoutRequestID string
	MerchantRequestID string
}

// PushStatus is a polled view of a push request: still pending, or
// finished with an outcome.
type PushStatus struct {
	Pending bool
	Outcome ConfirmationOutcome
}
