package domain

import "time"

type Certificate struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	UserID     string    `json:"user_id"`
	IssuedAt   time.Time `json:"issued_at"`
	IssuedBy   string    `json:"issued_by"`
	SentEmail  bool      `json:"sent_email"`
	Downloaded bool      `json:"downloaded"`
}

// IssueResult is the outcome of a single issuance attempt. A pair that
// already holds a certificate is reported as success with the existing
// id, never as an error.
type IssueResult struct {
	CertificateID string `json:"certificate_id"`
	AlreadyIssued bool   `json:"already_issued"`
}

type BulkItemStatus string

const (
	BulkItemIssued        BulkItemStatus = "issued"
	BulkItemAlreadyIssued BulkItemStatus = "already_issued"
	BulkItemFailed        BulkItemStatus = "failed"
)

type BulkItem struct {
	UserID        string         `json:"user_id"`
	CertificateID string         `json:"certificate_id,omitempty"`
	Status        BulkItemStatus `json:"status"`
	Reason        string         `json:"reason,omitempty"`
}

type BulkResult struct {
	Generated     int        `json:"generated"`
	AlreadyIssued int        `json:"already_issued"`
	Failed        int        `json:"failed"`
	TotalEligible int        `json:"total_eligible"`
	Items         []BulkItem `json:"items"`
}

type SendItem struct {
	CertificateID string `json:"certificate_id"`
	Email         string `json:"email,omitempty"`
	Sent          bool   `json:"sent"`
	Reason        string `json:"reason,omitempty"`
}

type BulkSendResult struct {
	Sent   int        `json:"sent"`
	Failed int        `json:"failed"`
	Items  []SendItem `json:"items"`
}

// CertificateContent is everything the rendering collaborator needs to
// lay out a certificate document.
type CertificateContent struct {
	CertificateID   string
	RecipientName   string
	EventTitle      string
	EventDateLabel  string
	IssuedDateLabel string
	CPDPoints       int
	TargetAudience  string
}

// Artifact is a rendered document handed to the notification
// dispatcher as an attachment.
type Artifact struct {
	Name        string
	ContentType string
	Data        []byte
}
