package dto

import (
	"time"

	"github.com/devray254/bookable-festivals-sub000/internal/domain"
)

type EventResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Venue          string `json:"venue"`
	Price          int64  `json:"price"`
	CPDPoints      int    `json:"cpd_points"`
	TargetAudience string `json:"target_audience"`
	EventDate      string `json:"event_date"`
	CreatedAt      string `json:"created_at"`
}

type UserResponse struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type BookingResponse struct {
	ID                 string `json:"id"`
	EventID            string `json:"event_id"`
	UserID             string `json:"user_id"`
	Tickets            int    `json:"tickets"`
	Amount             int64  `json:"amount"`
	Status             string `json:"status"`
	CorrelationID      string `json:"correlation_id,omitempty"`
	AttendanceStatus   string `json:"attendance_status"`
	CertificateEnabled bool   `json:"certificate_enabled"`
	CreatedAt          string `json:"created_at"`
}

type PollResponse struct {
	CorrelationID     string `json:"correlation_id"`
	Status            string `json:"status"`
	ReceiptNumber     string `json:"receipt_number,omitempty"`
	ResultDescription string `json:"result_description,omitempty"`
}

type IssueResponse struct {
	CertificateID string `json:"certificate_id"`
	AlreadyIssued bool   `json:"already_issued"`
}

type CertificateResponse struct {
	ID         string `json:"id"`
	EventID    string `json:"event_id"`
	UserID     string `json:"user_id"`
	IssuedAt   string `json:"issued_at"`
	IssuedBy   string `json:"issued_by"`
	SentEmail  bool   `json:"sent_email"`
	Downloaded bool   `json:"downloaded"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

// CallbackAck is the acknowledgement shape the provider expects back
// from a confirmation delivery.
type CallbackAck struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		Venue:          e.Venue,
		Price:          e.Price,
		CPDPoints:      e.CPDPoints,
		TargetAudience: e.TargetAudience,
		EventDate:      e.EventDate.Format(time.RFC3339),
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		FullName:       u.FullName,
		Email:          u.Email,
		Phone:          u.Phone,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:                 b.ID,
		EventID:            b.EventID,
		UserID:             b.UserID,
		Tickets:            b.Tickets,
		Amount:             b.Amount,
		Status:             string(b.Status),
		CorrelationID:      b.CorrelationID,
		AttendanceStatus:   string(b.AttendanceStatus),
		CertificateEnabled: b.CertificateEnabled,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
	}
}

func ToPollResponse(correlationID string, status *domain.PushStatus) PollResponse {
	resp := PollResponse{CorrelationID: correlationID}
	switch {
	case status.Pending:
		resp.Status = "pending"
	case status.Outcome.Success:
		resp.Status = "completed"
		resp.ReceiptNumber = status.Outcome.ReceiptNumber
	default:
		resp.Status = "failed"
		resp.ResultDescription = status.Outcome.ResultDescription
	}
	return resp
}

func ToCertificateResponse(c *domain.Certificate) CertificateResponse {
	return CertificateResponse{
		ID:         c.ID,
		EventID:    c.EventID,
		UserID:     c.UserID,
		IssuedAt:   c.IssuedAt.Format(time.RFC3339),
		IssuedBy:   c.IssuedBy,
		SentEmail:  c.SentEmail,
		Downloaded: c.Downloaded,
	}
}
