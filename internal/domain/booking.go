package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type AttendanceStatus string

const (
	AttendanceUnverified AttendanceStatus = "unverified"
	AttendanceAttended   AttendanceStatus = "attended"
	AttendancePartial    AttendanceStatus = "partial"
	AttendanceAbsent     AttendanceStatus = "absent"
)

var AttendanceStatuses = []AttendanceStatus{
	AttendanceUnverified, AttendanceAttended, AttendancePartial, AttendanceAbsent,
}

var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

type Booking struct {
	ID                 string           `json:"id"`
	EventID            string           `json:"event_id"`
	UserID             string           `json:"user_id"`
	Phone              string           `json:"phone"`
	Tickets            int              `json:"tickets"`
	Amount             int64            `json:"amount"`
	Status             BookingStatus    `json:"status"`
	CorrelationID      string           `json:"correlation_id"`
	AttendanceStatus   AttendanceStatus `json:"attendance_status"`
	CertificateEnabled bool             `json:"certificate_enabled"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// EligibleForCertificate applies the attendance gate. The manual
// certificate_enabled override always wins, even over an absent
// classification; attendance alone qualifies only when attended.
func (b *Booking) EligibleForCertificate() bool {
	if b.CertificateEnabled {
		return true
	}
	return b.AttendanceStatus == AttendanceAttended
}
