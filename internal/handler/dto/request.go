package dto

type CreateEventRequest struct {
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description"`
	Venue          string `json:"venue"`
	Price          int64  `json:"price" binding:"gte=0"`
	CPDPoints      int    `json:"cpd_points" binding:"gte=0"`
	TargetAudience string `json:"target_audience"`
	EventDate      string `json:"event_date" binding:"required"`
}

type CreateUserRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type InitiatePaymentRequest struct {
	EventID string `json:"event_id" binding:"required,uuid"`
	UserID  string `json:"user_id" binding:"required,uuid"`
	Phone   string `json:"phone" binding:"required"`
	Tickets int    `json:"tickets" binding:"required,gt=0"`
}

type SetAttendanceRequest struct {
	AttendanceStatus   string `json:"attendance_status" binding:"required"`
	CertificateEnabled bool   `json:"certificate_enabled"`
}

type GenerateCertificateRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

// CallbackRequest mirrors the provider's confirmation body. Metadata
// items arrive as loosely typed name/value pairs; ReceiptValue digs the
// receipt number out of them.
type CallbackRequest struct {
	Body struct {
		StkCallback struct {
			MerchantRequestID string `json:"MerchantRequestID"`
			CheckoutRequestID string `json:"CheckoutRequestID"`
			ResultCode        int    `json:"ResultCode"`
			ResultDesc        string `json:"ResultDesc"`
			CallbackMetadata  struct {
				Item []CallbackItem `json:"Item"`
			} `json:"CallbackMetadata"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

type CallbackItem struct {
	Name  string `json:"Name"`
	Value any    `json:"Value"`
}

func (r *CallbackRequest) ReceiptValue() string {
	for _, item := range r.Body.StkCallback.CallbackMetadata.Item {
		if item.Name != "MpesaReceiptNumber" {
			continue
		}
		if s, ok := item.Value.(string); ok {
			return s
		}
	}
	return ""
}
