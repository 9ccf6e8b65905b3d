package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devray254/bookable-festivals-sub000/internal/domain"
	"github.com/devray254/bookable-festivals-sub000/internal/handler/dto"
	hmocks "github.com/devray254/bookable-festivals-sub000/internal/handler/mocks"
	"github.com/devray254/bookable-festivals-sub000/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type handlerMocks struct {
	eventSvc *hmocks.MockEventSvc
	userSvc  *hmocks.MockUserSvc
	payment  *hmocks.MockPaymentSvc
	booking  *hmocks.MockBookingSvc
	cert     *hmocks.MockCertificateSvc
}

func setupRouter(t *testing.T) (handlerMocks, http.Handler) {
	t.Helper()
	m := handlerMocks{
		eventSvc: hmocks.NewMockEventSvc(t),
		userSvc:  hmocks.NewMockUserSvc(t),
		payment:  hmocks.NewMockPaymentSvc(t),
		booking:  hmocks.NewMockBookingSvc(t),
		cert:     hmocks.NewMockCertificateSvc(t),
	}

	h := NewHandler(m.eventSvc, m.userSvc, m.payment, m.booking, m.cert)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.POST("/payments/initiate", h.InitiatePayment)
		api.POST("/payments/callback", h.PaymentCallback)
		api.POST("/payments/:correlationId/poll", h.PollPayment)
		api.PUT("/bookings/:id/attendance", h.SetAttendance)
		api.POST("/events/:id/certificates", h.GenerateCertificate)
		api.POST("/events/:id/certificates/bulk", h.BulkGenerateCertificates)
		api.GET("/events/:id/certificates", h.ListEventCertificates)
		api.GET("/users/:id/certificates", h.ListUserCertificates)
		api.POST("/certificates/:id/send", h.SendCertificate)
		api.POST("/certificates/:id/downloaded", h.MarkCertificateDownloaded)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

// --- Payments ---

func TestHandler_InitiatePayment_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	booking := &domain.Booking{
		ID: uuid.New().String(), EventID: eventID, UserID: userID,
		Tickets: 1, Amount: 1500,
		Status:        domain.BookingStatusPending,
		CorrelationID: "ws_CO_1",
		CreatedAt:     time.Now(),
	}

	m.payment.EXPECT().
		Initiate(mock.Anything, service.InitiateInput{EventID: eventID, UserID: userID, Phone: "0712345678", Tickets: 1}).
		Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/payments/initiate", dto.InitiatePaymentRequest{
		EventID: eventID, UserID: userID, Phone: "0712345678", Tickets: 1,
	}, nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ws_CO_1", resp.CorrelationID)
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_InitiatePayment_GatewayRejection(t *testing.T) {
	m, r := setupRouter(t)

	m.payment.EXPECT().Initiate(mock.Anything, mock.Anything).
		Return(nil, &domain.GatewayError{Code: "1032", Description: "Request cancelled by user"})

	w := doJSON(t, r, http.MethodPost, "/api/payments/initiate", dto.InitiatePaymentRequest{
		EventID: uuid.New().String(), UserID: uuid.New().String(), Phone: "0712345678", Tickets: 1,
	}, nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Request cancelled by user", resp.Error)
}

func TestHandler_InitiatePayment_ProviderDown(t *testing.T) {
	m, r := setupRouter(t)

	m.payment.EXPECT().Initiate(mock.Anything, mock.Anything).Return(nil, domain.ErrTransient)

	w := doJSON(t, r, http.MethodPost, "/api/payments/initiate", dto.InitiatePaymentRequest{
		EventID: uuid.New().String(), UserID: uuid.New().String(), Phone: "0712345678", Tickets: 1,
	}, nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandler_InitiatePayment_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/payments/initiate", map[string]any{
		"event_id": "not-a-uuid", "user_id": uuid.New().String(), "phone": "0712345678", "tickets": 1,
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PaymentCallback_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.payment.EXPECT().
		Confirm(mock.Anything, "ws_CO_1", domain.ConfirmationOutcome{
			Success:           true,
			ReceiptNumber:     "QK12XYZ",
			ResultCode:        0,
			ResultDescription: "The service request is processed successfully.",
		}).
		Return(nil)

	body := []byte(`{
		"Body": {
			"stkCallback": {
				"MerchantRequestID": "mr_1",
				"CheckoutRequestID": "ws_CO_1",
				"ResultCode": 0,
				"ResultDesc": "The service request is processed successfully.",
				"CallbackMetadata": {
					"Item": [
						{"Name": "Amount", "Value": 1500.0},
						{"Name": "MpesaReceiptNumber", "Value": "QK12XYZ"},
						{"Name": "PhoneNumber", "Value": 254712345678}
					]
				}
			}
		}
	}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/callback", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var ack dto.CallbackAck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ack))
	assert.Zero(t, ack.ResultCode)
}

func TestHandler_PaymentCallback_AcksUnknownCorrelation(t *testing.T) {
	m, r := setupRouter(t)

	m.payment.EXPECT().Confirm(mock.Anything, "ws_CO_unknown", mock.Anything).
		Return(domain.ErrUnknownCorrelation)

	body := []byte(`{"Body":{"stkCallback":{"CheckoutRequestID":"ws_CO_unknown","ResultCode":1032,"ResultDesc":"Request cancelled by user"}}}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/callback", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// The provider retries non-200 answers forever; unknown ids are
	// acknowledged and only logged.
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_PollPayment(t *testing.T) {
	m, r := setupRouter(t)

	m.payment.EXPECT().Poll(mock.Anything, "ws_CO_1").
		Return(&domain.PushStatus{Outcome: domain.ConfirmationOutcome{Success: true, ReceiptNumber: "QK12XYZ"}}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/payments/ws_CO_1/poll", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PollResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, "QK12XYZ", resp.ReceiptNumber)
}

func TestHandler_PollPayment_Unknown(t *testing.T) {
	m, r := setupRouter(t)

	m.payment.EXPECT().Poll(mock.Anything, "ws_CO_unknown").Return(nil, domain.ErrUnknownCorrelation)

	w := doJSON(t, r, http.MethodPost, "/api/payments/ws_CO_unknown/poll", nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Bookings ---

func TestHandler_SetAttendance(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	m.booking.EXPECT().
		SetAttendance(mock.Anything, bookingID, domain.AttendanceAttended, true, "admin@example.com").
		Return(nil)

	w := doJSON(t, r, http.MethodPut, "/api/bookings/"+bookingID+"/attendance",
		dto.SetAttendanceRequest{AttendanceStatus: "attended", CertificateEnabled: true},
		map[string]string{"X-Actor": "admin@example.com"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SetAttendance_RequiresActorHeader(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/bookings/"+uuid.New().String()+"/attendance",
		dto.SetAttendanceRequest{AttendanceStatus: "attended"}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Certificates ---

func TestHandler_GenerateCertificate_Created(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()

	m.cert.EXPECT().Generate(mock.Anything, eventID, userID, "admin@example.com").
		Return(&domain.IssueResult{CertificateID: "CERT-1"}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/certificates",
		dto.GenerateCertificateRequest{UserID: userID},
		map[string]string{"X-Actor": "admin@example.com"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.IssueResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CERT-1", resp.CertificateID)
	assert.False(t, resp.AlreadyIssued)
}

func TestHandler_GenerateCertificate_AlreadyIssued(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()

	m.cert.EXPECT().Generate(mock.Anything, eventID, userID, "admin@example.com").
		Return(&domain.IssueResult{CertificateID: "CERT-1", AlreadyIssued: true}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/certificates",
		dto.GenerateCertificateRequest{UserID: userID},
		map[string]string{"X-Actor": "admin@example.com"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GenerateCertificate_DenialCarriesReason(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		reason string
	}{
		{"not booked", domain.ErrNotBooked, "not_booked"},
		{"not paid", domain.ErrNotPaid, "not_paid"},
		{"not eligible", domain.ErrNotEligibleAttendance, "not_eligible_attendance"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, r := setupRouter(t)

			eventID := uuid.New().String()
			userID := uuid.New().String()
			m.cert.EXPECT().Generate(mock.Anything, eventID, userID, "admin@example.com").Return(nil, tc.err)

			w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/certificates",
				dto.GenerateCertificateRequest{UserID: userID},
				map[string]string{"X-Actor": "admin@example.com"})

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.reason, resp.Reason)
		})
	}
}

func TestHandler_BulkGenerateCertificates(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	result := &domain.BulkResult{
		Generated: 2, AlreadyIssued: 1, TotalEligible: 3,
		Items: []domain.BulkItem{
			{UserID: "u1", CertificateID: "CERT-1", Status: domain.BulkItemIssued},
			{UserID: "u2", CertificateID: "CERT-2", Status: domain.BulkItemIssued},
			{UserID: "u3", CertificateID: "CERT-OLD", Status: domain.BulkItemAlreadyIssued},
		},
	}

	m.cert.EXPECT().BulkGenerate(mock.Anything, eventID, "admin@example.com").Return(result, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/certificates/bulk", nil,
		map[string]string{"X-Actor": "admin@example.com"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp domain.BulkResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Generated)
	assert.Len(t, resp.Items, 3)
}

func TestHandler_SendCertificate(t *testing.T) {
	m, r := setupRouter(t)

	m.cert.EXPECT().SendCertificate(mock.Anything, "CERT-1").Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/certificates/CERT-1/send", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SendCertificate_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.cert.EXPECT().SendCertificate(mock.Anything, "CERT-missing").Return(domain.ErrCertificateNotFound)

	w := doJSON(t, r, http.MethodPost, "/api/certificates/CERT-missing/send", nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_MarkCertificateDownloaded(t *testing.T) {
	m, r := setupRouter(t)

	m.cert.EXPECT().MarkDownloaded(mock.Anything, "CERT-1").Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/certificates/CERT-1/downloaded", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Events / users ---

func TestHandler_CreateEvent(t *testing.T) {
	m, r := setupRouter(t)

	date := time.Now().Add(30 * 24 * time.Hour)
	event := &domain.Event{
		ID: uuid.New().String(), Title: "Annual Summit", Price: 1500,
		EventDate: date, CreatedAt: time.Now(),
	}

	m.eventSvc.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Title: "Annual Summit", Price: 1500, EventDate: date.Format(time.RFC3339),
	}, nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Annual Summit", resp.Title)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Title: "X", EventDate: "not-a-date",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateUser(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{
		ID: uuid.New().String(), FullName: "Alice Wanjiku",
		Email: "alice@example.com", Phone: "254712345678", CreatedAt: time.Now(),
	}

	m.userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.CreateUserRequest{
		FullName: "Alice Wanjiku", Email: "alice@example.com", Phone: "0712345678",
	}, nil)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateUser_DuplicateEmail(t *testing.T) {
	m, r := setupRouter(t)

	m.userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.CreateUserRequest{
		FullName: "Alice Wanjiku", Email: "alice@example.com", Phone: "0712345678",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListUserCertificates(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	certs := []*domain.Certificate{
		{ID: "CERT-1", EventID: uuid.New().String(), UserID: userID, IssuedAt: time.Now()},
	}

	m.cert.EXPECT().ListByUser(mock.Anything, userID).Return(certs, nil)

	w := doJSON(t, r, http.MethodGet, "/api/users/"+userID+"/certificates", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CertificateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "CERT-1", resp[0].ID)
}
