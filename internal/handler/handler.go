package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/devray254/bookable-festivals-sub000/internal/domain"
	"github.com/devray254/bookable-festivals-sub000/internal/handler/dto"
	"github.com/devray254/bookable-festivals-sub000/internal/service"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type PaymentSvc interface {
	Initiate(ctx context.Context, in service.InitiateInput) (*domain.Booking, error)
	Confirm(ctx context.Context, correlationID string, outcome domain.ConfirmationOutcome) error
	Poll(ctx context.Context, correlationID string) (*domain.PushStatus, error)
}

type BookingSvc interface {
	SetAttendance(ctx context.Context, bookingID string, status domain.AttendanceStatus, certificateEnabled bool, actor string) error
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}

type CertificateSvc interface {
	Generate(ctx context.Context, eventID, userID, actor string) (*domain.IssueResult, error)
	BulkGenerate(ctx context.Context, eventID, actor string) (*domain.BulkResult, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Certificate, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Certificate, error)
	SendCertificate(ctx context.Context, certificateID string) error
	BulkSend(ctx context.Context, eventID string) (*domain.BulkSendResult, error)
	MarkDownloaded(ctx context.Context, certificateID string) error
}

type Handler struct {
	eventService       EventSvc
	userService        UserSvc
	paymentService     PaymentSvc
	bookingService     BookingSvc
	certificateService CertificateSvc
}

func NewHandler(
	eventService EventSvc,
	userService UserSvc,
	paymentService PaymentSvc,
	bookingService BookingSvc,
	certificateService CertificateSvc,
) *Handler {
	return &Handler{
		eventService:       eventService,
		userService:        userService,
		paymentService:     paymentService,
		bookingService:     bookingService,
		certificateService: certificateService,
	}
}

const actorHeader = "X-Actor"

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid event_date format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		Title:          req.Title,
		Description:    req.Description,
		Venue:          req.Venue,
		Price:          req.Price,
		CPDPoints:      req.CPDPoints,
		TargetAudience: req.TargetAudience,
		EventDate:      eventDate,
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

// Payments

func (h *Handler) InitiatePayment(c *ginext.Context) {
	var req dto.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.paymentService.Initiate(c.Request.Context(), service.InitiateInput{
		EventID: req.EventID,
		UserID:  req.UserID,
		Phone:   req.Phone,
		Tickets: req.Tickets,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

// PaymentCallback ingests the provider's confirmation delivery. The
// provider retries anything that is not a 200, so every outcome here,
// including an unknown correlation id, is acknowledged; Confirm keeps
// the real state transition idempotent.
func (h *Handler) PaymentCallback(c *ginext.Context) {
	var req dto.CallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, dto.CallbackAck{ResultCode: 0, ResultDesc: "Accepted"})
		return
	}

	cb := req.Body.StkCallback
	outcome := domain.ConfirmationOutcome{
		Success:           cb.ResultCode == 0,
		ReceiptNumber:     req.ReceiptValue(),
		ResultCode:        cb.ResultCode,
		ResultDescription: cb.ResultDesc,
	}

	if err := h.paymentService.Confirm(c.Request.Context(), cb.CheckoutRequestID, outcome); err != nil {
		c.Set("error", err.Error())
	}

	c.JSON(http.StatusOK, dto.CallbackAck{ResultCode: 0, ResultDesc: "Accepted"})
}

func (h *Handler) PollPayment(c *ginext.Context) {
	correlationID := c.Param("correlationId")
	if correlationID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing correlation id"})
		return
	}

	status, err := h.paymentService.Poll(c.Request.Context(), correlationID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPollResponse(correlationID, status))
}

// Bookings

func (h *Handler) SetAttendance(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	actor := c.GetHeader(actorHeader)
	if actor == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing " + actorHeader + " header"})
		return
	}

	var req dto.SetAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	err := h.bookingService.SetAttendance(c.Request.Context(), bookingID,
		domain.AttendanceStatus(req.AttendanceStatus), req.CertificateEnabled, actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "updated"})
}

func (h *Handler) ListEventBookings(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	bookings, err := h.bookingService.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListUserBookings(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Certificates

func (h *Handler) GenerateCertificate(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	actor := c.GetHeader(actorHeader)
	if actor == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing " + actorHeader + " header"})
		return
	}

	var req dto.GenerateCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.certificateService.Generate(c.Request.Context(), eventID, req.UserID, actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := http.StatusCreated
	if res.AlreadyIssued {
		status = http.StatusOK
	}
	c.JSON(status, dto.IssueResponse{CertificateID: res.CertificateID, AlreadyIssued: res.AlreadyIssued})
}

func (h *Handler) BulkGenerateCertificates(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	actor := c.GetHeader(actorHeader)
	if actor == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing " + actorHeader + " header"})
		return
	}

	result, err := h.certificateService.BulkGenerate(c.Request.Context(), eventID, actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) ListEventCertificates(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	certs, err := h.certificateService.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CertificateResponse, 0, len(certs))
	for _, cert := range certs {
		resp = append(resp, dto.ToCertificateResponse(cert))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListUserCertificates(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	certs, err := h.certificateService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CertificateResponse, 0, len(certs))
	for _, cert := range certs {
		resp = append(resp, dto.ToCertificateResponse(cert))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) SendCertificate(c *ginext.Context) {
	if err := h.certificateService.SendCertificate(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "sent"})
}

func (h *Handler) BulkSendCertificates(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	result, err := h.certificateService.BulkSend(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) MarkCertificateDownloaded(c *ginext.Context) {
	if err := h.certificateService.MarkDownloaded(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "downloaded"})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var gwErr *domain.GatewayError
	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrCertificateNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrUnknownCorrelation):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotBooked),
		errors.Is(err, domain.ErrNotPaid),
		errors.Is(err, domain.ErrNotEligibleAttendance):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error:  err.Error(),
			Reason: domain.DenialReason(err),
		})

	case errors.Is(err, domain.ErrAlreadyBooked):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.As(err, &gwErr):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: gwErr.Description})

	case errors.Is(err, domain.ErrTransient):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "payment provider unavailable"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
