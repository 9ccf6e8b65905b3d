package daraja

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/devray254/bookable-festivals-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// tokenExpiryMargin is subtracted from the provider-reported token
// lifetime so a token is never used right at its expiry edge.
const tokenExpiryMargin = 30 * time.Second

type Config struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	Shortcode      string
	Passkey        string
	CallbackURL    string
	Timeout        time.Duration
}

// Client talks to the Daraja STK push API: OAuth client-credentials
// token, push request, and push status query. All calls run under the
// configured bounded timeout.
type Client struct {
	cfg    Config
	client *http.Client
	log    logger.Logger

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func New(cfg Config, log logger.Logger) (*Client, error) {
	if cfg.ConsumerKey == "" || cfg.ConsumerSecret == "" || cfg.Shortcode == "" || cfg.Passkey == "" {
		return nil, fmt.Errorf("%w: daraja consumer key, secret, shortcode and passkey are required", domain.ErrConfiguration)
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: daraja base url is required", domain.ErrConfiguration)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log,
	}, nil
}

type stkPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            string `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type stkPushResponse struct {
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	MerchantRequestID   string `json:"MerchantRequestID"`
	ErrorCode           string `json:"errorCode"`
	ErrorMessage        string `json:"errorMessage"`
}

// STKPush submits a push-payment request prompting the payer's device.
// The phone must already be in canonical 254... form. A non-zero
// provider response code becomes a *domain.GatewayError carrying the
// provider's description verbatim; network failure or timeout becomes
// ErrTransient, retriable only via a brand-new push.
func (c *Client) STKPush(ctx context.Context, phone string, amount int64, reference, description string) (*domain.PushResult, error) {
	ts := time.Now().Format("20060102150405")
	req := stkPushRequest{
		BusinessShortCode: c.cfg.Shortcode,
		Password:          c.password(ts),
		Timestamp:         ts,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            strconv.FormatInt(amount, 10),
		PartyA:            phone,
		PartyB:            c.cfg.Shortcode,
		PhoneNumber:       phone,
		CallBackURL:       c.cfg.CallbackURL,
		AccountReference:  reference,
		TransactionDesc:   description,
	}

	var resp stkPushResponse
	if err := c.post(ctx, "/mpesa/stkpush/v1/processrequest", req, &resp); err != nil {
		return nil, err
	}

	if resp.ResponseCode != "0" {
		code := resp.ResponseCode
		desc := resp.ResponseDescription
		if code == "" {
			code = resp.ErrorCode
			desc = resp.ErrorMessage
		}
		return nil, &domain.GatewayError{Code: code, Description: desc}
	}

	return &domain.PushResult{
		CheckoutRequestID: resp.CheckoutRequestID,
		MerchantRequestID: resp.MerchantRequestID,
	}, nil
}

type stkQueryRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	CheckoutRequestID string `json:"CheckoutRequestID"`
}

type stkQueryResponse struct {
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	ResultCode          string `json:"ResultCode"`
	ResultDesc          string `json:"ResultDesc"`
	ErrorCode           string `json:"errorCode"`
	ErrorMessage        string `json:"errorMessage"`
}

// errorCodeStillProcessing is what the query endpoint reports while
// the payer has not yet acted on the push prompt.
const errorCodeStillProcessing = "500.001.1001"

// QueryStatus polls the provider for the terminal outcome of a push
// request. A request the payer has not yet acted on is reported as
// pending, not as an error.
func (c *Client) QueryStatus(ctx context.Context, checkoutRequestID string) (*domain.PushStatus, error) {
	ts := time.Now().Format("20060102150405")
	req := stkQueryRequest{
		BusinessShortCode: c.cfg.Shortcode,
		Password:          c.password(ts),
		Timestamp:         ts,
		CheckoutRequestID: checkoutRequestID,
	}

	var resp stkQueryResponse
	if err := c.post(ctx, "/mpesa/stkpushquery/v1/query", req, &resp); err != nil {
		var gwErr *domain.GatewayError
		if errors.As(err, &gwErr) && gwErr.Code == errorCodeStillProcessing {
			return &domain.PushStatus{Pending: true}, nil
		}
		return nil, err
	}

	if resp.ResponseCode != "0" {
		return nil, &domain.GatewayError{Code: resp.ResponseCode, Description: resp.ResponseDescription}
	}

	code, err := strconv.Atoi(resp.ResultCode)
	if err != nil {
		return nil, fmt.Errorf("parse result code %q: %w", resp.ResultCode, err)
	}

	return &domain.PushStatus{
		Outcome: domain.ConfirmationOutcome{
			Success:           code == 0,
			ResultCode:        code,
			ResultDescription: resp.ResultDesc,
		},
	}, nil
}

// password derives the time-windowed API password from the shortcode,
// passkey and timestamp, per the provider's wire contract.
func (c *Client) password(timestamp string) string {
	return base64.StdEncoding.EncodeToString([]byte(c.cfg.Shortcode + c.cfg.Passkey + timestamp))
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	status, err := c.doPost(ctx, path, token, body, out)
	if err != nil {
		return err
	}

	// Expired or revoked token: refresh once and retry.
	if status == http.StatusUnauthorized {
		c.invalidateToken()
		token, err = c.accessToken(ctx)
		if err != nil {
			return err
		}
		status, err = c.doPost(ctx, path, token, body, out)
		if err != nil {
			return err
		}
	}

	if status == http.StatusUnauthorized {
		return fmt.Errorf("%w: gateway rejected application credentials", domain.ErrConfiguration)
	}

	return nil
}

func (c *Client) doPost(ctx context.Context, path, token string, body, out any) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrTransient, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return resp.StatusCode, nil
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}

	// Provider signals request-level rejections with non-2xx plus an
	// error body; surface them as explicit gateway errors.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, c.errorFromBody(out, resp.StatusCode)
	}

	return resp.StatusCode, nil
}

func (c *Client) errorFromBody(out any, status int) error {
	switch v := out.(type) {
	case *stkPushResponse:
		if v.ErrorCode != "" {
			return &domain.GatewayError{Code: v.ErrorCode, Description: v.ErrorMessage}
		}
	case *stkQueryResponse:
		if v.ErrorCode != "" {
			return &domain.GatewayError{Code: v.ErrorCode, Description: v.ErrorMessage}
		}
	}
	return fmt.Errorf("%w: gateway returned status %d", domain.ErrTransient, status)
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

// accessToken returns a cached credential while it is still comfortably
// inside its lifetime, otherwise fetches a fresh one. Credentials are
// short-lived on the provider side and are never cached indefinitely.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.BaseURL+"/oauth/v1/generate?grant_type=client_credentials", nil)
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.SetBasicAuth(c.cfg.ConsumerKey, c.cfg.ConsumerSecret)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTransient, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusBadRequest {
		return "", fmt.Errorf("%w: gateway rejected application credentials", domain.ErrConfiguration)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: token endpoint returned status %d", domain.ErrTransient, resp.StatusCode)
	}

	var tok tokenResponse
	if err = json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("%w: token endpoint returned empty credential", domain.ErrTransient)
	}

	ttl := time.Hour
	if secs, err := strconv.Atoi(tok.ExpiresIn); err == nil && secs > 0 {
		ttl = time.Duration(secs) * time.Second
	}

	c.token = tok.AccessToken
	c.tokenExpiry = time.Now().Add(ttl - tokenExpiryMargin)

	c.log.Debug("gateway access token refreshed",
		logger.Duration("ttl", ttl),
	)

	return c.token, nil
}

func (c *Client) invalidateToken() {
	c.mu.Lock()
	c.token = ""
	c.tokenExpiry = time.Time{}
	c.mu.Unlock()
}
