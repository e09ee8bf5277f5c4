package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/solvetrack/solvetrack/internal/config"
	"github.com/solvetrack/solvetrack/internal/logger"
	"github.com/solvetrack/solvetrack/models"
)

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter creates a resty-backed ServerAdapter pointed at the
// configured base URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, log *logger.Logger) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: cli, logger: log.GetChildLogger()}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) AccountID() (int64, error) {
	token := h.Token()
	if token == "" {
		return 0, ErrNoToken
	}
	return parseAccountIDFromJWT(token)
}

func (h *httpServerAdapter) Register(ctx context.Context, creds models.Credentials) (string, error) {
	return h.obtainToken(ctx, "/register", creds)
}

func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (string, error) {
	return h.obtainToken(ctx, "/login", creds)
}

// obtainToken posts credentials to an auth endpoint and stores the token from
// the response body.
func (h *httpServerAdapter) obtainToken(ctx context.Context, path string, creds models.Credentials) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", strings.TrimPrefix(path, "/"), err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var tr models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &tr); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tr.Token == "" {
		return "", errors.New("empty token in response")
	}

	h.SetToken(tr.Token)
	return tr.Token, nil
}

func (h *httpServerAdapter) Profile(ctx context.Context) ([]string, error) {
	resp, err := h.authedRequest(ctx).Get("/profile")
	if err != nil {
		return nil, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var pr models.ProfileResponse
	if err = json.Unmarshal(resp.Body(), &pr); err != nil {
		return nil, fmt.Errorf("decode profile response: %w", err)
	}
	return pr.Checked, nil
}

func (h *httpServerAdapter) Check(ctx context.Context, questionID string) ([]string, error) {
	return h.patchChecklist(ctx, "/check", questionID)
}

func (h *httpServerAdapter) Uncheck(ctx context.Context, questionID string) ([]string, error) {
	return h.patchChecklist(ctx, "/uncheck", questionID)
}

func (h *httpServerAdapter) patchChecklist(ctx context.Context, path string, questionID string) ([]string, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ChecklistRequest{CheckedQues: questionID}).
		Patch(path)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", strings.TrimPrefix(path, "/"), err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var cr models.ChecklistResponse
	if err = json.Unmarshal(resp.Body(), &cr); err != nil {
		return nil, fmt.Errorf("decode checklist response: %w", err)
	}
	return cr.Result, nil
}

func (h *httpServerAdapter) Upload(ctx context.Context, req models.UploadRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/upload")
	if err != nil {
		return fmt.Errorf("upload request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Unsubscribe(ctx context.Context, creds models.Credentials) error {
	accountID, err := h.AccountID()
	if err != nil {
		return err
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.UnsubscribeRequest{Email: creds.Email, Password: creds.Password, ID: accountID}).
		Patch("/unsubscribe")
	if err != nil {
		return fmt.Errorf("unsubscribe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := serverMessage(resp.Body())
	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, msg)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrServer, msg)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
	}
}

// serverMessage extracts the error field from a JSON error body, falling back
// to the raw body text.
func serverMessage(body []byte) string {
	var er models.ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error != "" {
		return er.Error
	}
	return strings.TrimSpace(string(body))
}

func parseAccountIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}
