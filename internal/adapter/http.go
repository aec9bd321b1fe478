package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Raphalinho91/user-accounts/internal/logger"
	"github.com/Raphalinho91/user-accounts/internal/utils"
	"github.com/Raphalinho91/user-accounts/models"
	"github.com/go-resty/resty/v2"
)

type httpAccountsClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAccountsClient constructs the REST implementation of
// [AccountsClient]. address may omit the scheme, "http" is assumed then.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPAccountsClient(address string, timeout time.Duration, logger *logger.Logger) (AccountsClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpAccountsClient{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAccountsClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAccountsClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// SignUp POSTs the credentials to /users/signup.
func (h *httpAccountsClient) SignUp(ctx context.Context, username, password string) (models.PublicUser, error) {
	var user models.PublicUser

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.CredentialsRequest{Username: username, Password: password}).
		SetResult(&user).
		Post("/users/signup")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return user, nil
}

// LogIn POSTs the credentials to /users/login and keeps the token from the
// response body.
func (h *httpAccountsClient) LogIn(ctx context.Context, username, password string) (models.LoginResponse, error) {
	var login models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.CredentialsRequest{Username: username, Password: password}).
		SetResult(&login).
		Post("/users/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(login.Token)
	h.logger.Debug().Int64("user_id", login.UserID).Msg("logged in")
	return login, nil
}

func (h *httpAccountsClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&users).
		Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

func (h *httpAccountsClient) GetUser(ctx context.Context, userID int64) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(userID, 10)).
		SetResult(&user).
		Get("/users/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// UpdateUser PUTs update to /users/{id}. The stored token travels in the
// Authorization header; a token set in update is sent as well.
func (h *httpAccountsClient) UpdateUser(ctx context.Context, userID int64, update models.UpdateRequest) (models.PublicUser, error) {
	var user models.PublicUser

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(userID, 10)).
		SetBody(update).
		SetResult(&user).
		Put("/users/{id}")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return user, nil
}

func (h *httpAccountsClient) DeleteUser(ctx context.Context, userID int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(userID, 10)).
		Delete("/users/{id}")
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAccountsClient) Health(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAccountsClient) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

// authedRequest returns a request carrying the stored token as a bearer,
// when there is one.
func (h *httpAccountsClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
