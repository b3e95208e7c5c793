package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPClient is the concrete Client over the server's REST surface.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient constructs a client for the server at baseURL
// (e.g., "http://127.0.0.1:8000").
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) Register(ctx context.Context, username, password, confirmPassword string) error {
	body := map[string]string{
		"username":         username,
		"password":         password,
		"confirm_password": confirmPassword,
	}
	resp, err := c.postJSON(ctx, "/register", body, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}
	resp, err := c.postJSON(ctx, "/login", body, "")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", err
	}

	var lr struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return "", fmt.Errorf("decoding login response: %w", err)
	}

	return lr.Token, nil
}

func (c *HTTPClient) ChangePassword(ctx context.Context, token, oldPassword, newPassword string) error {
	body := map[string]string{"old_password": oldPassword, "new_password": newPassword}
	resp, err := c.postJSON(ctx, "/change-password", body, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

func (c *HTTPClient) Upload(ctx context.Context, content io.Reader, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/", content)
	if err != nil {
		return "", err
	}
	setBearer(req, token)

	resp, err := c.do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", err
	}

	urlBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(urlBytes), nil
}

func (c *HTTPClient) Get(ctx context.Context, id, owner string) ([]byte, error) {
	u := c.baseURL + "/" + url.PathEscape(id)
	if owner != "" {
		u += "?owner=" + url.QueryEscape(owner)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	return io.ReadAll(resp.Body)
}

func (c *HTTPClient) Delete(ctx context.Context, id string, my bool, token string) error {
	u := c.baseURL + "/" + url.PathEscape(id)
	if my {
		u += "?my=true"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}
	setBearer(req, token)

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return checkStatus(resp)
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, body any, token string) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	setBearer(req, token)

	return c.do(req)
}

func (c *HTTPClient) do(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
}

func setBearer(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// checkStatus converts non-2xx responses into errors. 401 responses map to
// ErrUnauthorized; everything else surfaces the server's error envelope as
// an APIError.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	var envelope struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&envelope)

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", ErrUnauthorized, envelope.Error)
	}

	if envelope.Code == "" {
		return &APIError{Status: resp.StatusCode, Code: "Unknown", Message: resp.Status}
	}
	return &APIError{Status: resp.StatusCode, Code: envelope.Code, Message: envelope.Error}
}
