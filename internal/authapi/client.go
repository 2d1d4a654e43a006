// Package authapi is a thin HTTP client for the remote login endpoint.
package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"contactflow/internal/apperrors"
	"contactflow/internal/model"
)

// Client posts login credentials to a fixed endpoint and decodes the
// JSON verdict.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a login client for the given endpoint URL.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    *model.User `json:"user"`
}

// Login checks credentials against the remote endpoint. A negative verdict
// maps to ErrInvalidCredentials; any transport or decoding failure maps to
// ErrServerConnection. On success the returned user never carries a
// password.
func (c *Client) Login(ctx context.Context, email, password, role string) (*model.User, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password, Role: role})
	if err != nil {
		return nil, fmt.Errorf("marshaling login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrServerConnection, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", apperrors.ErrServerConnection, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", apperrors.ErrServerConnection, resp.StatusCode)
	}

	var verdict loginResponse
	if err := json.Unmarshal(respBody, &verdict); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", apperrors.ErrServerConnection, err)
	}

	if !verdict.Success || verdict.User == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	verdict.User.Password = ""
	return verdict.User, nil
}
