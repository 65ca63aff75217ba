// Package api is the REST client for the remote transaction/auth service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spendlens/spendlens/internal/session"
	"github.com/spendlens/spendlens/internal/transaction"
)

// Client talks to the remote API. The zero token makes an unauthenticated
// client, enough for register and login; WithToken derives an authenticated
// one for the transaction endpoints.
type Client struct {
	baseURL string
	client  *http.Client
	token   string
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// WithToken returns a copy of the client that sends the bearer token on
// every request.
func (c *Client) WithToken(token string) *Client {
	authed := *c
	authed.token = token

	return &authed
}

// LoginResult is the payload of a successful login. User is nil when the
// server returns only a token.
type LoginResult struct {
	Token string        `json:"token"`
	User  *session.User `json:"user"`
}

func (c *Client) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}

	return c.do(ctx, http.MethodPost, "/auth/register", body, nil)
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	body := map[string]string{"email": email, "password": password}

	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &result); err != nil {
		return LoginResult{}, err
	}

	if result.Token == "" {
		return LoginResult{}, errors.New("login response missing token")
	}

	return result, nil
}

func (c *Client) ListTransactions(ctx context.Context) ([]transaction.Transaction, error) {
	var payload []transactionPayload
	if err := c.do(ctx, http.MethodGet, "/transactions", nil, &payload); err != nil {
		return nil, err
	}

	txs := make([]transaction.Transaction, len(payload))
	for i, p := range payload {
		txs[i] = p.toTransaction()
	}

	return txs, nil
}

func (c *Client) GetTransaction(ctx context.Context, id string) (transaction.Transaction, error) {
	var payload transactionPayload
	if err := c.do(ctx, http.MethodGet, "/transactions/"+id, nil, &payload); err != nil {
		return transaction.Transaction{}, err
	}

	return payload.toTransaction(), nil
}

func (c *Client) CreateTransaction(ctx context.Context, draft transaction.Draft) (transaction.Transaction, error) {
	var payload transactionPayload
	if err := c.do(ctx, http.MethodPost, "/transactions", fromDraft(draft), &payload); err != nil {
		return transaction.Transaction{}, err
	}

	return payload.toTransaction(), nil
}

func (c *Client) UpdateTransaction(ctx context.Context, id string, draft transaction.Draft) (transaction.Transaction, error) {
	var payload transactionPayload
	if err := c.do(ctx, http.MethodPut, "/transactions/"+id, fromDraft(draft), &payload); err != nil {
		return transaction.Transaction{}, err
	}

	return payload.toTransaction(), nil
}

func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/transactions/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}

		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

// errorFromResponse extracts the user-facing error text: the message field
// of the payload when present, otherwise the raw body, otherwise the status.
func errorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var payload struct {
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return errors.New(payload.Message)
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return errors.New(text)
	}

	return errors.New(resp.Status)
}
