package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"employee-directory/internal/models"
)

const employeesPath = "api/employees"

// APIError is a failure reported by the backend: a non-success status with
// an {"error": "..."} body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// Client talks to the employee REST backend. No timeout is set beyond the
// transport default and nothing is retried.
type Client struct {
	httpClient *http.Client
	url        string
	logger     zerolog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func New(serviceAddress string, logger zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		url:        strings.TrimRight(serviceAddress, "/"),
		logger:     logger,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type createResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// ListEmployees fetches the whole collection in backend order.
func (c *Client) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	resp, err := c.do(ctx, http.MethodGet, employeesPath, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body createResponse
		_ = json.NewDecoder(resp.Body).Decode(&body)
		msg := body.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	var employees []models.Employee
	if err := json.NewDecoder(resp.Body).Decode(&employees); err != nil {
		return nil, errors.Wrap(err, "decode employee list")
	}
	return employees, nil
}

// CreateEmployee posts the draft with camelCase keys and returns the
// backend's confirmation message. A non-success status comes back as
// *APIError; anything else is a transport or decode failure.
func (c *Client) CreateEmployee(ctx context.Context, d models.Draft) (string, error) {
	body, err := json.Marshal(d)
	if err != nil {
		return "", errors.Wrap(err, "encode draft")
	}

	resp, err := c.do(ctx, http.MethodPost, employeesPath, body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var result createResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.Wrapf(err, "decode create response (status %d)", resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := result.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return "", &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	return result.Message, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	uri := c.url + "/" + path

	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, uri, reader)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s %s", method, uri)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start).Microseconds()

	if err != nil {
		c.logger.Error().Err(err).
			Str("method", method).
			Str("uri", uri).
			Int64("responseTimeMicros", elapsed).
			Msg("backend request failed")
		return nil, errors.Wrapf(err, "%s %s", method, uri)
	}

	c.logger.Info().
		Str("method", method).
		Str("uri", uri).
		Int("status", resp.StatusCode).
		Int64("responseTimeMicros", elapsed).
		Msg("backend request")

	return resp, nil
}
