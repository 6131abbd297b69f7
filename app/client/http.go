package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// maxResponseSize caps how much of a response body is decoded.
const maxResponseSize = 1024 * 1024

// StatusError is returned when the endpoint answers with a non-2xx status.
type StatusError struct {
	Code    int
	Message string // server-provided error message, may be empty
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("translate endpoint returned status %d", e.Code)
	}
	return fmt.Sprintf("translate endpoint returned status %d: %s", e.Code, e.Message)
}

// ServiceError is returned when a 2xx response carries an error field or no translation.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return "translate endpoint error: " + e.Message
}

// HTTP implements API by posting JSON to <endpoint>/translate.
type HTTP struct {
	url    string
	client *http.Client
}

// NewHTTP makes an HTTP API client for the service at endpoint (base URL, e.g. http://127.0.0.1:5001).
// A nil client means a plain http.Client without timeout.
func NewHTTP(endpoint string, client *http.Client) *HTTP {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTP{url: strings.TrimSuffix(endpoint, "/") + "/translate", client: client}
}

// URL returns the full translate URL.
func (c *HTTP) URL() string {
	return c.url
}

// Translate posts req and decodes the response. Exactly one attempt is made.
func (c *HTTP) Translate(ctx context.Context, req Request) (Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Response{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var res Response
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&res)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Response{}, &StatusError{Code: resp.StatusCode, Message: res.Error}
	}
	if decodeErr != nil {
		return Response{}, fmt.Errorf("failed to decode response: %w", decodeErr)
	}
	if res.Error != "" {
		return Response{}, &ServiceError{Message: res.Error}
	}
	if res.TranslatedText == "" {
		return Response{}, &ServiceError{Message: "no translatedText in response"}
	}
	return res, nil
}
