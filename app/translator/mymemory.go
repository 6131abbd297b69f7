package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const myMemoryURL = "https://api.mymemory.translated.net/get"

// MyMemory is a Service backed by the free MyMemory API, no key required.
type MyMemory struct {
	baseURL string
	email   string
	client  *http.Client
}

// NewMyMemory makes a MyMemory service. email is optional and raises the daily quota.
func NewMyMemory(email string) *MyMemory {
	return &MyMemory{baseURL: myMemoryURL, email: email, client: &http.Client{Timeout: 10 * time.Second}}
}

// Name returns service name.
func (s *MyMemory) Name() string {
	return "mymemory"
}

// myMemoryStatus accepts both numeric and quoted response status values, the API returns either.
type myMemoryStatus int

func (s *myMemoryStatus) UnmarshalJSON(b []byte) error {
	raw := string(b)
	if uq, err := strconv.Unquote(raw); err == nil {
		raw = uq
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid response status %s: %w", string(b), err)
	}
	*s = myMemoryStatus(n)
	return nil
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string  `json:"translatedText"`
		Match          float64 `json:"match"`
	} `json:"responseData"`
	ResponseStatus  myMemoryStatus `json:"responseStatus"`
	ResponseDetails string         `json:"responseDetails"`
}

// Translate calls GET /get?q=text&langpair=source|target.
func (s *MyMemory) Translate(ctx context.Context, source, target, text string) (string, error) {
	params := url.Values{}
	params.Set("q", text)
	params.Set("langpair", source+"|"+target)
	if s.email != "" {
		params.Set("de", s.email)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("mymemory returned status %d", resp.StatusCode)
	}

	var mmResp myMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&mmResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if mmResp.ResponseStatus != http.StatusOK {
		return "", fmt.Errorf("mymemory error: %s (%d)", mmResp.ResponseDetails, mmResp.ResponseStatus)
	}
	return mmResp.ResponseData.TranslatedText, nil
}
