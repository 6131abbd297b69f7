package translator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// Google is a Service backed by Google Cloud Translation (v2).
// The client is created on first use and shared by all requests until Close.
type Google struct {
	opts []option.ClientOption

	once   sync.Once
	cl     *translate.Client
	clErr  error
	closed bool
	mu     sync.Mutex
}

// NewGoogle makes a Google service. credentials is a service account json path,
// empty means application default credentials.
func NewGoogle(credentials string) *Google {
	g := &Google{}
	if credentials != "" {
		g.opts = append(g.opts, option.WithCredentialsFile(credentials))
	}
	return g
}

// Name returns service name.
func (s *Google) Name() string {
	return "google"
}

// Translate translates text with the shared client.
func (s *Google) Translate(ctx context.Context, source, target, text string) (string, error) {
	targetTag, err := language.Parse(target)
	if err != nil {
		return "", fmt.Errorf("invalid target language %q: %w", target, err)
	}
	sourceTag, err := language.Parse(source)
	if err != nil {
		return "", fmt.Errorf("invalid source language %q: %w", source, err)
	}

	client, err := s.client(ctx)
	if err != nil {
		return "", err
	}
	res, err := client.Translate(ctx, []string{text}, targetTag, &translate.Options{Source: sourceTag, Format: translate.Text})
	if err != nil {
		return "", fmt.Errorf("google translate failed: %w", err)
	}
	if len(res) == 0 {
		return "", errors.New("google translate returned no translation")
	}
	return res[0].Text, nil
}

// client returns the shared client, creating it once. A failed creation is not retried.
func (s *Google) client(ctx context.Context) (*translate.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, errors.New("google client is closed")
	}
	s.once.Do(func() {
		// the client outlives the request it was made for
		s.cl, s.clErr = translate.NewClient(context.WithoutCancel(ctx), s.opts...)
		if s.clErr != nil {
			s.clErr = fmt.Errorf("failed to create google client: %w", s.clErr)
		}
	})
	return s.cl, s.clErr
}

// Close releases the shared client. Translate fails after Close.
func (s *Google) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.cl == nil {
		return nil
	}
	if err := s.cl.Close(); err != nil {
		return fmt.Errorf("failed to close google client: %w", err)
	}
	s.cl = nil
	return nil
}
