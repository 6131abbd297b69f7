// Package client implements the translation request handler: it reads a form, validates it,
// posts one request to the translation endpoint and renders the outcome on a display.
// Form, display and transport are injected so the handler works with any UI surface.
package client

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	log "github.com/go-pkgz/lgr"

	"github.com/traductor/traductor/app/i18n"
)

//go:generate moq -out mocks/api.go -pkg mocks -skip-ensure -fmt goimports . API
//go:generate moq -out mocks/form.go -pkg mocks -skip-ensure -fmt goimports . Form
//go:generate moq -out mocks/display.go -pkg mocks -skip-ensure -fmt goimports . Display

// Request is the body posted to the translation endpoint.
type Request struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Text   string `json:"text"`
}

// Response is the body returned by the translation endpoint.
// Either TranslatedText or Error is meaningful, never both.
type Response struct {
	TranslatedText string `json:"translatedText,omitempty"`
	DetectedSource string `json:"detectedSource,omitempty"`
	Error          string `json:"error,omitempty"`
}

// API performs a single translation exchange.
type API interface {
	Translate(ctx context.Context, req Request) (Response, error)
}

// Form provides the current values of the input controls.
type Form interface {
	Source() string
	Target() string
	Text() string
}

// Display is the result region of the UI.
type Display interface {
	SetResult(text string)
}

// Messages renders localized user-facing strings.
type Messages interface {
	T(key string, data map[string]any) string
}

// Outcome tells how a submission ended.
type Outcome int

// Submission outcomes.
const (
	OutcomeWarning    Outcome = iota // rejected by validation, nothing sent
	OutcomeTranslated                // translation rendered
	OutcomeFailed                    // failure message rendered
	OutcomeStale                     // superseded by a newer submission, display untouched
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWarning:
		return "warning"
	case OutcomeTranslated:
		return "translated"
	case OutcomeFailed:
		return "failed"
	case OutcomeStale:
		return "stale"
	default:
		return "unknown"
	}
}

// Handler wires a form and a display to the translation API.
// Overlapping submissions are allowed; only the most recent one may write to the display.
type Handler struct {
	api     API
	form    Form
	display Display
	msgs    Messages

	seq atomic.Uint64
	mu  sync.Mutex // serializes display writes with the sequence check
}

// New makes a Handler.
func New(api API, form Form, display Display, msgs Messages) *Handler {
	return &Handler{api: api, form: form, display: display, msgs: msgs}
}

// submission is a validated request tagged with its sequence number
type submission struct {
	seq uint64
	req Request
}

// Submit validates the form, performs the exchange and renders the result. It blocks for the
// network round trip and never panics or returns errors, all failures end up on the display.
func (h *Handler) Submit(ctx context.Context) Outcome {
	sub, ok := h.prepare()
	if !ok {
		return OutcomeWarning
	}
	return h.exchange(ctx, sub)
}

// SubmitAsync validates the form and shows the placeholder synchronously, then runs the network
// exchange on its own goroutine. The returned channel yields the outcome and is closed.
func (h *Handler) SubmitAsync(ctx context.Context) <-chan Outcome {
	res := make(chan Outcome, 1)
	sub, ok := h.prepare()
	if !ok {
		res <- OutcomeWarning
		close(res)
		return res
	}
	go func() {
		defer close(res)
		res <- h.exchange(ctx, sub)
	}()
	return res
}

// prepare reads the form, rejects invalid input and shows the in-progress placeholder.
func (h *Handler) prepare() (submission, bool) {
	text := strings.TrimSpace(h.form.Text())
	source, target := h.form.Source(), h.form.Target()
	seq := h.seq.Add(1)

	if text == "" {
		h.show(seq, h.msgs.T(i18n.MsgWarnEmpty, nil))
		return submission{}, false
	}
	if source == target {
		h.show(seq, h.msgs.T(i18n.MsgWarnSameLang, nil))
		return submission{}, false
	}

	h.show(seq, h.msgs.T(i18n.MsgInProgress, nil))
	return submission{seq: seq, req: Request{Source: source, Target: target, Text: text}}, true
}

// exchange sends the request and maps the response to the display.
func (h *Handler) exchange(ctx context.Context, sub submission) Outcome {
	resp, err := h.api.Translate(ctx, sub.req)
	if err != nil {
		log.Printf("[WARN] translation of %d chars %s->%s failed: %v", len(sub.req.Text), sub.req.Source, sub.req.Target, err)
		if !h.show(sub.seq, h.msgs.T(i18n.MsgFailed, nil)) {
			return OutcomeStale
		}
		return OutcomeFailed
	}

	from := resp.DetectedSource
	if from == "" {
		from = sub.req.Source
	}
	msg := h.msgs.T(i18n.MsgTranslated, map[string]any{"From": from, "To": sub.req.Target, "Text": resp.TranslatedText})
	if !h.show(sub.seq, msg) {
		log.Printf("[DEBUG] dropped stale response #%d", sub.seq)
		return OutcomeStale
	}
	return OutcomeTranslated
}

// show writes text to the display if seq is still the latest submission.
func (h *Handler) show(seq uint64, text string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if seq != h.seq.Load() {
		return false
	}
	h.display.SetResult(text)
	return true
}

// Values is a fixed Form, handy for non-interactive callers.
type Values struct {
	From, To, Input string
}

// Source returns the source language code.
func (v Values) Source() string { return v.From }

// Target returns the target language code.
func (v Values) Target() string { return v.To }

// Text returns the raw text.
func (v Values) Text() string { return v.Input }

// Box is a Display keeping the last result in memory.
type Box struct {
	mu  sync.Mutex
	val string
}

// SetResult replaces the shown text.
func (b *Box) SetResult(text string) {
	b.mu.Lock()
	b.val = text
	b.mu.Unlock()
}

// Result returns the shown text.
func (b *Box) Result() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.val
}
