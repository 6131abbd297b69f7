package client_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traductor/traductor/app/client"
	"github.com/traductor/traductor/app/client/mocks"
	"github.com/traductor/traductor/app/i18n"
)

func newMessages(t *testing.T) client.Messages {
	t.Helper()
	b, err := i18n.NewBundle("en")
	require.NoError(t, err)
	return b.Localizer("en")
}

func TestHandler_Submit_Validation(t *testing.T) {
	msgs := newMessages(t)

	tests := []struct {
		name string
		form client.Values
		want string
	}{
		{"empty text", client.Values{From: "en", To: "es", Input: ""}, msgs.T(i18n.MsgWarnEmpty, nil)},
		{"whitespace only", client.Values{From: "en", To: "es", Input: " \n\t "}, msgs.T(i18n.MsgWarnEmpty, nil)},
		{"same language", client.Values{From: "es", To: "es", Input: "hola"}, msgs.T(i18n.MsgWarnSameLang, nil)},
		{"empty wins over same language", client.Values{From: "es", To: "es", Input: "  "}, msgs.T(i18n.MsgWarnEmpty, nil)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			api := &mocks.APIMock{}
			box := &client.Box{}
			h := client.New(api, tc.form, box, msgs)

			assert.Equal(t, client.OutcomeWarning, h.Submit(context.Background()))
			assert.Equal(t, tc.want, box.Result())
			assert.Empty(t, api.TranslateCalls(), "no network call on validation failure")
		})
	}
}

func TestHandler_Submit_Success(t *testing.T) {
	msgs := newMessages(t)
	api := &mocks.APIMock{
		TranslateFunc: func(ctx context.Context, req client.Request) (client.Response, error) {
			return client.Response{TranslatedText: "Hola", DetectedSource: "en"}, nil
		},
	}
	display := &mocks.DisplayMock{SetResultFunc: func(text string) {}}
	form := client.Values{From: "auto", To: "es", Input: "  Hello  "}

	h := client.New(api, form, display, msgs)
	assert.Equal(t, client.OutcomeTranslated, h.Submit(context.Background()))

	require.Len(t, api.TranslateCalls(), 1)
	assert.Equal(t, client.Request{Source: "auto", Target: "es", Text: "Hello"}, api.TranslateCalls()[0].Req)

	calls := display.SetResultCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, msgs.T(i18n.MsgInProgress, nil), calls[0].Text, "placeholder shown first")
	assert.Contains(t, calls[1].Text, "Hola")
	assert.Contains(t, calls[1].Text, "en → es", "annotated with detected source")
}

func TestHandler_Submit_NoDetectedSource(t *testing.T) {
	api := &mocks.APIMock{
		TranslateFunc: func(ctx context.Context, req client.Request) (client.Response, error) {
			return client.Response{TranslatedText: "Bonjour"}, nil
		},
	}
	box := &client.Box{}
	h := client.New(api, client.Values{From: "en", To: "fr", Input: "Hello"}, box, newMessages(t))
	assert.Equal(t, client.OutcomeTranslated, h.Submit(context.Background()))
	assert.Contains(t, box.Result(), "en → fr")
	assert.Contains(t, box.Result(), "Bonjour")
}

func TestHandler_Submit_Failures(t *testing.T) {
	msgs := newMessages(t)
	failed := msgs.T(i18n.MsgFailed, nil)

	tests := []struct {
		name string
		err  error
	}{
		{"service error", &client.ServiceError{Message: "bad language"}},
		{"status error", &client.StatusError{Code: 500, Message: "boom"}},
		{"network error", errors.New("dial tcp: connection refused")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			api := &mocks.APIMock{
				TranslateFunc: func(ctx context.Context, req client.Request) (client.Response, error) {
					return client.Response{}, tc.err
				},
			}
			box := &client.Box{}
			h := client.New(api, client.Values{From: "en", To: "es", Input: "Hello"}, box, msgs)
			assert.Equal(t, client.OutcomeFailed, h.Submit(context.Background()))
			assert.Equal(t, failed, box.Result())
		})
	}
}

func TestHandler_Submit_StaleResponseDropped(t *testing.T) {
	msgs := newMessages(t)
	release := make(chan struct{})
	var mu sync.Mutex
	calls := 0

	api := &mocks.APIMock{
		TranslateFunc: func(ctx context.Context, req client.Request) (client.Response, error) {
			mu.Lock()
			calls++
			first := calls == 1
			mu.Unlock()
			if first {
				<-release // first request stays in flight until the second one is done
				return client.Response{TranslatedText: "first"}, nil
			}
			return client.Response{TranslatedText: "second"}, nil
		},
	}
	form := &mocks.FormMock{
		SourceFunc: func() string { return "en" },
		TargetFunc: func() string { return "es" },
		TextFunc:   func() string { return "Hello" },
	}
	box := &client.Box{}
	h := client.New(api, form, box, msgs)

	firstCh := h.SubmitAsync(context.Background())
	require.Eventually(t, func() bool { return len(api.TranslateCalls()) == 1 }, time.Second, time.Millisecond)

	assert.Equal(t, client.OutcomeTranslated, h.Submit(context.Background()))
	assert.Contains(t, box.Result(), "second")

	close(release)
	select {
	case outcome := <-firstCh:
		assert.Equal(t, client.OutcomeStale, outcome)
	case <-time.After(time.Second):
		t.Fatal("first submission did not finish")
	}
	assert.Contains(t, box.Result(), "second", "late response must not overwrite newer one")
	assert.False(t, strings.Contains(box.Result(), "first"))
}

func TestHandler_SubmitAsync(t *testing.T) {
	msgs := newMessages(t)

	t.Run("warning resolves immediately", func(t *testing.T) {
		box := &client.Box{}
		h := client.New(&mocks.APIMock{}, client.Values{From: "en", To: "es"}, box, msgs)
		assert.Equal(t, client.OutcomeWarning, <-h.SubmitAsync(context.Background()))
		assert.Equal(t, msgs.T(i18n.MsgWarnEmpty, nil), box.Result())
	})

	t.Run("placeholder is shown before the response", func(t *testing.T) {
		release := make(chan struct{})
		api := &mocks.APIMock{
			TranslateFunc: func(ctx context.Context, req client.Request) (client.Response, error) {
				<-release
				return client.Response{TranslatedText: "Hallo"}, nil
			},
		}
		box := &client.Box{}
		h := client.New(api, client.Values{From: "en", To: "de", Input: "Hello"}, box, msgs)
		ch := h.SubmitAsync(context.Background())
		assert.Equal(t, msgs.T(i18n.MsgInProgress, nil), box.Result())
		close(release)
		assert.Equal(t, client.OutcomeTranslated, <-ch)
		assert.Contains(t, box.Result(), "Hallo")
	})

	t.Run("validation after in-flight request supersedes it", func(t *testing.T) {
		release := make(chan struct{})
		api := &mocks.APIMock{
			TranslateFunc: func(ctx context.Context, req client.Request) (client.Response, error) {
				<-release
				return client.Response{TranslatedText: "Hallo"}, nil
			},
		}
		form := &client.Values{From: "en", To: "de", Input: "Hello"}
		box := &client.Box{}
		h := client.New(api, form, box, msgs)
		ch := h.SubmitAsync(context.Background())

		form.Input = ""
		assert.Equal(t, client.OutcomeWarning, h.Submit(context.Background()))
		close(release)
		assert.Equal(t, client.OutcomeStale, <-ch)
		assert.Equal(t, msgs.T(i18n.MsgWarnEmpty, nil), box.Result())
	})
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "warning", client.OutcomeWarning.String())
	assert.Equal(t, "translated", client.OutcomeTranslated.String())
	assert.Equal(t, "failed", client.OutcomeFailed.String())
	assert.Equal(t, "stale", client.OutcomeStale.String())
	assert.Equal(t, "unknown", client.Outcome(42).String())
}
