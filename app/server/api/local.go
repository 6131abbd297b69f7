package api

import (
	"context"

	"github.com/traductor/traductor/app/client"
)

// Local is a client.API answering from the in-process handler, same rules as POST /translate
// without the HTTP round trip. Used by the web UI.
type Local struct {
	h *Handler
}

// Local returns the in-process client.API of this handler.
func (h *Handler) Local() *Local {
	return &Local{h: h}
}

// Translate runs the same validation and translation as the HTTP endpoint.
// Non-200 outcomes are reported as *client.StatusError.
func (l *Local) Translate(ctx context.Context, req client.Request) (client.Response, error) {
	resp, code, err := l.h.translate(ctx, req)
	if err != nil {
		return client.Response{}, &client.StatusError{Code: code, Message: err.Error()}
	}
	return resp, nil
}
