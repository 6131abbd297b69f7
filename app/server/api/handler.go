// Package api provides HTTP handlers for the translation API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/traductor/traductor/app/client"
	"github.com/traductor/traductor/app/enum"
	"github.com/traductor/traductor/app/translator"
	"github.com/traductor/traductor/app/validator"
)

//go:generate moq -out mocks/translator.go -pkg mocks -skip-ensure -fmt goimports . Translator

// Translator defines the backend translation operation.
type Translator interface {
	Translate(ctx context.Context, source, target, text string) (translator.Result, error)
}

// Validator defines the interface for request validation.
type Validator interface {
	Struct(v any) error
	SupportedTargets() []string
}

// translateRequest mirrors client.Request with validation rules.
type translateRequest struct {
	Source string `json:"source" validate:"omitempty,lang"`
	Target string `json:"target" validate:"required,target_lang"`
	Text   string `json:"text" validate:"required,notblank"`
}

// Handler handles API requests for /translate.
type Handler struct {
	tr        Translator
	validator Validator
}

// New creates a new API handler.
func New(tr Translator, val Validator) *Handler {
	return &Handler{tr: tr, validator: val}
}

// Register registers API routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("POST /translate", h.handleTranslate)
	r.HandleFunc("GET /languages", h.handleLanguages)
}

// handleTranslate translates the posted text.
// POST /translate {"source":"auto","target":"en","text":"Hola mundo"}
func (h *Handler) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req == (translateRequest{}) {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid or empty JSON")
		return
	}

	resp, code, err := h.translate(r.Context(), client.Request(req))
	switch {
	case code == http.StatusBadRequest:
		rest.SendErrorJSON(w, r, log.Default(), code, err, err.Error())
		return
	case err != nil:
		log.Printf("[WARN] translate %s->%s failed: %v", req.Source, req.Target, err)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(code)
		rest.RenderJSON(w, rest.JSON{"error": "translation failed", "details": err.Error()})
		return
	}

	log.Printf("[DEBUG] translated %d chars %s->%s", len(req.Text), resp.DetectedSource, req.Target)
	rest.RenderJSON(w, resp)
}

// handleLanguages lists accepted language codes.
// GET /languages
func (h *Handler) handleLanguages(w http.ResponseWriter, _ *http.Request) {
	sources := make([]string, 0, len(enum.LangValues))
	for _, l := range enum.LangValues {
		sources = append(sources, l.String())
	}
	rest.RenderJSON(w, rest.JSON{"source": sources, "target": h.validator.SupportedTargets()})
}

// translate validates req and calls the translator, returning the response and matching HTTP status.
func (h *Handler) translate(ctx context.Context, req client.Request) (client.Response, int, error) {
	if err := h.validator.Struct(translateRequest(req)); err != nil {
		if errors.Is(err, validator.ErrUnsupportedLang) {
			log.Printf("[DEBUG] rejected language pair %q->%q", req.Source, req.Target)
		}
		return client.Response{}, http.StatusBadRequest, err
	}
	source := req.Source
	if source == "" {
		source = enum.LangAuto.String()
	}

	res, err := h.tr.Translate(ctx, source, req.Target, req.Text)
	if errors.Is(err, translator.ErrEmptyText) || errors.Is(err, translator.ErrUnsupportedLang) {
		return client.Response{}, http.StatusBadRequest, err
	}
	if err != nil {
		return client.Response{}, http.StatusInternalServerError, err
	}
	return client.Response{TranslatedText: res.TranslatedText, DetectedSource: res.DetectedSource}, http.StatusOK, nil
}
