// Package translator is the backend of the /translate endpoint: it validates language codes,
// detects the source language when asked to and calls an upstream translation service.
package translator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/go-pkgz/lgr"

	"github.com/traductor/traductor/app/enum"
)

//go:generate moq -out mocks/service.go -pkg mocks -skip-ensure -fmt goimports . Service

// defaultSource is used when detection can't tell the language.
const defaultSource = "en"

var (
	// ErrEmptyText is returned for blank input.
	ErrEmptyText = errors.New("empty text")
	// ErrUnsupportedLang is returned for language codes outside the supported set.
	ErrUnsupportedLang = errors.New("unsupported language code")
)

// Service is an upstream machine-translation provider.
type Service interface {
	Name() string
	Translate(ctx context.Context, source, target, text string) (string, error)
}

// LangDetector returns ISO 639-1 code of text or "" if unknown.
type LangDetector interface {
	Detect(text string) string
}

// Result is a finished translation.
type Result struct {
	TranslatedText string
	DetectedSource string // set only when the source was detected
}

// Config tweaks the translator behavior.
type Config struct {
	// MarkFailures turns upstream failures into a marked echo of the input instead of an error
	MarkFailures bool
}

// Translator validates requests and delegates to a Service.
type Translator struct {
	svc      Service
	detector LangDetector
	cfg      Config
}

// New makes a Translator. A nil detector disables detection, auto sources fall back to English.
func New(svc Service, detector LangDetector, cfg Config) *Translator {
	return &Translator{svc: svc, detector: detector, cfg: cfg}
}

// Translate translates text from source (a code or "auto") to target.
func (t *Translator) Translate(ctx context.Context, source, target, text string) (Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, ErrEmptyText
	}

	tgt, err := enum.ParseLang(target)
	if err != nil || !tgt.IsTarget() {
		return Result{}, fmt.Errorf("target %q: %w", target, ErrUnsupportedLang)
	}
	if source == "" {
		source = enum.LangAuto.String()
	}
	src, err := enum.ParseLang(source)
	if err != nil {
		return Result{}, fmt.Errorf("source %q: %w", source, ErrUnsupportedLang)
	}

	var detected string
	sourceLang := src.String()
	if src == enum.LangAuto {
		sourceLang = defaultSource
		if t.detector != nil {
			if detected = t.detector.Detect(text); detected != "" {
				sourceLang = detected
			}
		}
		log.Printf("[DEBUG] detected source %q, using %s", detected, sourceLang)
	}

	translated, err := t.svc.Translate(ctx, sourceLang, tgt.String(), text)
	if err == nil {
		translated = cleanTranslation(translated)
		if translated == "" {
			err = errors.New("empty translation")
		}
	}
	if err != nil {
		if !t.cfg.MarkFailures {
			return Result{}, fmt.Errorf("%s translate %s->%s: %w", t.svc.Name(), sourceLang, tgt, err)
		}
		log.Printf("[WARN] %s failed %s->%s, returning marked text: %v", t.svc.Name(), sourceLang, tgt, err)
		translated = fmt.Sprintf("[TRANSLATION FAILED %s→%s] %s", sourceLang, tgt, text)
	}

	return Result{TranslatedText: translated, DetectedSource: detected}, nil
}

// cleanTranslation trims whitespace and stray surrounding quotes the upstream sometimes adds.
func cleanTranslation(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`)
}
