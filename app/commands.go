package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/traductor/traductor/app/client"
	"github.com/traductor/traductor/app/enum"
	"github.com/traductor/traductor/app/i18n"
	"github.com/traductor/traductor/app/prefs"
	"github.com/traductor/traductor/app/server"
	"github.com/traductor/traductor/app/store"
	"github.com/traductor/traductor/app/translator"
	"github.com/traductor/traductor/app/validator"
)

// ServerCmd implements the server subcommand
type ServerCmd struct {
	DB     string `short:"d" long:"db" env:"TRADUCTOR_DB" default:"traductor.db" description:"preferences database URL (sqlite file or postgres://...)"`
	Locale string `long:"locale" env:"TRADUCTOR_LOCALE" default:"es" description:"web UI locale"`

	Server struct {
		Address        string        `long:"address" env:"ADDRESS" default:":5001" description:"server listen address"`
		ReadTimeout    time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
		WriteTimeout   time.Duration `long:"write-timeout" env:"WRITE_TIMEOUT" default:"30s" description:"write timeout"`
		BaseURL        string        `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy (e.g., /translator)"`
		BodySizeLimit  int64         `long:"body-limit" env:"BODY_LIMIT" default:"65536" description:"max request body size in bytes"`
		RequestsPerSec int64         `long:"rps" env:"RPS" default:"100" description:"max concurrent requests"`
	} `group:"server" namespace:"server" env-namespace:"TRADUCTOR_SERVER"`

	Translator struct {
		Provider          string `long:"provider" env:"PROVIDER" choice:"mymemory" choice:"google" default:"mymemory" description:"upstream translation provider"`
		MyMemoryEmail     string `long:"mymemory-email" env:"MYMEMORY_EMAIL" description:"email for higher MyMemory quota (optional)"`
		GoogleCredentials string `long:"google-credentials" env:"GOOGLE_CREDENTIALS" description:"google service account json file, empty for default credentials"`
		MarkFailures      bool   `long:"mark-failures" env:"MARK_FAILURES" description:"answer upstream failures with the marked original text instead of an error"`
	} `group:"translator" namespace:"translator" env-namespace:"TRADUCTOR_TRANSLATOR"`

	Debug bool `long:"dbg" env:"DEBUG" description:"debug mode"`

	ctx    context.Context
	cancel context.CancelFunc
}

// Execute runs the server command
func (s *ServerCmd) Execute(_ []string) error {
	setupLogs(s.Debug)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	if s.ctx == nil {
		s.ctx, s.cancel = context.WithCancel(context.Background())
		signals(s.cancel)
	}

	return s.run(s.ctx)
}

func (s *ServerCmd) run(ctx context.Context) error {
	baseURL, err := validateBaseURL(s.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	log.Printf("[INFO] starting traductor server on %s, provider %s", s.Server.Address, s.Translator.Provider)
	if baseURL != "" {
		log.Printf("[INFO] base URL: %s", baseURL)
	}

	bundle, err := i18n.NewBundle(s.Locale)
	if err != nil {
		return fmt.Errorf("failed to load messages: %w", err)
	}

	// initialize storage
	kvStore, err := store.New(s.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	cached, err := store.NewCached(kvStore, 100)
	if err != nil {
		_ = kvStore.Close()
		return fmt.Errorf("failed to initialize store cache: %w", err)
	}
	defer cached.Close()

	svc, err := s.service()
	if err != nil {
		return err
	}
	if c, ok := svc.(io.Closer); ok {
		defer func() {
			if err := c.Close(); err != nil {
				log.Printf("[WARN] %v", err)
			}
		}()
	}
	tr := translator.New(svc, translator.NewDetector(), translator.Config{MarkFailures: s.Translator.MarkFailures})

	// initialize and start HTTP server
	srv, err := server.New(tr, validator.NewService(), cached, bundle, server.Config{
		Address:         s.Server.Address,
		ReadTimeout:     s.Server.ReadTimeout,
		WriteTimeout:    s.Server.WriteTimeout,
		IdleTimeout:     30 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		Version:         revision,
		BaseURL:         baseURL,
		Locale:          s.Locale,
		BodySizeLimit:   s.Server.BodySizeLimit,
		RequestsPerSec:  s.Server.RequestsPerSec,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// service makes the configured upstream translation provider.
func (s *ServerCmd) service() (translator.Service, error) {
	switch s.Translator.Provider {
	case "", "mymemory":
		return translator.NewMyMemory(s.Translator.MyMemoryEmail), nil
	case "google":
		return translator.NewGoogle(s.Translator.GoogleCredentials), nil
	default:
		return nil, fmt.Errorf("unknown translation provider %q", s.Translator.Provider)
	}
}

// TranslateCmd implements the translate subcommand
type TranslateCmd struct {
	Endpoint    string        `short:"e" long:"endpoint" env:"TRADUCTOR_ENDPOINT" default:"http://127.0.0.1:5001" description:"translation server base URL"`
	Source      string        `short:"s" long:"source" default:"auto" description:"source language (auto, es, en, fr, de, pt)"`
	Target      string        `short:"t" long:"target" default:"en" description:"target language (es, en, fr, de, pt)"`
	Locale      string        `long:"locale" env:"TRADUCTOR_LOCALE" default:"es" description:"messages locale"`
	Timeout     time.Duration `long:"timeout" default:"15s" description:"request timeout"`
	Interactive bool          `short:"i" long:"interactive" description:"read lines from stdin, each line is translated"`
	Debug       bool          `long:"dbg" env:"DEBUG" description:"debug mode"`

	Args struct {
		Text []string `positional-arg-name:"text" description:"text to translate"`
	} `positional-args:"yes"`

	ctx context.Context
	in  io.Reader
	out io.Writer
}

// Execute runs the translate command
func (c *TranslateCmd) Execute(_ []string) error {
	// results go to stdout, keep logs away from them
	setupLogs(c.Debug, log.Out(os.Stderr), log.Err(os.Stderr))

	ctx := c.ctx
	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(context.Background())
		defer cancel()
		signals(cancel)
	}
	return c.run(ctx)
}

func (c *TranslateCmd) run(ctx context.Context) error {
	bundle, err := i18n.NewBundle(c.Locale)
	if err != nil {
		return fmt.Errorf("failed to load messages: %w", err)
	}
	api := client.NewHTTP(c.Endpoint, &http.Client{Timeout: c.Timeout})
	log.Printf("[DEBUG] translate via %s, %s->%s", api.URL(), c.Source, c.Target)

	form := &client.Values{From: c.Source, To: c.Target}
	h := client.New(api, form, &terminal{out: c.output()}, bundle.Localizer(c.Locale))

	if !c.Interactive {
		form.Input = strings.Join(c.Args.Text, " ")
		if outcome := h.Submit(ctx); outcome != client.OutcomeTranslated {
			return fmt.Errorf("translation %s", outcome)
		}
		return nil
	}

	in := c.in
	if in == nil {
		in = os.Stdin
	}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		form.Input = scanner.Text()
		h.Submit(ctx)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func (c *TranslateCmd) output() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}

// terminal is a client.Display printing every result on its own line.
type terminal struct {
	out io.Writer
}

func (t *terminal) SetResult(text string) {
	fmt.Fprintln(t.out, text)
}

// ThemeCmd implements the theme subcommand
type ThemeCmd struct {
	DB     string `short:"d" long:"db" env:"TRADUCTOR_DB" default:"traductor.db" description:"preferences database URL (sqlite file or postgres://...)"`
	Toggle bool   `long:"toggle" description:"flip the stored theme"`
	Set    string `long:"set" choice:"light" choice:"dark" description:"store the given theme"`
	Reset  bool   `long:"reset" description:"forget the stored theme, back to light"`
	Locale string `long:"locale" env:"TRADUCTOR_LOCALE" default:"es" description:"messages locale"`
	Debug  bool   `long:"dbg" env:"DEBUG" description:"debug mode"`

	out io.Writer
}

// Execute runs the theme command
func (c *ThemeCmd) Execute(_ []string) error {
	setupLogs(c.Debug, log.Out(os.Stderr), log.Err(os.Stderr))
	return c.run(context.Background())
}

func (c *ThemeCmd) run(ctx context.Context) error {
	if (c.Toggle && c.Set != "") || (c.Reset && (c.Toggle || c.Set != "")) {
		return errors.New("--toggle, --set and --reset can't be used together")
	}

	bundle, err := i18n.NewBundle(c.Locale)
	if err != nil {
		return fmt.Errorf("failed to load messages: %w", err)
	}
	kvStore, err := store.New(c.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer kvStore.Close()

	ts := prefs.NewThemeStore(kvStore, bundle.Localizer(c.Locale))
	out := c.out
	if out == nil {
		out = os.Stdout
	}
	view := &themeView{}

	switch {
	case c.Reset:
		if err = kvStore.Delete(ctx, store.NormalizeKey(prefs.ThemeKey)); err != nil && !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("failed to reset theme: %w", err)
		}
		_, err = ts.Init(ctx, view)
	case c.Set != "":
		theme, perr := enum.ParseTheme(c.Set)
		if perr != nil {
			return fmt.Errorf("invalid theme: %w", perr)
		}
		err = ts.Set(ctx, view, theme)
	case c.Toggle:
		_, err = ts.Toggle(ctx, view)
	default:
		_, err = ts.Init(ctx, view)
	}
	if err != nil {
		return fmt.Errorf("theme: %w", err)
	}

	fmt.Fprintln(out, view.label)
	return nil
}

// themeView is a prefs.View for the terminal, only the label is printed.
type themeView struct {
	label string
}

func (v *themeView) SetDark(bool) {}

func (v *themeView) SetToggle(bool) {}

func (v *themeView) SetLabel(label string) { v.label = label }
