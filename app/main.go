package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	log "github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

// Options defines the command line commands
type Options struct {
	Server    ServerCmd    `command:"server" description:"run translation server with web UI"`
	Translate TranslateCmd `command:"translate" description:"translate text with a running server"`
	Theme     ThemeCmd     `command:"theme" description:"show, toggle or set the theme preference"`
}

var revision = "unknown"

func main() {
	fmt.Fprintf(os.Stderr, "traductor %s\n", revision)

	if err := loadEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	var opts Options
	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			p.WriteHelp(os.Stderr)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// loadEnv loads variables from the given .env files, missing files are skipped.
// Variables already set in the environment are not overridden.
func loadEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// setupLogs configures lgr; extra options are applied after the defaults.
func setupLogs(debug bool, extra ...log.Option) io.Writer {
	logOpts := []log.Option{log.Msec, log.LevelBraces}
	if debug {
		logOpts = []log.Option{log.Debug, log.CallerFunc, log.CallerPkg, log.CallerFile, log.Msec, log.LevelBraces}
	}
	log.Setup(append(logOpts, extra...)...)
	return os.Stdout
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			switch sig {
			case syscall.SIGQUIT:
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
			case syscall.SIGTERM, syscall.SIGINT:
				cancel()
			}
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}

// validateBaseURL normalizes base URL: must start with "/", trailing slash is dropped, "/" means none.
func validateBaseURL(baseURL string) (string, error) {
	if baseURL == "" {
		return "", nil
	}
	if !strings.HasPrefix(baseURL, "/") {
		return "", fmt.Errorf("base URL %q must start with /", baseURL)
	}
	return strings.TrimRight(baseURL, "/"), nil
}
