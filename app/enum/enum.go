// Package enum defines the small closed value sets used across the app: UI theme and language codes.
package enum

//go:generate go run github.com/go-pkgz/enum@latest -type theme -lower
type theme int

const (
	themeLight theme = iota
	themeDark
)

//go:generate go run github.com/go-pkgz/enum@latest -type lang -lower
type lang int

// langAuto asks the backend to detect the source language.
const (
	langAuto lang = iota
	langES
	langEN
	langFR
	langDE
	langPT
)
