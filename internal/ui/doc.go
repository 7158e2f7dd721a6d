// Package ui contains the Fyne desktop view. It sends controller commands for
// user actions and renders controller messages on the UI thread. All strings
// are localized via Localization.
package ui
