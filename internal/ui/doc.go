package ui

// Package ui contains the Fyne front end: a theme that draws its icons from
// the density matched icon set, and the about page listing third-party
// licenses. All UI strings are localized via Localization.
