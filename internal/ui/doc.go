package ui

// Package ui contains the Fyne-based user interface for the app. It projects
// the fetch lifecycle onto one of three render branches, hosts the expandable
// detail panel, and wires the fire-and-forget download action to its
// collaborators. All user-visible strings are localized via Localization.
