package model

// Package model defines domain data structures used across the app: the
// picture-of-the-day record and the fetch lifecycle union the UI switches on.
// Structures are designed for direct rendering and exhaustive matching.
