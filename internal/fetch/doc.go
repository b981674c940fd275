package fetch

// Package fetch retrieves the Astronomy Picture of the Day from the NASA API
// and exposes the lifecycle of that single fetch as an observable Resource
// value for the UI to project.
