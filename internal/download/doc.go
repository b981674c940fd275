package download

// Package download implements the fire-and-forget file transfer service. The
// UI hands it a URL and walks away; outcomes are logged and kept as internal
// records only.
