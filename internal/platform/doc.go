package platform

// Package platform contains OS integration helpers: directory handling,
// file name derivation and revealing saved files in the system file manager.
