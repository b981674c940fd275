package model

import (
	"strings"
)

// Media type values as returned by the APOD API
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Picture represents one Astronomy Picture of the Day record.
// Fields mirror the APOD API response; the record is immutable once
// constructed and the UI only borrows it for the duration of a render pass.
type Picture struct {
	Title        string `json:"title"`
	Explanation  string `json:"explanation"`
	Date         string `json:"date"` // source-provided, not validated locally
	URL          string `json:"url"`
	HDURL        string `json:"hdurl,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	MediaType    string `json:"media_type"`
	Copyright    string `json:"copyright,omitempty"` // empty when public domain
}

// IsVideo returns true when the record points at a video source
func (p Picture) IsVideo() bool {
	return p.MediaType == MediaTypeVideo
}

// DisplayImageURL returns the URL the screen should render.
// Video records are shown through their extracted thumbnail frame.
func (p Picture) DisplayImageURL() string {
	if p.IsVideo() {
		return p.ThumbnailURL
	}
	return p.URL
}

// DownloadURL returns the URL the save action should transfer.
// The HD variant is preferred when the API provides one.
func (p Picture) DownloadURL() string {
	if !p.IsVideo() && p.HDURL != "" {
		return p.HDURL
	}
	return p.DisplayImageURL()
}

// DisplayTitle returns the title, falling back to the date for records
// published without one
func (p Picture) DisplayTitle() string {
	title := strings.TrimSpace(p.Title)
	if title != "" {
		return title
	}
	return p.Date
}

// NormalizedCopyright returns the attribution with embedded line breaks
// removed. The API wraps long attributions with literal newlines; these are
// removed, not replaced with spaces. The result may be empty.
func (p Picture) NormalizedCopyright() string {
	text := strings.ReplaceAll(p.Copyright, "\n", "")
	return strings.TrimSpace(text)
}
