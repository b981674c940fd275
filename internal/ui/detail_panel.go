package ui

import (
	"encoding/json"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/astroview/apod-viewer/internal/model"
)

// PanelSnapshot is the serialized form of the panel's expansion state. It is
// handed back in at construction so the flag survives view re-creation.
type PanelSnapshot struct {
	Expanded bool `json:"expanded"`
}

// Encode serializes the snapshot
func (ps PanelSnapshot) Encode() string {
	data, err := json.Marshal(ps)
	if err != nil {
		return ""
	}
	return string(data)
}

// DecodePanelSnapshot restores a snapshot from its serialized form.
// Anything unreadable yields the default collapsed state.
func DecodePanelSnapshot(raw string) PanelSnapshot {
	var snapshot PanelSnapshot
	if raw == "" {
		return snapshot
	}
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		log.Printf("Failed to decode panel snapshot %q: %v", raw, err)
		return PanelSnapshot{}
	}
	return snapshot
}

// DetailPanel reveals the record's secondary content (explanation and
// copyright) behind a single expansion flag. The flag is owned exclusively by
// this widget instance and mutated only through ToggleExpansion.
type DetailPanel struct {
	widget.BaseWidget

	localization *Localization
	picture      model.Picture
	expanded     bool

	// reveal runs 0..1 during the expand/collapse animation
	reveal float32

	toggleBtn        *widget.Button
	explanationLabel *widget.Label
	copyrightLabel   *widget.Label

	onToggle func(expanded bool)
}

// NewDetailPanel creates the panel for one record, restoring the expansion
// flag from the given snapshot
func NewDetailPanel(picture model.Picture, snapshot PanelSnapshot, localization *Localization) *DetailPanel {
	dp := &DetailPanel{
		localization: localization,
		picture:      picture,
		expanded:     snapshot.Expanded,
	}
	if dp.expanded {
		dp.reveal = 1
	}

	dp.ExtendBaseWidget(dp)
	dp.createUI()
	return dp
}

// SetOnToggle sets the callback invoked after every expansion change
func (dp *DetailPanel) SetOnToggle(callback func(expanded bool)) {
	dp.onToggle = callback
}

// Expanded returns the current expansion flag
func (dp *DetailPanel) Expanded() bool {
	return dp.expanded
}

// Snapshot returns the serializable expansion state
func (dp *DetailPanel) Snapshot() PanelSnapshot {
	return PanelSnapshot{Expanded: dp.expanded}
}

// ToggleExpansion flips the expansion flag and re-renders. Local mutation
// only: no I/O happens here.
func (dp *DetailPanel) ToggleExpansion() {
	dp.expanded = !dp.expanded
	dp.updateToggleButton()
	dp.animateReveal()

	log.Printf("Detail panel toggled: expanded=%v", dp.expanded)

	if dp.onToggle != nil {
		dp.onToggle(dp.expanded)
	}
}

// SecondaryVisible reports whether secondary content is part of the rendered
// output
func (dp *DetailPanel) SecondaryVisible() bool {
	return dp.expanded
}

// createUI creates the UI components
func (dp *DetailPanel) createUI() {
	dp.toggleBtn = widget.NewButton("", dp.ToggleExpansion)
	dp.toggleBtn.Importance = widget.LowImportance
	dp.updateToggleButton()

	dp.explanationLabel = widget.NewLabel(dp.picture.Explanation)
	dp.explanationLabel.Wrapping = fyne.TextWrapWord
	dp.explanationLabel.Alignment = fyne.TextAlignLeading

	// The copyright line is always rendered when expanded, even with an
	// empty attribution
	dp.copyrightLabel = widget.NewLabel(dp.copyrightText())
	dp.copyrightLabel.TextStyle = fyne.TextStyle{Italic: true}
	dp.copyrightLabel.Wrapping = fyne.TextWrapWord
}

// copyrightText builds the attribution line with line breaks stripped
func (dp *DetailPanel) copyrightText() string {
	return dp.localization.GetText(KeyCopyright) + CopyrightSeparator + dp.picture.NormalizedCopyright()
}

// updateToggleButton reflects the expansion flag in the affordance label
func (dp *DetailPanel) updateToggleButton() {
	if dp.expanded {
		dp.toggleBtn.SetText(IconCollapse + " " + dp.localization.GetText(KeyShowLess))
	} else {
		dp.toggleBtn.SetText(IconExpand + " " + dp.localization.GetText(KeyShowMore))
	}
}

// animateReveal grows or shrinks the secondary content. Best effort: when the
// driver cannot animate, the final layout is still applied without clipping.
func (dp *DetailPanel) animateReveal() {
	start := dp.reveal
	var target float32
	if dp.expanded {
		target = 1
	}

	anim := fyne.NewAnimation(ExpandAnimationDuration, func(progress float32) {
		dp.reveal = start + (target-start)*progress
		dp.Refresh()
	})
	anim.Curve = fyne.AnimationEaseInOut
	anim.Start()

	// Settle immediately as well so the new layout holds even if animation
	// frames never arrive (e.g. under the test driver)
	dp.reveal = target
	dp.Refresh()
}

// CreateRenderer creates the widget renderer
func (dp *DetailPanel) CreateRenderer() fyne.WidgetRenderer {
	separator := widget.NewSeparator()
	return &detailPanelRenderer{
		panel:     dp,
		separator: separator,
	}
}

// detailPanelRenderer renders the detail panel
type detailPanelRenderer struct {
	panel     *DetailPanel
	separator *widget.Separator
}

// secondaryHeight returns the current animated height of the secondary block
func (r *detailPanelRenderer) secondaryHeight(width float32) float32 {
	if !r.panel.expanded && r.panel.reveal == 0 {
		return 0
	}
	full := r.panel.explanationLabel.MinSize().Height + r.panel.copyrightLabel.MinSize().Height
	return full * r.panel.reveal
}

// Layout arranges the components
func (r *detailPanelRenderer) Layout(size fyne.Size) {
	toggleHeight := r.panel.toggleBtn.MinSize().Height
	r.panel.toggleBtn.Resize(fyne.NewSize(size.Width, toggleHeight))
	r.panel.toggleBtn.Move(fyne.NewPos(0, 0))

	r.separator.Resize(fyne.NewSize(size.Width, r.separator.MinSize().Height))
	r.separator.Move(fyne.NewPos(0, toggleHeight))

	y := toggleHeight + r.separator.MinSize().Height
	explanationHeight := r.panel.explanationLabel.MinSize().Height
	r.panel.explanationLabel.Resize(fyne.NewSize(size.Width, explanationHeight))
	r.panel.explanationLabel.Move(fyne.NewPos(0, y))

	r.panel.copyrightLabel.Resize(fyne.NewSize(size.Width, r.panel.copyrightLabel.MinSize().Height))
	r.panel.copyrightLabel.Move(fyne.NewPos(0, y+explanationHeight))
}

// MinSize returns the minimum size for the current reveal state
func (r *detailPanelRenderer) MinSize() fyne.Size {
	width := r.panel.toggleBtn.MinSize().Width
	if w := r.panel.explanationLabel.MinSize().Width; w > width {
		width = w
	}

	height := r.panel.toggleBtn.MinSize().Height + r.separator.MinSize().Height
	height += r.secondaryHeight(width)

	return fyne.NewSize(width, height)
}

// Refresh refreshes the renderer
func (r *detailPanelRenderer) Refresh() {
	if r.panel.expanded || r.panel.reveal > 0 {
		r.panel.explanationLabel.Show()
		r.panel.copyrightLabel.Show()
	} else {
		r.panel.explanationLabel.Hide()
		r.panel.copyrightLabel.Hide()
	}

	r.panel.toggleBtn.Refresh()
	r.panel.explanationLabel.Refresh()
	r.panel.copyrightLabel.Refresh()
}

// Objects returns the rendered objects
func (r *detailPanelRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{
		r.panel.toggleBtn,
		r.separator,
		r.panel.explanationLabel,
		r.panel.copyrightLabel,
	}
}

// Destroy cleans up the renderer
func (r *detailPanelRenderer) Destroy() {}
