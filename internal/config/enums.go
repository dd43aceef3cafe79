package config

import (
	"fmt"
	"strings"
)

// Layer selects the layer-shell surface a window is placed on.
type Layer int

const (
	LayerBackground Layer = iota
	LayerBottom
	LayerTop
	LayerOverlay
)

func ParseLayer(s string) (Layer, error) {
	switch strings.ToLower(s) {
	case "background":
		return LayerBackground, nil
	case "bottom":
		return LayerBottom, nil
	case "top", "":
		return LayerTop, nil
	case "overlay":
		return LayerOverlay, nil
	}
	return 0, fmt.Errorf("unknown layer %q", s)
}

func (l Layer) String() string {
	switch l {
	case LayerBackground:
		return "background"
	case LayerBottom:
		return "bottom"
	case LayerOverlay:
		return "overlay"
	default:
		return "top"
	}
}

// Anchor pins a window edge; several anchors combine (e.g. top,left).
type Anchor int

const (
	AnchorTop Anchor = iota
	AnchorBottom
	AnchorLeft
	AnchorRight
	AnchorCenter
)

func ParseAnchor(s string) (Anchor, error) {
	switch strings.ToLower(s) {
	case "top":
		return AnchorTop, nil
	case "bottom":
		return AnchorBottom, nil
	case "left":
		return AnchorLeft, nil
	case "right":
		return AnchorRight, nil
	case "center":
		return AnchorCenter, nil
	}
	return 0, fmt.Errorf("unknown anchor %q", s)
}

// ParseAnchors splits a comma-separated anchor list.
func ParseAnchors(s string) ([]Anchor, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var anchors []Anchor
	for _, part := range strings.Split(s, ",") {
		a, err := ParseAnchor(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		anchors = append(anchors, a)
	}
	return anchors, nil
}

// WrapMode controls line wrapping of row labels.
type WrapMode int

const (
	WrapNone WrapMode = iota
	WrapWord
	WrapInherit
)

func ParseWrapMode(s string) (WrapMode, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return WrapNone, nil
	case "word":
		return WrapWord, nil
	case "inherit":
		return WrapInherit, nil
	}
	return 0, fmt.Errorf("unknown line-wrap mode %q", s)
}

// TextOutputMode decides where emoji mode delivers the selected glyph.
type TextOutputMode int

const (
	OutputClipboard TextOutputMode = iota
	OutputStdout
)

func ParseTextOutputMode(s string) (TextOutputMode, error) {
	switch strings.ToLower(s) {
	case "clipboard", "":
		return OutputClipboard, nil
	case "stdout":
		return OutputStdout, nil
	}
	return 0, fmt.Errorf("unknown text output mode %q", s)
}
