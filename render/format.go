package render

import (
	"io"
	"strings"
)

// Render format names accepted by New.
const (
	FormatNone    = "none"
	FormatASCII   = "ascii"
	FormatGeoJSON = "geojson"
	FormatProto   = "proto"
)

// New returns the renderer for format writing to w. FormatNone yields nil.
func New(format string, w io.Writer) (Renderer, error) {
	switch strings.ToLower(format) {
	case "", FormatNone:
		return nil, nil
	case FormatASCII:
		return NewASCII(w), nil
	case FormatGeoJSON:
		return NewGeoJSON(w), nil
	case FormatProto:
		return NewProtoFrames(w), nil
	default:
		return nil, unknownFormat(format)
	}
}
