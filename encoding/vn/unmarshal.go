package vn

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedDocument is returned when the inflated text is not valid
// JSON or the mandatory top-level path data.engine_snapshot.stroke_components
// is absent. It is fatal for the whole render pass.
var ErrMalformedDocument = errors.New("vn: malformed document")

// Unmarshal parses the inflated text payload into a Document.
//
// Parsing is deliberately asymmetric: the top-level shape is strict,
// while per-element gaps (missing optional fields, unrecognized shape
// variants) are tolerated and simply reduce the renderable content.
func Unmarshal(text []byte) (*Document, error) {
	var env envelope
	if err := json.Unmarshal(text, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	if env.Data == nil || env.Data.EngineSnapshot == nil || env.Data.EngineSnapshot.StrokeComponents == nil {
		return nil, fmt.Errorf("%w: missing data.engine_snapshot.stroke_components", ErrMalformedDocument)
	}

	doc := &Document{
		Version:    env.Version,
		Components: *env.Data.EngineSnapshot.StrokeComponents,
	}
	return doc, nil
}

// UnmarshalJSON decodes a color, defaulting a missing alpha channel to
// fully opaque.
func (c *Color) UnmarshalJSON(data []byte) error {
	var raw struct {
		R float32  `json:"r"`
		G float32  `json:"g"`
		B float32  `json:"b"`
		A *float32 `json:"a"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.R, c.G, c.B = raw.R, raw.G, raw.B
	if raw.A != nil {
		c.A = *raw.A
	} else {
		c.A = DefaultAlpha
	}
	return nil
}
