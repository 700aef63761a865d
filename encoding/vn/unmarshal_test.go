package vn

import (
	"bytes"
	"compress/gzip"
	"errors"
	"testing"
)

const sampleDocument = `{
	"version": "1.4",
	"data": {
		"engine_snapshot": {
			"stroke_components": [
				{},
				{"stroke": {"brushstroke": {
					"start": {"point": {"x": 1, "y": 2}, "pressure": 0.8},
					"lineto": [{"point": {"x": 3, "y": 4}}],
					"style": {"rough": {"stroke_width": 3, "color": {"r": 1, "g": 0, "b": 0}}}
				}}},
				{"stroke": {"shapestroke": {
					"shape": {"rect": {"half_extents": {"x": 5, "y": 6}, "transform": [1,0,0,0,1,0,10,20,1]}},
					"style": {"technic": {"stroke_width": 1, "color": {"r": 0, "g": 0, "b": 1, "a": 0.5}}}
				}}},
				{"stroke": {"textstroke": {
					"text": "hello",
					"transform": [1,0,0,0,1,0,40,50,1],
					"style": {"font_size": 24, "color": {"r": 0.2, "g": 0.2, "b": 0.2}}
				}}}
			]
		}
	}
}`

func TestUnmarshalDocument(t *testing.T) {
	doc, err := Unmarshal([]byte(sampleDocument))
	if err != nil {
		t.Fatal(err)
	}

	if doc.Version != "1.4" {
		t.Errorf("wrong version: %s", doc.Version)
	}
	if len(doc.Components) != 4 {
		t.Fatalf("expected 4 components, got %d", len(doc.Components))
	}

	if doc.Components[0].Stroke != nil {
		t.Error("empty component should have no stroke")
	}

	brush := doc.Components[1].Stroke.Brush
	if brush == nil {
		t.Fatal("expected a brushstroke")
	}
	if got := brush.Start.PressureOrDefault(); got != 0.8 {
		t.Errorf("start pressure: %v", got)
	}
	if got := brush.LineTo[0].PressureOrDefault(); got != DefaultPressure {
		t.Errorf("missing pressure should default to %v, got %v", DefaultPressure, got)
	}
	pen := brush.Style.Pen()
	if pen == nil || *pen.StrokeWidth != 3 {
		t.Error("rough sub-style should be the effective pen")
	}
	if pen.Color.A != DefaultAlpha {
		t.Errorf("missing alpha should default to %v, got %v", DefaultAlpha, pen.Color.A)
	}

	shape := doc.Components[2].Stroke.Shape
	if shape == nil || shape.Shape == nil || shape.Shape.Rect == nil {
		t.Fatal("expected a rect shape")
	}
	tr := shape.Shape.Rect.Transform
	if tr.TranslateX() != 10 || tr.TranslateY() != 20 {
		t.Errorf("wrong translation: %v %v", tr.TranslateX(), tr.TranslateY())
	}
	if a := shape.Style.Pen().Color.A; a != 0.5 {
		t.Errorf("explicit alpha should survive, got %v", a)
	}

	text := doc.Components[3].Stroke.Text
	if text == nil || text.Text != "hello" {
		t.Fatal("expected a textstroke")
	}
}

func TestUnmarshalMalformed(t *testing.T) {
	payloads := []string{
		`not json at all`,
		`{}`,
		`{"version": "1"}`,
		`{"version": "1", "data": {}}`,
		`{"version": "1", "data": {"engine_snapshot": {}}}`,
		`[]`,
	}
	for _, p := range payloads {
		if _, err := Unmarshal([]byte(p)); !errors.Is(err, ErrMalformedDocument) {
			t.Errorf("payload %q: expected ErrMalformedDocument, got %v", p, err)
		}
	}
}

func TestUnmarshalEmptyComponents(t *testing.T) {
	doc, err := Unmarshal([]byte(`{"version":"1","data":{"engine_snapshot":{"stroke_components":[]}}}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Components) != 0 {
		t.Errorf("expected no components, got %d", len(doc.Components))
	}
}

func TestUnmarshalIgnoresUnknownFields(t *testing.T) {
	payload := `{"version":"1","future":true,"data":{"engine_snapshot":{"stroke_components":[
		{"stroke":{"brushstroke":{"start":{"point":{"x":0,"y":0}},"later_addition":42}}}
	],"metadata":{"author":"x"}}}}`
	doc, err := Unmarshal([]byte(payload))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Components[0].Stroke.Brush == nil {
		t.Error("brushstroke should decode despite unknown fields")
	}
}

func TestInflate(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(sampleDocument)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	text, err := Inflate(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if string(text) != sampleDocument {
		t.Error("inflated text does not match the original payload")
	}
}

func TestInflateBadBytes(t *testing.T) {
	if _, err := Inflate([]byte("definitely not gzip")); !errors.Is(err, ErrDecompression) {
		t.Errorf("expected ErrDecompression, got %v", err)
	}
}
