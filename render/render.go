// Package render implements the vecnote render pass: compressed file
// bytes in, assembled vector scene out.
//
// A pass is synchronous and owns all of its state; nothing survives
// the call, so renders of different sources may run concurrently. Any
// fatal failure aborts the whole pass and surfaces as a single error;
// there is no partial-scene recovery.
package render

import (
	"io/ioutil"

	"github.com/pkg/errors"

	"github.com/juruen/vecnote/encoding/vn"
	"github.com/juruen/vecnote/scene"
)

// Render decodes the compressed note bytes and assembles the scene.
// It is a pure function of its input: the same bytes always produce
// the same primitive list and viewport.
func Render(data []byte) (*scene.Scene, error) {
	text, err := vn.Inflate(data)
	if err != nil {
		return nil, err
	}

	doc, err := vn.Unmarshal(text)
	if err != nil {
		return nil, err
	}

	return Build(doc), nil
}

// Build converts an already parsed document into a scene. Elements are
// processed in document order; structurally incomplete elements
// contribute nothing.
func Build(doc *vn.Document) *scene.Scene {
	b := newBuilder()
	for _, c := range doc.Components {
		b.component(c)
	}
	return b.scene()
}

// RenderFile reads and renders the note at path.
func RenderFile(path string) (*scene.Scene, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can't read %s", path)
	}

	s, err := Render(data)
	if err != nil {
		return nil, errors.Wrapf(err, "can't render %s", path)
	}
	return s, nil
}
