package libdiff

import (
	"fmt"

	"github.com/signadot/tony-coding/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatch returns the JSON merge patch (RFC 7386) taking from to to.
func MergePatch(from, to *ir.Node) (*ir.Node, error) {
	a, err := ir.ToJSON(from)
	if err != nil {
		return nil, err
	}
	b, err := ir.ToJSON(to)
	if err != nil {
		return nil, err
	}
	d, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("could not create merge patch: %w", err)
	}
	return ir.FromJSON(d)
}

// ApplyMergePatch applies a JSON merge patch to doc.
func ApplyMergePatch(doc, patch *ir.Node) (*ir.Node, error) {
	a, err := ir.ToJSON(doc)
	if err != nil {
		return nil, err
	}
	p, err := ir.ToJSON(patch)
	if err != nil {
		return nil, err
	}
	d, err := jsonpatch.MergePatch(a, p)
	if err != nil {
		return nil, fmt.Errorf("could not apply merge patch: %w", err)
	}
	return ir.FromJSON(d)
}
