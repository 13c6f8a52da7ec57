package ir

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
)

// ApplyJSONPatch applies an RFC 6902 patch to the JSON form of y and
// returns the resulting tree.  y is left untouched.  The result is
// validated, so a patch cannot introduce a list-valued attribute.
func ApplyJSONPatch(y *Node, patch []byte) (*Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	d, err := ToJSON(y)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return FromJSON(out)
}
