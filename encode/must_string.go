package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/oval/ir"
)

func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

// WireString returns the single line form of node.
func WireString(node *ir.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeWire(true)); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
