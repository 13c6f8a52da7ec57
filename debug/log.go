package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/signadot/oval/encode"
	"github.com/signadot/oval/ir"
)

type Tree struct{ *ir.Node }

func (y Tree) String() string {
	x := y.Node
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x, buf, encode.EncodeWire(true)); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", x)
	}
	return strings.TrimSpace(buf.String())
}

// Logf writes to stderr, rendering *ir.Node arguments in the wire form.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = Tree{x}.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
