package probe

import (
	"errors"
	"fmt"

	"go.lsp.dev/jsonrpc2"

	"github.com/signadot/oval/encode"
	"github.com/signadot/oval/ir"
	"github.com/signadot/oval/parse"
)

const (
	MethodCollect = "probe/collect"
	MethodList    = "probe/list"
)

// error codes in the JSON-RPC implementation defined server range.
const (
	codeNoProbe   jsonrpc2.Code = -32010
	codeProbe     jsonrpc2.Code = -32011
	codeBadObject jsonrpc2.Code = -32012
)

type CollectParams struct {
	Object string `json:"object"`
}

type CollectResult struct {
	Items []string `json:"items"`
}

type ListResult struct {
	Objects []string `json:"objects"`
}

func toWire(node *ir.Node) (string, error) {
	return encode.WireString(node)
}

func fromWire(s string) (*ir.Node, error) {
	return parse.ParseString(s)
}

func encodeItems(items []*ir.Node) ([]string, error) {
	res := make([]string, 0, len(items))
	for i, item := range items {
		s, err := toWire(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		res = append(res, s)
	}
	return res, nil
}

func decodeItems(ss []string) ([]*ir.Node, error) {
	res := make([]*ir.Node, 0, len(ss))
	for i, s := range ss {
		item, err := fromWire(s)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		res = append(res, item)
	}
	return res, nil
}

// wireError turns a registry error into a response error whose code the
// client maps back to a sentinel.
func wireError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNoProbe):
		return jsonrpc2.NewError(codeNoProbe, err.Error())
	case errors.Is(err, ErrBadObject):
		return jsonrpc2.NewError(codeBadObject, err.Error())
	case errors.Is(err, ErrProbe):
		return jsonrpc2.NewError(codeProbe, err.Error())
	}
	return jsonrpc2.NewError(jsonrpc2.InternalError, err.Error())
}

// remoteError keeps the server's message and unwraps to the sentinel
// named by the response code.
type remoteError struct {
	msg  string
	kind error
}

func (e *remoteError) Error() string { return e.msg }
func (e *remoteError) Unwrap() error { return e.kind }

func fromWireError(err error) error {
	var rpcErr *jsonrpc2.Error
	if !errors.As(err, &rpcErr) {
		return err
	}
	switch rpcErr.Code {
	case codeNoProbe:
		return &remoteError{msg: rpcErr.Message, kind: ErrNoProbe}
	case codeBadObject:
		return &remoteError{msg: rpcErr.Message, kind: ErrBadObject}
	case codeProbe:
		return &remoteError{msg: rpcErr.Message, kind: ErrProbe}
	}
	return err
}
