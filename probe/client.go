package probe

import (
	"context"
	"fmt"
	"io"

	"go.lsp.dev/jsonrpc2"

	"github.com/signadot/oval/ir"
)

// Client calls a probe server.  It is itself a Probe, so a remote
// registry may be registered in a local one.
type Client struct {
	conn jsonrpc2.Conn
}

// NewClient starts a client over rwc.  Requests from the server are
// answered with method not found.
func NewClient(ctx context.Context, rwc io.ReadWriteCloser) *Client {
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	conn.Go(ctx, jsonrpc2.MethodNotFoundHandler)
	return &Client{conn: conn}
}

func (c *Client) Collect(ctx context.Context, obj *ir.Node) ([]*ir.Node, error) {
	s, err := toWire(obj)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadObject, err)
	}
	res := &CollectResult{}
	if _, err := c.conn.Call(ctx, MethodCollect, &CollectParams{Object: s}, res); err != nil {
		return nil, fromWireError(err)
	}
	return decodeItems(res.Items)
}

// Objects lists the object names the server has probes for.
func (c *Client) Objects(ctx context.Context) ([]string, error) {
	res := &ListResult{}
	if _, err := c.conn.Call(ctx, MethodList, nil, res); err != nil {
		return nil, fromWireError(err)
	}
	return res.Objects, nil
}

// Close closes the stream and waits for the read loop to finish.
func (c *Client) Close() error {
	err := c.conn.Close()
	<-c.conn.Done()
	return err
}
