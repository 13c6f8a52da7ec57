package probe

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signadot/oval/encode"
	"github.com/signadot/oval/ir"
	"github.com/signadot/oval/parse"
)

const recorded = `
; captured on a test host
(rpminfo_item (name "httpd") (version "2.4.6"))
(rpminfo_item (name "kernel") (version "3.10.0"))
((file_item :id "1") (path "/etc/passwd"))
`

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	y, err := parse.ParseString(s)
	require.NoError(t, err)
	return y
}

func wire(t *testing.T, ys []*ir.Node) []string {
	t.Helper()
	res := make([]string, len(ys))
	for i, y := range ys {
		res[i] = encode.MustString(y, encode.EncodeWire(true))
	}
	return res
}

func quietLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReplay(t *testing.T) {
	r, err := LoadReplay([]byte(recorded))
	require.NoError(t, err)
	assert.Equal(t, []string{"file_object", "rpminfo_object"}, r.Objects())

	ctx := context.Background()
	items, err := r.Collect(ctx, mustParse(t, `((rpminfo_object :id "oval:x:obj:1") (name "httpd"))`))
	require.NoError(t, err)
	assert.Equal(t, []string{`(rpminfo_item (name "httpd") (version "2.4.6"))`}, wire(t, items))

	items, err = r.Collect(ctx, mustParse(t, `(rpminfo_object)`))
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = r.Collect(ctx, mustParse(t, `(rpminfo_object (name "nginx"))`))
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = r.Collect(ctx, mustParse(t, `(rpminfo_object ((version :operation "less than" :datatype "version") "3"))`))
	require.NoError(t, err)
	assert.Equal(t, []string{`(rpminfo_item (name "httpd") (version "2.4.6"))`}, wire(t, items))

	_, err = r.Collect(ctx, mustParse(t, `(rpminfo_object ((name :operation "pattern match") "("))`))
	assert.Error(t, err)

	_, err = r.Collect(ctx, mustParse(t, `(rpminfo_state (name "httpd"))`))
	assert.ErrorIs(t, err, ErrBadObject)
}

func TestReplayCollectCopies(t *testing.T) {
	r, err := LoadReplay([]byte(recorded))
	require.NoError(t, err)
	obj := mustParse(t, `(file_object (path "/etc/passwd"))`)
	items, err := r.Collect(context.Background(), obj)
	require.NoError(t, err)
	require.Len(t, items, 1)
	items[0].Name = "changed"

	items, err = r.Collect(context.Background(), obj)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "file_item", items[0].Name)
}

func TestLoadReplayErrors(t *testing.T) {
	_, err := LoadReplay([]byte(`(rpminfo_item (name "x")`))
	assert.ErrorIs(t, err, ErrReplay)
	_, err = LoadReplay([]byte(`(rpminfo_object (name "x"))`))
	assert.ErrorIs(t, err, ErrReplay)
	_, err = LoadReplay([]byte(`"loose"`))
	assert.ErrorIs(t, err, ErrReplay)
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	reg.Register("fail_object", ProbeFunc(func(context.Context, *ir.Node) ([]*ir.Node, error) {
		return nil, errors.New("boom")
	}))
	r, err := LoadReplay([]byte(recorded))
	require.NoError(t, err)
	r.Register(reg)
	assert.Equal(t, []string{"fail_object", "file_object", "rpminfo_object"}, reg.Names())

	ctx := context.Background()
	items, err := reg.Collect(ctx, mustParse(t, `(rpminfo_object (name "kernel"))`))
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = reg.Collect(ctx, mustParse(t, `(dpkginfo_object (name "x"))`))
	assert.ErrorIs(t, err, ErrNoProbe)
	_, err = reg.Collect(ctx, mustParse(t, `(fail_object)`))
	assert.ErrorIs(t, err, ErrProbe)
	_, err = reg.Collect(ctx, ir.FromAtom("x"))
	assert.ErrorIs(t, err, ErrBadObject)
	_, err = reg.Collect(ctx, nil)
	assert.ErrorIs(t, err, ErrBadObject)
}

func startServer(t *testing.T, ctx context.Context, reg *Registry) (*Client, <-chan error) {
	t.Helper()
	sc, cc := net.Pipe()
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, sc, reg, quietLog())
	}()
	return NewClient(ctx, cc), done
}

func waitServe(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	return nil
}

func TestClientServer(t *testing.T) {
	reg := NewRegistry()
	r, err := LoadReplay([]byte(recorded))
	require.NoError(t, err)
	r.Register(reg)
	reg.Register("fail_object", ProbeFunc(func(context.Context, *ir.Node) ([]*ir.Node, error) {
		return nil, errors.New("boom")
	}))

	ctx := context.Background()
	client, done := startServer(t, ctx, reg)

	objs, err := client.Objects(ctx)
	require.NoError(t, err)
	assert.Equal(t, reg.Names(), objs)

	items, err := client.Collect(ctx, mustParse(t, `((rpminfo_object :id "oval:x:obj:1") (name "httpd"))`))
	require.NoError(t, err)
	assert.Equal(t, []string{`(rpminfo_item (name "httpd") (version "2.4.6"))`}, wire(t, items))

	_, err = client.Collect(ctx, mustParse(t, `(dpkginfo_object)`))
	assert.ErrorIs(t, err, ErrNoProbe)
	assert.Contains(t, err.Error(), "dpkginfo_object")

	_, err = client.Collect(ctx, mustParse(t, `(fail_object)`))
	assert.ErrorIs(t, err, ErrProbe)
	assert.Contains(t, err.Error(), "boom")

	require.NoError(t, client.Close())
	assert.NoError(t, waitServe(t, done))
}

func TestClientAsProbe(t *testing.T) {
	remote := NewRegistry()
	r, err := LoadReplay([]byte(recorded))
	require.NoError(t, err)
	r.Register(remote)

	ctx := context.Background()
	client, done := startServer(t, ctx, remote)
	defer func() {
		client.Close()
		waitServe(t, done)
	}()

	local := NewRegistry()
	local.Register("file_object", client)
	items, err := local.Collect(ctx, mustParse(t, `(file_object (path "/etc/passwd"))`))
	require.NoError(t, err)
	assert.Equal(t, []string{`((file_item :id "1") (path "/etc/passwd"))`}, wire(t, items))
}

func TestServeCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	client, done := startServer(t, ctx, NewRegistry())
	defer client.Close()
	_, err := client.Objects(ctx)
	require.NoError(t, err)
	cancel()
	assert.NoError(t, waitServe(t, done))
}
