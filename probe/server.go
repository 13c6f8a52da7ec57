package probe

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"os"

	"github.com/segmentio/encoding/json"
	"go.lsp.dev/jsonrpc2"

	"github.com/signadot/oval/debug"
)

// Server answers probe calls from a Registry.
type Server struct {
	Registry *Registry
	Log      *slog.Logger
}

// NewServer creates a server for reg.  A nil log is replaced by a JSON
// logger on stderr at the level named by OVAL_LOG_LEVEL; stdout is
// usually the stream itself.
func NewServer(reg *Registry, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: debug.LogLevel(),
		}))
	}
	return &Server{Registry: reg, Log: log}
}

// Serve runs a server for reg over rwc until the peer hangs up or ctx is
// done.
func Serve(ctx context.Context, rwc io.ReadWriteCloser, reg *Registry, log *slog.Logger) error {
	return NewServer(reg, log).Serve(ctx, rwc)
}

// Serve blocks while serving one connection.  rwc is closed on return.
func (s *Server) Serve(ctx context.Context, rwc io.ReadWriteCloser) error {
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	s.Log.Info("serving probes", "objects", s.Registry.Names())
	conn.Go(ctx, jsonrpc2.AsyncHandler(jsonrpc2.ReplyHandler(s.handle)))
	select {
	case <-conn.Done():
	case <-ctx.Done():
		conn.Close()
		<-conn.Done()
		s.Log.Info("probe server stopped", "reason", ctx.Err())
		return nil
	}
	err := conn.Err()
	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) || errors.Is(err, net.ErrClosed) {
		s.Log.Info("probe client hung up")
		return nil
	}
	s.Log.Error("probe connection failed", "error", err)
	return err
}

func (s *Server) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	if debug.Probe() {
		debug.Logf("probe request %s %s\n", req.Method(), string(req.Params()))
	}
	switch req.Method() {
	case MethodList:
		return reply(ctx, &ListResult{Objects: s.Registry.Names()}, nil)
	case MethodCollect:
		res, err := s.collect(ctx, req.Params())
		if err != nil {
			s.Log.Warn("collect failed", "error", err)
			return reply(ctx, nil, err)
		}
		return reply(ctx, res, nil)
	}
	s.Log.Debug("unknown method", "method", req.Method())
	return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
}

func (s *Server) collect(ctx context.Context, params []byte) (*CollectResult, error) {
	p := &CollectParams{}
	if err := json.Unmarshal(params, p); err != nil {
		return nil, jsonrpc2.Errorf(jsonrpc2.InvalidParams, "collect params: %v", err)
	}
	obj, err := fromWire(p.Object)
	if err != nil {
		return nil, jsonrpc2.Errorf(codeBadObject, "%v: %v", ErrBadObject, err)
	}
	items, err := s.Registry.Collect(ctx, obj)
	if err != nil {
		return nil, wireError(err)
	}
	ss, err := encodeItems(items)
	if err != nil {
		return nil, wireError(err)
	}
	s.Log.Debug("collected", "object", obj.Name, "items", len(ss))
	return &CollectResult{Items: ss}, nil
}
