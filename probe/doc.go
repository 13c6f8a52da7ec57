// Package probe carries object trees to probes and item trees back.
//
// A probe answers an object, such as
//
//	((rpminfo_object :id "oval:x:obj:1") (name "httpd"))
//
// with the system characteristics items it matches.  Probes live behind a
// Registry keyed by object name.  Serve exposes a registry as a JSON-RPC 2
// endpoint over any io.ReadWriteCloser, and Client calls one.  Trees cross
// the connection in the single line wire form produced by encode.
//
// Starting and supervising probe processes is left to the caller, which
// hands Serve and NewClient the two ends of a stream.
package probe
