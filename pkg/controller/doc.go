// Package controller contains the HTTP middlewares and handlers of the ops server.
//
// Middlewares:
//   - WithLogger: request ID propagation and access logging.
//
// Handlers:
//   - Health: reports whether a dependency answers a ping.
//   - PprofMux: net/http/pprof handlers, mounted under a debug path.
package controller
