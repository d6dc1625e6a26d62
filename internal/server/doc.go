// Package server runs the tube hub: it serves the hub router over HTTP,
// waits for a stop signal and shuts down gracefully, closing the hijacked
// peer streams on the way out.
package server
