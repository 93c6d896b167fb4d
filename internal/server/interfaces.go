// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the transport server.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT is received and then
	// shuts down gracefully.
	RunServer()

	// Run serves until ctx is cancelled or the listener fails.
	Run(ctx context.Context) error

	// Shutdown stops accepting requests, waits for in-flight ones within the
	// configured timeout and releases resources. Repeated calls are no-ops.
	Shutdown()
}
