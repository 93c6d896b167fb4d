// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the ad board.
//
// It owns the server lifecycle: binding the listener, signal handling,
// graceful shutdown bounded by a timeout, and releasing resources such as
// the database pool once in-flight requests have finished.
package server
