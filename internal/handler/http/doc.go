// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the ad board.
//
// It exposes route wiring, request handlers and middleware. Cross-cutting
// concerns such as header authentication, request tracing, access logging,
// panic recovery, body size limits and Prometheus metrics are handled here
// before requests are delegated to the service layer.
package http
