// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It wires the transport, the local replica, the sync event loop with its
// reachability monitor and the terminal UI into a single process lifecycle.
package client
