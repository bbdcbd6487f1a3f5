// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package eventloop keeps the local replica of every share in step with the
// server by polling share events.
//
// A [SyncEventLoop] is driven by two kinds of triggers: its own ticker (armed
// by Start) and ForceSync calls from the host, e.g. pull-to-refresh. Both go
// through the same guard, so at most one pass runs at a time. A pass:
//
//  1. loads the cached and the remote share directory concurrently;
//  2. force-refreshes the key of every share that is new to the cache;
//  3. drains the event backlog of each remote share, batch by batch, until
//     the server stops reporting pending events.
//
// Progress is reported through a closed set of [Event] values delivered to
// subscribed observers. Every trigger ends in exactly one of PassSkipped,
// PassFinished or PassFailed, except a pass cancelled by Stop which ends
// silently.
//
// Local shares that disappeared remotely are left alone; removing them is
// the share repository's job.
package eventloop
