// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter connects a participant to a remote tube hub.
//
// [NewHubTubes] returns a [transport.Tubes] backed by the hub's REST routes
// (offer, list and accept tubes, through resty) and by one websocket stream
// that carries tube signals and text frames. Error bodies of the hub are
// mapped back onto the transport sentinels by mapHTTPError so callers keep
// using [errors.Is] exactly as with the in-process hub.
package adapter
