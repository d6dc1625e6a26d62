// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs one share-favorites participant.
//
// It wires the local stores, the connection to the tube hub, the console
// presenter and the activity into a single process lifecycle, and signals
// the shared or joined role requested by the configuration.
package client
