// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package protocol implements the favorites sync wire format.
//
// Every message is a single text string: a one-letter command tag, a ':'
// delimiter and a command-specific JSON payload.
//
//	F:{"favorites":{"org.example.Foo 1":true}}   push favorites
//	f:["Alice","#FF0000,#0000FF"]                push identity
//
// Messages are decoded once at the transport boundary into the closed
// [Message] type. Tags outside the known set decode into [Unknown] so the
// caller decides how to report them.
package protocol
