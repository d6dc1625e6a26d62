// Package transport defines how a participant reaches the other members of a
// shared session: named message channels ("tubes") that are offered, listed,
// accepted and then carry broadcast text.
//
// [Tubes] is the participant-side contract. [Hub] is an in-process session
// that hands out [Peer] values implementing it; the tube hub server wraps one
// Hub per session and the network adapter implements Tubes over HTTP and a
// websocket stream.
package transport
