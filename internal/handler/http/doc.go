// Package http implements the tube hub served to share-favorites
// participants.
//
// Every shared session is an in-process [transport.Hub] keyed by session id.
// Participants connect a websocket stream to join a session, then offer, list
// and accept tubes through the REST routes. Text frames written on the stream
// are broadcast to the tube members and delivered back as stream frames.
// Request tracing, access logging and response compression are handled by the
// middleware of this package.
package http
