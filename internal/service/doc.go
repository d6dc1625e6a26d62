// Package service implements the share-favorites activity: the session role
// controller deciding whether the local participant shares or joins, and the
// favorites sync protocol that pushes the sharer's favorites snapshot to every
// joiner and replaces the joiner's favorites with it.
//
// All state lives in one [Activity]. Transport signals, timers and presenter
// acknowledgements are posted to it as [Event] values and handled one at a
// time by [Activity.Dispatch] on the goroutine running [Activity.Run].
package service
