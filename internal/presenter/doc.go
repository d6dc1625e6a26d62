// Package presenter renders a share-favorites participant on a terminal.
//
// [Console] stands in for the desktop activity window: it prints the waiting
// cursor, notices, revealed bundle icons and the roster of synced
// participants, and answers notices on its own. [LoggingSession] stands in
// for the desktop session and only records logout requests.
package presenter
