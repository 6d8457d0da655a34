// Package gate decides whether an available update should produce a push
// notification.
//
// The only state kept between runs is a zero-byte marker file. Its presence
// means a notification for the current update episode was already delivered.
// An episode starts with the first run that sees an update and ends with the
// first run that does not; that run removes the marker.
//
//	| update | marker | action                                   |
//	|--------|--------|------------------------------------------|
//	| no     | no     | nothing                                  |
//	| no     | yes    | remove marker                            |
//	| yes    | no     | send; create marker only if it succeeded |
//	| yes    | yes    | suppress, no send                        |
//
// A rejected send leaves no marker, so the next run sends again. There is no
// backoff: the caller's schedule is the retry cadence.
//
// The existence check and the action that follows are not atomic. Two
// concurrent runs for the same package can both send.
package gate
