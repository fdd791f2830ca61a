// Package editing hosts the create and edit screens of an order as in-memory
// sessions.
//
// A Session owns one order draft together with the catalog loaded when the
// session started. All mutations of a session are serialised; while a
// submission is in flight further mutations fail fast with ErrSessionBusy.
// A successful submission closes the session. A failed one leaves the draft as
// it was so the user can retry.
//
// The Registry indexes open sessions by id and discards sessions that have been
// idle for longer than a configured TTL.
package editing
