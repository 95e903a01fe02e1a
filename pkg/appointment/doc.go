// Package appointment defines the read-only appointment record and the data
// formatter that flattens it into display-ready template fields.
//
// The formatter never fails: unparseable date or time input produces the
// fixed sentinel strings "Invalid Date" and "Invalid Time" instead of an
// error, so rendering proceeds with a visible placeholder rather than
// aborting a notification over a malformed timestamp.
package appointment
