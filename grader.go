// Package grader checks an HTML page against a checklist of CSS selectors
// and reports which of them are present.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, rod/).
package grader
