// Package spafrag converts standalone HTML pages into fragments that can be
// embedded in a single-page-application shell. It strips the document
// wrapper markup, drops references to scripts the shell already loads, and
// relocates inline scripts into page-specific external files.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., regexp/, goquery/, yaml/).
package spafrag
