// Package dashdoc converts a locally mirrored HTML documentation tree into a
// Dash docset. It rewrites each page to strip navigation chrome, extracts a
// flat index of named entries with in-page anchors, and stores that index in
// a SQLite database next to the rewritten pages.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, wget/).
package dashdoc
