// Package websum provides a small web service that fetches a page, extracts
// its visible text and returns a short extractive summary.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, lsa/, http/).
package websum
