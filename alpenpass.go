// Package alpenpass reports the current state of Swiss alpine mountain passes.
// It scrapes the pass overview published on alpen-paesse.ch, extracts name,
// route, status, temperature and last-update label for every pass, and keeps
// the latest snapshot per pass for consumers such as sensors or dashboards.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, nats/).
package alpenpass
