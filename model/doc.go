// Package model defines the shared data types for layout reconstruction:
// page-local geometry and the typed block output produced for each page.
//
// All coordinates in this package use a top-left origin with Y increasing
// down the page. Sources that deliver bottom-left-origin coordinates (the
// usual rendering-engine convention) are flipped once at ingestion by the
// layout normalizer; nothing downstream ever sees the native space.
package model
