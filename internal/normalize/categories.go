// Eventdisc - Local Event Aggregation and Discovery
// Copyright 2026 Minh Lu (minhlu99)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/minhlu99/local-event-aggregator-discovery-sub000

package normalize

// Provider segment IDs for the five top-level classifications. The
// provider's taxonomy shares one opaque prefix; only the trailing
// characters differ.
const (
	SegmentMusicID         = "KZFzniwnSyZfZ7v7nJ"
	SegmentSportsID        = "KZFzniwnSyZfZ7v7nE"
	SegmentArtsTheatreID   = "KZFzniwnSyZfZ7v7na"
	SegmentFilmID          = "KZFzniwnSyZfZ7v7nn"
	SegmentMiscellaneousID = "KZFzniwnSyZfZ7v7n1"
)

// segmentNames maps the five known segment IDs to display names.
var segmentNames = map[string]string{
	SegmentMusicID:         "Music",
	SegmentSportsID:        "Sports",
	SegmentArtsTheatreID:   "Arts & Theatre",
	SegmentFilmID:          "Film",
	SegmentMiscellaneousID: "Miscellaneous",
}

// CategoryDisplayName resolves a segment ID to its display name.
// Unknown non-empty IDs render as "Category <last-4-chars>" so the UI
// always has something printable.
func CategoryDisplayName(id string) string {
	if name, ok := segmentNames[id]; ok {
		return name
	}
	if id == "" {
		return ""
	}
	tail := id
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	return "Category " + tail
}

// KnownSegmentID reports whether id is one of the five known segments.
func KnownSegmentID(id string) bool {
	_, ok := segmentNames[id]
	return ok
}
