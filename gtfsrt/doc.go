// Package gtfsrt fetches and decodes GTFS-Realtime protobuf feeds.
//
// Fetching and decoding are separate steps: Fetch returns the raw payload of
// one feed endpoint, Decode turns a payload into a FeedMessage. Transport and
// decode failures are both classified as ErrFeedUnavailable so that a failing
// feed group degrades to an empty contribution instead of failing the run.
package gtfsrt
