// Package feed fetches and parses the transit agency's live vehicle-position
// feed.
//
// LTC publishes GTFS-Realtime VehiclePositions in two encodings: the standard
// protobuf FeedMessage and a JSON rendition of the same schema. The client
// detects the encoding per response and produces a Snapshot either way.
//
// Every field in the feed is untrusted. Records are validated independently;
// a record with an implausible coordinate or no usable identifier is dropped
// without failing the fetch.
package feed
