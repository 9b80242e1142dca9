// Package geo provides the spherical-earth math used to relate a rider's
// position to vehicle positions.
//
// It contains:
//   - The Coordinate type shared by the location and feed layers
//   - Great-circle distance (haversine)
//   - Initial bearing (azimuth) between two coordinates
//   - Bucketing of bearings into eight compass directions
package geo
