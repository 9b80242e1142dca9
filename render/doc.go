// Package render turns a ranked set of proximity results into the plain
// text listing shown to the rider.
package render
