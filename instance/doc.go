// Package instance loads point sets from YAML (or JSON) files.
//
// A file lists the points in node order and, for the path variant, the
// two endpoints:
//
//	name: square
//	points:
//	  - [0, 0]
//	  - [1, 0]
//	  - [1, 1]
//	  - [0, 1]
//	path: {s: 0, t: 2}
//
// Fingerprint identifies an instance by its points and endpoints, so
// results can be cached across renames.
package instance
