// Package result encodes and decodes the flat solution wire format: for
// each real vehicle in order, the call IDs in route order (each appearing
// twice, 1-indexed), followed by a "0" separator; after the last real
// vehicle's "0", the outsourced calls (each appearing twice, 1-indexed).
package result
