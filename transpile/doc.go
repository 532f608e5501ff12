// SPDX-License-Identifier: MIT

// Package transpile chains the mapping stages into one call:
// placement.Place picks the initial mapping, ApplyLayout turns it into a
// device-wide layout, and router.Route inserts the swaps.
//
// Options.Trivial skips placement and starts from the identity layout, which
// is how the router alone is exercised against a precomputed mapping.
package transpile
