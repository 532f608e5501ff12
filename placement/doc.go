// SPDX-License-Identifier: MIT

// Package placement chooses an initial logical→physical mapping that keeps
// frequently and early interacting qubits close on the device.
//
// Algorithm (beam search over partial mappings):
//
//  1. Complete device: every bijection is equally good, return identity.
//  2. Seed: the logical qubit with the highest two-qubit priority goes to the
//     physical qubit with the highest degree.
//  3. Expand: logical qubits are taken by descending priority. For every
//     partial mapping in the frontier:
//     - no placed logical neighbour: take the free site with the highest
//     degree (one child, score +0);
//     - otherwise score every free site adjacent to a site holding a logical
//     neighbour by the summed QPI weight to those neighbours (the QBN score)
//     and branch on every site tied at the maximum (score +max).
//  4. Select: the complete mapping with the largest cumulative score.
//
// Candidates live in a rank table keyed by the literal pair sequence. The
// frontier is capped by WithBeamWidth; when a round produces more children
// than the cap, the lowest-scoring ones are dropped (stable on ties).
//
// Ties: lowest logical id for priority, lowest physical id for degree and
// for the all-zero QBN collapse, frontier order for the final pick.
package placement
