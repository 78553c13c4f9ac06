// SPDX-License-Identifier: MIT

// Package align reconciles a sample-by-feature table with its auxiliary
// structures before analysis: a sample metadata table and a feature tree.
//
// What
//
//   - CastToFloat: best-effort numeric coercion of table columns.
//   - Match: restrict table and metadata to their shared row labels.
//   - MatchTips: restrict table columns and tree tips to their shared
//     labels, pruning the tree and ordering columns by tip order.
//   - MatchAll: Match followed by MatchTips.
//   - RenameInternalNodes: deterministic level-order labels for internal
//     tree nodes.
//
// Match and MatchTips are separate code paths. Match only promises that both
// outputs carry the same row-label sequence; MatchTips promises that column j
// of the table is tip j of the tree.
//
// Ownership
//
// No operation modifies its inputs except RenameInternalNodes with
// WithInPlace, which renames the given tree and returns it.
//
// Errors
//
// Every structural failure (duplicate labels, nothing shared, a wrong-length
// names list) is reported as ErrStructuralMismatch, wrapped with the failing
// operation's name. Check with errors.Is.
//
// Logging
//
// Pass WithLogger to receive V(1) per-call summaries and V(2) per-column
// coercion decisions. The default logger discards everything.
package align
