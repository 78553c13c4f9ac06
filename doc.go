// Package lvalign aligns sample-by-feature tables with their sample metadata
// and feature hierarchies before downstream statistics, and generates the
// structured random data used to test such pipelines.
//
// What is in the module?
//
//		• align/     numeric coercion, Match (rows vs metadata), MatchTips
//		             (columns vs tree tips), MatchAll, RenameInternalNodes
//		• simulate/  BlockDiagonal, BandDiagonal, RandomTree
//		• frame/     labeled mixed-type Table with reindexing and Dense export
//		• tree/      rooted ordered tree, Newick codec, Clone, Shear/Prune
//		• matrix/    row-major Dense float64 matrix and small numeric helpers
//
// Guarantees
//
//   - Inputs are never mutated, except by RenameInternalNodes(WithInPlace()).
//   - Structural failures share one sentinel, align.ErrStructuralMismatch.
//   - Random output is reproducible: every generator draws from an explicit,
//     seeded math/rand/v2 source.
//   - Traversals use explicit queues and stacks, so tree depth is bounded by
//     memory, not by the goroutine stack.
//
// Quick example:
//
//	tbl := frame.MustFromRows(
//		[]string{"s1", "s2"}, []string{"a", "b", "d"},
//		[][]float64{{0, 0, 1}, {2, 3, 4}})
//	t := tree.MustParse("(((a,b)f,c),d)r;")
//	out, pruned, err := align.MatchTips(tbl, t)
//	// pruned: (d,(a,b)f)r;   out columns: d, a, b
//
//	go get github.com/katalvlaran/lvalign
package lvalign
