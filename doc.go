// Package tessera is an in-memory playground for two-dimensional arrays:
// interchangeable storage layouts behind one capability table, and a
// transform engine that rotates, flips and transposes grids without ever
// knowing which layout backs them.
//
// 🚀 What is tessera?
//
//	A generic 2D array library plus the tooling around it:
//		• Storage variants: Dense (one flat row-major slice) and Blocked
//		  (an arena of blocksize×blocksize tiles with clipped edge tiles)
//		• Traversal orders: row-major, column-major, block-major and a
//		  per-variant default, all selectable at runtime
//		• Transforms: rotate 0/90/180/270, flip horizontal/vertical,
//		  transpose - one traversal of the source writes every element
//		  into its mapped destination cell
//		• Pixmaps: plain (P3) and raw (P6) codec over any grid variant
//
// ✨ Why choose tessera?
//
//   - One interface, many layouts - callers never downcast a grid
//   - Block-major traversal exists only where a block layout does; asking
//     anywhere else is a checked configuration error, never a crash
//   - Cache-aware by default - the 64K heuristic sizes tiles to fit
//   - Pure Go core - the library never logs and never touches the filesystem
//
// Under the hood, everything is organized under four packages:
//
//	grid/        — capability table, Dense & Blocked variants, orders
//	transform/   — geometric remapping engine with optional traversal timing
//	ppm/         — portable pixmap decode/encode on top of grid storage
//	cmd/tessera/ — the transformer CLI: pixmap in, transformed pixmap out
//
// Quick ASCII example:
//
//	0 1 2        3 0
//	3 4 5   =>   4 1
//	             5 2
//
//	a 3×2 grid rotated 90° clockwise becomes 2×3: the left column of the
//	source, read bottom to top, is the top row of the result.
//
// Dive into each package's doc.go for contracts, complexity and errors.
//
//	go get github.com/katalvlaran/tessera
package tessera
