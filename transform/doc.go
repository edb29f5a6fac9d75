// Package transform performs geometric remapping of grids: rotation by
// right-angle multiples, horizontal and vertical flips, and transposition.
//
// What:
//
//   - Op names one operation, built by Rotate, Flip or Transpose.
//   - Apply allocates a destination through the source grid's own
//     capability table, drives one traversal of the source, and writes each
//     element into its mapped destination cell.
//   - The traversal order is selectable (WithOrder) and independent of the
//     mapping: every source cell lands in exactly one destination cell.
//   - WithTiming measures the traversal alone; allocation and validation
//     sit outside the measured interval.
//
// Why:
//
//   - Image orientation: rotate or mirror pixel rasters regardless of the
//     storage layout behind them.
//   - Cache experiments: the same remapping driven row-, column- or
//     block-major shows how traversal order interacts with layout.
//
// Complexity:
//
//   - Apply: O(W×H) time, O(W×H) destination memory.
//   - Dims: O(1).
//
// Errors:
//
//   - ErrBadAngle: rotation angle not one of 0, 90, 180, 270.
//   - ErrBadAxis: flip axis not Horizontal or Vertical.
//   - ErrBadOp: zero or unknown Op value.
//   - grid.ErrOrderUnsupported: selected traversal order absent on the
//     source's variant.
//
// See examples in example_test.go.
package transform
