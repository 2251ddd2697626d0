// Package codec reads knapsack instances and writes solutions in the plain
// text exchange format.
//
// Input (Decode):
//
//	N K
//	v_0 w_0
//	...
//	v_{N-1} w_{N-1}
//
// Tokens are non-negative base-10 integers separated by blanks. Trailing
// whitespace and trailing blank lines are accepted; anything else after the
// N item lines is rejected.
//
// Output (Encode):
//
//	<value> <opt>
//	<taken_0> <taken_1> ... <taken_{N-1}>
//
// opt is 1 for a proven optimum, 0 otherwise; taken bits are in original
// id order.
//
// Open and ReadFile decompress by file extension: .gz (gzip), .zst (zstd)
// and .lz4 (LZ4 frame).
package codec
