// Package huffman builds Huffman coding trees from character frequencies.
// The tree is the classic greedy merge structure underlying
// minimum-redundancy prefix codes; this package stops at the tree itself
// and leaves code assignment and bit I/O to the caller.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
//
//	D. A. Huffman, "A Method for the Construction of Minimum-Redundancy
//	Codes", Proceedings of the IRE 40 (9), 1952
package huffman
