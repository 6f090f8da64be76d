// Package dbm implements the difference-bound-matrix algebra used by the
// zone graph to represent infinite sets of real-valued clock valuations
// symbolically.
//
// A DBM of dimension d encodes a convex zone over d-1 clocks plus the
// implicit reference clock 0 (always valued 0). Each cell D[i][j] is a pair
// (value, cmp) meaning "x_i - x_j cmp value"; the diagonal is fixed at
// (0, <=) and emptiness is signalled by D[0][0] < (0, <=).
//
// Under the hood this mirrors the dense, flat-buffer layout of
// github.com/katalvlaran/lvlath/matrix's Dense type, generalized from
// float64 to the integer-with-strictness Cell this domain needs, and
// reuses its fixed k->i->j Floyd-Warshall loop order for tightening.
//
//	go get github.com/ticktac-project/tchecker-go/dbm
package dbm
