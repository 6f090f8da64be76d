// Package refdbm generalises package dbm to multiple reference clocks, one
// per process cluster, enabling the local-time / partial-order zone
// semantics of spec.md §4.2: synchronisation, per-cluster time elapse, and
// sync-aware zone inclusion.
package refdbm
