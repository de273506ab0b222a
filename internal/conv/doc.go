// Package conv provides safe integer conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// when converting element counts, chunk counts and byte sizes between each other
// and between Go's int and fixed-width types.
//
// Use cases:
//   - Converting a requested element count into a chunk count and byte size
//   - Converting bitmap indices (uint64) back into vector indices (int)
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
