// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides 64-byte (cache line) aligned word storage for packed bit containers.
package mem
