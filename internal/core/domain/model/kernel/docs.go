// Package kernel contains shared value objects used across the sale domain:
// entity identifiers and fixed-point money helpers. Kernel types are
// immutable and safe for concurrent reads.
package kernel
