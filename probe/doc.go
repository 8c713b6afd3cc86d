// Package probe implements a fixed catalogue of behavioral probes:
// exception dispatch with guaranteed cleanup, naive recursive Fibonacci
// and canonical class-name formatting.
package probe
