package probe

import (
	"fmt"
	"io"
)

// DefaultFibonacciIndex is the index the Fibonacci demo computes.
const DefaultFibonacciIndex int64 = 5

// Fibonacci computes the nth Fibonacci number by naive double recursion.
// It is not memoized: every call above the base case makes two more.
func Fibonacci(n int64) int64 {
	if n <= 1 {
		return n
	}

	return Fibonacci(n-1) + Fibonacci(n-2)
}

// PrintFibonacci computes the nth Fibonacci number and prints it on its own line.
func PrintFibonacci(w io.Writer, n int64) (int64, error) {
	result := Fibonacci(n)

	if _, err := fmt.Fprintln(w, result); err != nil {
		return result, fmt.Errorf("print fibonacci(%d): %w", n, err)
	}

	return result, nil
}
