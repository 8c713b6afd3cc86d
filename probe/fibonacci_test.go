package probe_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagikazarmark/probes/probe"
)

func TestFibonacci(t *testing.T) {
	testCases := []struct {
		n        int64
		expected int64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{5, 5},
		{10, 55},
		{20, 6765},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, probe.Fibonacci(tc.n), "fibonacci(%d)", tc.n)
	}
}

func TestFibonacci_Recurrence(t *testing.T) {
	reference := []int64{0, 1}
	for i := 2; i <= 25; i++ {
		reference = append(reference, reference[i-1]+reference[i-2])
	}

	for n := int64(2); n <= 25; n++ {
		assert.Equal(t, probe.Fibonacci(n-1)+probe.Fibonacci(n-2), probe.Fibonacci(n))
		assert.Equal(t, reference[n], probe.Fibonacci(n))
	}
}

func TestPrintFibonacci(t *testing.T) {
	var buf bytes.Buffer

	result, err := probe.PrintFibonacci(&buf, probe.DefaultFibonacciIndex)
	require.NoError(t, err)

	assert.Equal(t, int64(5), result)
	assert.Equal(t, "5\n", buf.String())
}

func BenchmarkFibonacci(b *testing.B) {
	for range b.N {
		probe.Fibonacci(20)
	}
}
