package fib

// Fib computes the n-th Fibonacci number by naive double recursion.
// The exponential runtime is intentional: the function exists as a
// deterministic workload for tooling sanity checks, and the checks
// depend on it behaving exactly like the textbook definition.
func Fib(n int) int {
	if n <= 1 {
		return n
	}
	return Fib(n-1) + Fib(n-2)
}
