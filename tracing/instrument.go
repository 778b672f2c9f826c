package tracing

// Func is the general calling convention for instrumented functions:
// positional arguments, named arguments, one result, and an error.
type Func func(args []any, kwargs map[string]any) (any, error)

// Instrument wraps fn so that every invocation is recorded into trace. Each
// invocation allocates a fresh call ID when the call starts, attributes the
// innermost still-open call of this wrapper as its parent, and writes its
// record when fn returns normally. If fn fails, no record is written and the
// failure propagates unchanged; the ID allocated for the failed call stays
// consumed, leaving a gap in the trace.
//
// Each call to Instrument creates an independent active-call stack, so two
// separately instrumented functions never see each other's calls as parents
// even when they record into the same trace. Recursive and re-entrant calls
// from a single goroutine are the supported case; invoking one wrapper from
// multiple goroutines concurrently corrupts parent attribution.
func Instrument(trace *Trace, fn Func) Func {
	var stack []int

	return func(args []any, kwargs map[string]any) (any, error) {
		id := trace.NextID()

		parent := NoParent
		if len(stack) > 0 {
			parent = stack[len(stack)-1]
		}

		stack = append(stack, id)
		defer func() {
			stack = stack[:len(stack)-1]
		}()

		result, err := fn(args, kwargs)
		if err == nil {
			trace.Add(id, Record{
				Parent: parent,
				Args:   args,
				Kwargs: kwargs,
				Result: result,
			})
		}

		return result, err
	}
}

// Instrument1 wraps a unary function, the common shape for recursive code.
// To trace recursive calls, the function body must call through the wrapped
// variable:
//
//	var fib func(int) int
//	fib = tracing.Instrument1(trace, func(n int) int {
//		if n == 0 || n == 1 {
//			return n
//		}
//		return fib(n-1) + fib(n-2)
//	})
func Instrument1[A, R any](trace *Trace, fn func(A) R) func(A) R {
	wrapped := Instrument(trace, func(args []any, _ map[string]any) (any, error) {
		return fn(args[0].(A)), nil
	})

	return func(a A) R {
		result, _ := wrapped([]any{a}, nil)
		return result.(R)
	}
}

// Instrument1Err wraps a unary function that can fail. A call that returns a
// non-nil error leaves no record but still consumes a call ID.
func Instrument1Err[A, R any](trace *Trace, fn func(A) (R, error)) func(A) (R, error) {
	wrapped := Instrument(trace, func(args []any, _ map[string]any) (any, error) {
		return fn(args[0].(A))
	})

	return func(a A) (R, error) {
		result, err := wrapped([]any{a}, nil)
		if err != nil {
			var zero R
			return zero, err
		}

		return result.(R), nil
	}
}

// Instrument2 wraps a binary function.
func Instrument2[A, B, R any](trace *Trace, fn func(A, B) R) func(A, B) R {
	wrapped := Instrument(trace, func(args []any, _ map[string]any) (any, error) {
		return fn(args[0].(A), args[1].(B)), nil
	})

	return func(a A, b B) R {
		result, _ := wrapped([]any{a, b}, nil)
		return result.(R)
	}
}
