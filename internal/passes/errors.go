package passes

import "fmt"

// UnsupportedFeatureError is raised (via panic, recovered by translate.Run)
// when the input IR uses a construct outside the documented supported
// subset — vector SIMD beyond element-wise use, exception-handling
// intrinsics, coroutine intrinsics — per spec.md §7's "Unsupported IR
// feature" error kind: abort with a message naming the instruction and
// function.
type UnsupportedFeatureError struct {
	Function  string
	Construct string
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("unsupported IR feature in function %q: %s", e.Function, e.Construct)
}

func unsupported(funcName, construct string) {
	panic(&UnsupportedFeatureError{Function: funcName, Construct: construct})
}
