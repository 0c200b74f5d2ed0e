package converting

// Unwrap dereferences x, or returns the zero value when x is nil.
// Optional request parameters arrive as pointers and most call sites
// only care about the value.
func Unwrap[T any](x *T) (r T) {
	if x != nil {
		r = *x
	}

	return
}

func PointerToValue[T any](v T) *T {
	return &v
}
