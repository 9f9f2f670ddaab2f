package utils

func Ptr[T any](v T) *T {
	return &v
}

func StringPtr(s string) *string {
	return &s
}

// Deref returns *p, or the zero value when p is nil
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
