package utils

// CurrentVersion is overridden at build time with -ldflags "-X ...utils.CurrentVersion=v1.2.3".
var CurrentVersion = "dev"

func Ptr[T any](v T) *T {
	return &v
}

func IfElse[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}

// UnwrapOr returns *p, or def when p is nil.
func UnwrapOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

func TruncateString(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
