package utils

// Version is the build version, set at link time with
// -ldflags "-X github.com/opencatalog/z3950/std/utils.Version=...".
var Version string = "unknown"

// If is the ternary operator (eager evaluation)
func If[T any](cond bool, t, f T) T {
	if cond {
		return t
	} else {
		return f
	}
}
