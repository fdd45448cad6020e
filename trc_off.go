//go:build !derschema_debug

package schema

func debugEnter(_, _ string) func(*error) { return func(*error) {} }
func debugInfo(_ string, _ ...any)        {}
