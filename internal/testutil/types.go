package testutil

// Call is one recorded solver invocation.
type Call struct {
	Lines   []string
	Workers int
}
