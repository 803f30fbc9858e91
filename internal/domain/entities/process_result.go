package entities

// ProcessResult captures one external process execution. Output is kept as
// raw bytes; callers decide when decoding to text is required and what an
// undecodable stream means for them.
type ProcessResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Success reports whether the process exited with status zero.
func (r ProcessResult) Success() bool {
	return r.ExitCode == 0
}
