package optmesh

import "fmt"

// MemoryError indicates a decode target with an unsupported element width.
// It is raised locally, before the codec is invoked, and is correctable by
// choosing a valid element type.
type MemoryError struct {
	Msg string
}

func (e *MemoryError) Error() string {
	return fmt.Sprintf("memory error: %s", e.Msg)
}

// NativeError carries a nonzero status code returned by a codec's decode
// operation. The code belongs to the codec's private status space and is
// preserved verbatim for diagnostics, never reinterpreted by this layer.
type NativeError struct {
	Code int32
}

func (e *NativeError) Error() string {
	return fmt.Sprintf("codec error: status %d", e.Code)
}
