package taskgroup

import (
	"fmt"
	"runtime/debug"
)

// PanicError is the failure a Group reports when a task panics. It carries
// the recovered value and the stack captured at the recovery point.
type PanicError struct {
	recovered any
	stack     []byte
}

func newPanicError(recovered any) *PanicError {
	return &PanicError{recovered: recovered, stack: debug.Stack()}
}

// Recovered returns the value the task panicked with.
func (e *PanicError) Recovered() any {
	return e.recovered
}

// Stack returns the panicking task's stack in the format of
// runtime/debug.Stack.
func (e *PanicError) Stack() []byte {
	return append([]byte(nil), e.stack...)
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.recovered)
}

// Unwrap returns the recovered value when it is itself an error, else nil.
func (e *PanicError) Unwrap() error {
	if err, ok := e.recovered.(error); ok {
		return err
	}
	return nil
}

// Format renders the stack trace for %+v.
func (e *PanicError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		_, _ = fmt.Fprintf(s, "panic: %v\n%s", e.recovered, e.stack)
		return
	}
	_, _ = fmt.Fprint(s, e.Error())
}
