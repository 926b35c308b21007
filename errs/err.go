package errs

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
)

const (
	ErrCodeIllegalArgument   string = "ILLEGAL_ARGUMENT"
	ErrCodeOutOfRange        string = "OUT_OF_RANGE"
	ErrCodeUnsupportedUnit   string = "UNSUPPORTED_UNIT"
	ErrCodeInvalidWeekendSet string = "INVALID_WEEKEND_SET"
)

var (
	ErrIllegalArgument   *ChronoErr = NewErrfCode(ErrCodeIllegalArgument, "Illegal Argument")
	ErrOutOfRange        *ChronoErr = NewErrfCode(ErrCodeOutOfRange, "Out Of Range")
	ErrUnsupportedUnit   *ChronoErr = NewErrfCode(ErrCodeUnsupportedUnit, "Unsupported Unit Of Time")
	ErrInvalidWeekendSet *ChronoErr = NewErrfCode(ErrCodeInvalidWeekendSet, "Invalid Weekend Set")
)

var (
	Errf = NewErrf
)

// Chrono Error.
//
//	Use NewErrf(...) to instantiate.
type ChronoErr struct {
	code        string // error code.
	msg         string // error message returned to the caller.
	internalMsg string // internal message with extra context.
	stack       string
	err         error
}

func (e *ChronoErr) Cause() error {
	return e.err
}

func (e *ChronoErr) InternalMsg() string {
	return e.internalMsg
}

func (e *ChronoErr) Msg() string {
	return e.msg
}

func (e *ChronoErr) Code() string {
	return e.code
}

func (e *ChronoErr) StackTrace() string {
	return e.stack
}

// Create new *ChronoErr to wrap the cause error
//
// if cause is nil, nil is returned.
func (e *ChronoErr) Wrap(cause error) error {
	if cause == nil {
		return nil
	}
	n := e.copyNew()
	n.err = cause
	n.withStack()
	return n
}

// Create new *ChronoErr to wrap the cause error
//
// if cause is nil, nil is returned.
func (e *ChronoErr) Wrapf(cause error, internalMsg string, args ...any) error {
	if cause == nil {
		return nil
	}
	n := e.copyNew()
	n.err = cause
	n.withStack()
	if len(args) > 0 {
		n.internalMsg = fmt.Sprintf(internalMsg, args...)
	} else {
		n.internalMsg = internalMsg
	}
	return n
}

func (e *ChronoErr) copyNew() *ChronoErr {
	n := new(ChronoErr)
	n.code = e.code
	n.msg = e.msg
	n.internalMsg = e.internalMsg
	n.stack = e.stack
	n.err = e.err
	return n
}

func (e *ChronoErr) New() error {
	n := e.copyNew()
	n.withStack()
	return n
}

func (e *ChronoErr) Error() string {
	tok := []string{}
	if e.msg != "" {
		tok = append(tok, e.msg)
	}
	if e.internalMsg != "" {
		tok = append(tok, e.internalMsg)
	}
	uw := e.Unwrap()
	if uw != nil {
		tok = append(tok, uw.Error())
	}
	return strings.Join(tok, ", ")
}

func (e *ChronoErr) HasCode() bool {
	return strings.TrimSpace(e.code) != ""
}

func (e *ChronoErr) WithCode(code string) *ChronoErr {
	n := e.copyNew()
	n.code = code
	return n
}

func (e *ChronoErr) WithMsg(msg string) *ChronoErr {
	n := e.copyNew()
	n.msg = msg
	n.withStack()
	return n
}

// Implements *ChronoErr Is check.
//
// Returns true, if both are *ChronoErr and the code matches.
//
// WithInternalMsg always create new error, so we can basically
// reuse the same error created using 'errs.NewErrfCode(...)'
//
//	var e1 = errs.ErrUnsupportedUnit.WithInternalMsg(...)
//	var e2 = errs.ErrUnsupportedUnit.WithInternalMsg(...)
//
//	errors.Is(e1, errs.ErrUnsupportedUnit)
//	errors.Is(e2, errs.ErrUnsupportedUnit)
func (e *ChronoErr) Is(target error) bool {
	if tme, ok := target.(*ChronoErr); ok && e.code != "" && e.code == tme.code {
		return true
	}
	return false
}

func (e *ChronoErr) WithInternalMsg(msg string, args ...any) *ChronoErr {
	ne := e.copyNew()
	ne.withStack()
	if len(args) > 0 {
		ne.internalMsg = fmt.Sprintf(msg, args...)
	} else {
		ne.internalMsg = msg
	}
	return ne
}

func (e *ChronoErr) withStack() *ChronoErr {
	e.stack = stack(3)
	return e
}

func (e *ChronoErr) Unwrap() error {
	return e.err
}

// Create new *ChronoErr with message.
func NewErrf(msg string, args ...any) *ChronoErr {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	me := &ChronoErr{msg: msg, internalMsg: "", err: nil}
	me.withStack()
	return me
}

// Create new *ChronoErr with message and error code.
func NewErrfCode(code string, msg string, args ...any) *ChronoErr {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	me := &ChronoErr{msg: msg, internalMsg: "", err: nil, code: code}
	me.withStack()
	return me
}

// Wrap an error to create new *ChronoErr with stacktrace.
//
// If err is nil, nil is returned.
//
// If err is *ChronoErr, err is returned directly.
func WrapErr(err error) error {
	if err == nil {
		return nil
	}
	if me, ok := err.(*ChronoErr); ok {
		return me
	}
	me := &ChronoErr{msg: "", internalMsg: "", err: err, code: ""}
	me.withStack()
	return me
}

// Wrap an error to create new *ChronoErr with message.
//
// If the wrapped err is nil, nil is returned.
func WrapErrf(err error, msg string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	me := &ChronoErr{msg: msg, internalMsg: "", err: err}
	me.withStack()
	return me
}

func UnwrapErrStack(err error) (string, bool) {
	var stack string
	var ue error = err
	for {
		if me, ok := ue.(*ChronoErr); ok {
			if me != nil {
				stack = me.stack
			}
		}
		u := errors.Unwrap(ue)
		if u == nil {
			break
		}
		ue = u
	}

	return stack, stack != ""
}

func ErrorStackTrace(err error) string {
	if err == nil {
		return "nil"
	}
	stackTrace, withStack := UnwrapErrStack(err)
	m := err.Error()
	if withStack {
		m += stackTrace
	}
	return m
}

var stackPool = sync.Pool{
	New: func() any {
		var v []uintptr = make([]uintptr, 50)
		return &v
	},
}

func stack(n int) string {
	stack := stackPool.Get().(*[]uintptr)
	defer func() {
		clear(*stack)
		stackPool.Put(stack)
	}()

	length := runtime.Callers(n, *stack)
	frames := runtime.CallersFrames((*stack)[:length])
	b := strings.Builder{}

	for {
		f, next := frames.Next()
		if !next {
			break
		}
		b.WriteString(fmt.Sprintf("\n\t%v\n\t\t%v:%v", f.Function, f.File, f.Line))
	}
	return b.String()
}
