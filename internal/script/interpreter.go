package script

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/aromatt/llstack"
	"github.com/aromatt/llstack/pkg/logger"
)

// ErrEmptyStack is returned when set is run against an empty stack.
var ErrEmptyStack = errors.New("stack is empty")

// emptyResult is printed by pop and peek when the stack has no elements.
const emptyResult = "<empty>"

// Interpreter runs parsed commands against a stack of strings.
type Interpreter struct {
	stack   *llstack.Stack[string]
	out     io.Writer
	logger  logger.Logger
	counter *opCounter
}

type InterpreterOption func(*Interpreter)

func WithLogger(l logger.Logger) InterpreterOption {
	return func(i *Interpreter) {
		i.logger = l
	}
}

// WithStack makes the Interpreter operate on s instead of a fresh stack.
func WithStack(s *llstack.Stack[string]) InterpreterOption {
	return func(i *Interpreter) {
		i.stack = s
	}
}

// NewInterpreter returns an Interpreter that writes command output to out.
func NewInterpreter(out io.Writer, opts ...InterpreterOption) *Interpreter {
	i := &Interpreter{
		stack:   llstack.New[string](),
		out:     out,
		logger:  logger.NewNoopLogger(),
		counter: newOpCounter(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Stack returns the stack the Interpreter operates on.
func (i *Interpreter) Stack() *llstack.Stack[string] {
	return i.stack
}

// Counts returns how many times each Op has been executed.
func (i *Interpreter) Counts() map[Op]uint64 {
	return i.counter.Snapshot()
}

// Run executes cmds in order. Commands built by hand are validated the same
// way Parse validates them. It stops at the first failing command, or when
// ctx is done.
func (i *Interpreter) Run(ctx context.Context, cmds []Command) error {
	for _, cmd := range cmds {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := checkArgs(cmd.Op, cmd.Args)
		if err == nil {
			err = i.exec(cmd)
		}
		if err != nil {
			return errors.Wrapf(err, "line %d: %s", cmd.Line, cmd.Op)
		}
		i.counter.Increment(cmd.Op)
	}
	return nil
}

func (i *Interpreter) exec(cmd Command) error {
	i.logger.Debug("exec", zap.String("op", string(cmd.Op)), zap.Strings("args", cmd.Args), zap.Int("line", cmd.Line))

	switch cmd.Op {
	case OpPush:
		for _, v := range cmd.Args {
			i.stack.Push(v)
		}
		return nil
	case OpPop:
		v, ok := i.stack.Pop()
		return i.printResult(v, ok)
	case OpPeek:
		v, ok := i.stack.Peek()
		return i.printResult(v, ok)
	case OpSet:
		top, ok := i.stack.PeekMut()
		if !ok {
			return ErrEmptyStack
		}
		*top = cmd.Args[0]
		return nil
	case OpLen:
		return i.println(strconv.Itoa(i.stack.Len()))
	case OpPrint:
		return i.println(i.stack.String())
	case OpClear:
		i.stack.Clear()
		return nil
	case OpDrain:
		for v := range i.stack.Drain() {
			if err := i.println(v); err != nil {
				return err
			}
		}
		return nil
	}
	return errors.Wrapf(ErrUnknownCommand, "%q", cmd.Op)
}

func (i *Interpreter) printResult(v string, ok bool) error {
	if !ok {
		return i.println(emptyResult)
	}
	return i.println(v)
}

func (i *Interpreter) println(s string) error {
	_, err := fmt.Fprintln(i.out, s)
	return err
}
