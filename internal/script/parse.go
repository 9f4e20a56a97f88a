// Package script implements a small line-oriented language for driving a
// llstack.Stack[string]:
//
//	# comment
//	push a b c
//	peek
//	set z
//	pop
//	print
//
// Each non-blank, non-comment line is one command followed by its arguments,
// separated by whitespace. Lines longer than MaxLineSize are rejected.
package script

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Op identifies a script command.
type Op string

const (
	OpPush  Op = "push"
	OpPop   Op = "pop"
	OpPeek  Op = "peek"
	OpSet   Op = "set"
	OpLen   Op = "len"
	OpPrint Op = "print"
	OpClear Op = "clear"
	OpDrain Op = "drain"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArity          = errors.New("wrong number of arguments")
)

// arity is the accepted argument count for each Op. -1 means one or more.
var arity = map[Op]int{
	OpPush:  -1,
	OpPop:   0,
	OpPeek:  0,
	OpSet:   1,
	OpLen:   0,
	OpPrint: 0,
	OpClear: 0,
	OpDrain: 0,
}

// MaxLineSize is the longest script line Parse accepts, in bytes.
const MaxLineSize = 16 << 20

// Command is one parsed script line.
type Command struct {
	Op   Op
	Args []string
	// Line is the 1-based line number the command was read from.
	Line int
}

// Parse reads a script from r.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		cmd, err := parseLine(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		cmd.Line = line
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading script")
	}
	return cmds, nil
}

func parseLine(text string) (Command, error) {
	fields := strings.Fields(text)
	op := Op(strings.ToLower(fields[0]))
	args := fields[1:]

	if err := checkArgs(op, args); err != nil {
		return Command{}, err
	}
	return Command{Op: op, Args: args}, nil
}

// checkArgs validates op and its argument count against the arity table.
func checkArgs(op Op, args []string) error {
	want, ok := arity[op]
	if !ok {
		return errors.Wrapf(ErrUnknownCommand, "%q", op)
	}
	switch {
	case want < 0 && len(args) == 0:
		return errors.Wrapf(ErrArity, "%s takes at least one argument", op)
	case want >= 0 && len(args) != want:
		return errors.Wrapf(ErrArity, "%s takes %d argument(s), got %d", op, want, len(args))
	}
	return nil
}
