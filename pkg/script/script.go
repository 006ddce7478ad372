package script

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"unicode"

	"github.com/larynjahor/lifo/container"
	"github.com/larynjahor/lifo/pkg"
	"github.com/samber/mo"
)

type Op string

const (
	OpPush  Op = "push"
	OpPop   Op = "pop"
	OpPeek  Op = "peek"
	OpLen   Op = "len"
	OpEmpty Op = "empty"
	OpIter  Op = "iter"
	OpPrint Op = "print"
)

type Command struct {
	Line int
	Op   Op
	Arg  string
}

// Result describes the stack after one command. Value holds what pop or peek
// returned, or the rendered stack for print and the emptiness flag for empty.
type Result struct {
	Op    Op                `json:"op"`
	Value mo.Option[string] `json:"value"`
	Len   int               `json:"len"`
	Items []string          `json:"items,omitempty"`
}

// Parse reads one command per line, its name and argument separated by whitespace. Blank lines and lines starting with # are skipped.
func Parse(r io.Reader) ([]Command, error) {
	var ret []Command

	sc := bufio.NewScanner(r)

	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		name, arg := text, ""
		if i := strings.IndexFunc(text, unicode.IsSpace); i >= 0 {
			name, arg = text[:i], strings.TrimSpace(text[i:])
		}

		cmd := Command{
			Line: line,
			Op:   Op(strings.ToLower(name)),
			Arg:  arg,
		}

		switch cmd.Op {
		case OpPush:
			if arg == "" {
				return nil, fmt.Errorf("line %d: %s: %w", line, cmd.Op, pkg.ErrMissingArgument)
			}
		case OpPop, OpPeek, OpLen, OpEmpty, OpIter, OpPrint:
			if arg != "" {
				return nil, fmt.Errorf("line %d: %s %q: %w", line, cmd.Op, arg, pkg.ErrUnexpectedArgument)
			}
		default:
			return nil, fmt.Errorf("line %d: %q: %w", line, name, pkg.ErrUnknownCommand)
		}

		ret = append(ret, cmd)
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return ret, nil
}

func NewRunner() *Runner {
	return &Runner{
		stack: container.NewStack[string](),
	}
}

// Runner replays commands on a single stack. State carries over between Run calls.
type Runner struct {
	stack *container.Stack[string]
}

func (r *Runner) Stack() container.View[string] {
	return r.stack.View()
}

func (r *Runner) Run(ctx context.Context, cmds []Command) ([]Result, error) {
	ret := make([]Result, 0, len(cmds))

	for _, cmd := range cmds {
		if err := ctx.Err(); err != nil {
			return ret, err
		}

		res, err := r.exec(cmd)
		if err != nil {
			return ret, fmt.Errorf("line %d: %w", cmd.Line, err)
		}

		slog.DebugContext(ctx, "executed command",
			slog.Int("line", cmd.Line),
			slog.String("op", string(cmd.Op)),
			slog.Int("len", res.Len),
		)

		ret = append(ret, res)
	}

	return ret, nil
}

func (r *Runner) exec(cmd Command) (Result, error) {
	res := Result{
		Op: cmd.Op,
	}

	switch cmd.Op {
	case OpPush:
		r.stack.Push(cmd.Arg)
	case OpPop:
		res.Value = mo.TupleToOption(r.stack.Pop())
	case OpPeek:
		res.Value = mo.TupleToOption(r.stack.Peek())
	case OpLen:
	case OpEmpty:
		res.Value = mo.Some(fmt.Sprint(r.stack.Empty()))
	case OpIter:
		res.Items = slices.Collect(r.stack.All())
	case OpPrint:
		res.Value = mo.Some(r.stack.String())
	default:
		return res, fmt.Errorf("%q: %w", cmd.Op, pkg.ErrUnknownCommand)
	}

	res.Len = r.stack.Len()

	return res, nil
}
