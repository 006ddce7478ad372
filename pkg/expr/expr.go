package expr

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/larynjahor/lifo/container"
)

func New() *Evaler {
	return &Evaler{}
}

// Evaler evaluates boolean expressions over tags, e.g. "linux && !(cgo || race)".
// An identifier is true when it is one of the given tags.
type Evaler struct{}

func (p *Evaler) Eval(s string, tags []string) bool {
	logger := slog.With(slog.String("expr", s))

	known := container.SetOf(tags...)
	out := container.NewStack[string]()
	ops := container.NewStack[string]()

	// popWhile moves operators to the output until the top of ops is one of stop.
	popWhile := func(stop ...string) {
		for {
			top, ok := ops.Peek()
			if !ok || slices.Contains(stop, top) {
				return
			}

			ops.Pop()
			out.Push(top)
		}
	}

	for _, t := range tokenize(s) {
		switch t {
		case "!", "(":
			ops.Push(t)
		case "&&":
			popWhile("&&", "||", "(")
			ops.Push(t)
		case "||":
			popWhile("||", "(")
			ops.Push(t)
		case ")":
			popWhile("(")

			if top, ok := ops.Pop(); !ok || top != "(" {
				logger.Error("unbalanced parentheses")
				return false
			}
		default:
			out.Push(t)
		}
	}

	popWhile()

	eval := container.NewStack[bool]()

	for _, t := range out.View().All() {
		switch t {
		case "(":
			logger.Error("unbalanced parentheses")
			return false
		case "!":
			v, ok := eval.Pop()
			if !ok {
				logger.Error("no operand for !")
				return false
			}

			eval.Push(!v)
		case "||", "&&":
			first, ok := eval.Pop()
			if !ok {
				logger.Error("no operand for || or &&")
				return false
			}

			second, ok := eval.Pop()
			if !ok {
				logger.Error("no operand for || or &&")
				return false
			}

			if t == "&&" {
				eval.Push(first && second)
			} else {
				eval.Push(first || second)
			}
		default:
			eval.Push(known.Contains(t))
		}
	}

	ret, ok := eval.Pop()
	if !ok {
		logger.Error("empty expression")
		return false
	}

	if !eval.Empty() {
		logger.Error("extra tokens in result stack", slog.Int("extra", eval.Len()))
		return false
	}

	return ret
}

func tokenize(s string) []string {
	var (
		ret []string
		sb  strings.Builder
	)

	flush := func() {
		if sb.Len() > 0 {
			ret = append(ret, sb.String())
			sb.Reset()
		}
	}

	for _, field := range strings.Fields(s) {
		for _, ch := range field {
			switch ch {
			case '!', '(', ')':
				flush()
				ret = append(ret, string(ch))
			default:
				sb.WriteRune(ch)
			}
		}

		flush()
	}

	return ret
}
