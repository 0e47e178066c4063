// Package parse implements predikt's stack-driven predictive parsing loop,
// the consumer of an internal/grammar.Table built by the transformation
// pipeline.
package parse

import (
	"github.com/RajShah-1/LL1-Parser/internal/grammar"
	"github.com/RajShah-1/LL1-Parser/internal/util"
)

// Status is the terminal or non-terminal state of a driver run.
type Status int

const (
	Running Status = iota
	Accepted
	Rejected
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Verdict is the outcome of driving a token stream through the parser: a
// boolean accept/reject plus a diagnostic on the side channel. Verdict is
// deliberately not an error — parse rejection is a normal data-plane event,
// not a fault.
type Verdict struct {
	Accepted   bool
	Diagnostic string
}

// Step describes one iteration of the driver loop, passed to an optional
// Trace callback so a caller can render a derivation trace without the
// driver itself doing any I/O.
type Step struct {
	StackTop  int // symbol ID on top of the stack before this step
	Lookahead int // symbol ID of the current input token
	Matched   bool
	Applied   *grammar.Rule
}

// Driver runs the predictive parsing loop against a fixed Table. A Driver
// is stateless between calls to Run; each call owns its own stack and
// cursor, so a single Driver may be reused to parse many streams.
type Driver struct {
	g     *grammar.Grammar
	table *grammar.Table
	// Trace, if non-nil, is invoked after every loop iteration with the step
	// just taken. Optional; nil means no tracing and no hidden side effects.
	Trace func(Step)
}

// NewDriver returns a Driver for g's grammar using the given parse table.
func NewDriver(g *grammar.Grammar, table *grammar.Table) *Driver {
	return &Driver{g: g, table: table}
}

// Run drives tokens (terminal symbol names, NOT including the trailing dollar
// sentinel — Run appends it) through the parser and returns the verdict.
// Every name in tokens must already be a known terminal other than epsilon;
// Run validates this itself rather than trusting the caller.
func (d *Driver) Run(tokens []string) Verdict {
	t := d.g.Symbols

	ids := make([]int, 0, len(tokens)+1)
	for _, name := range tokens {
		sym, ok := t.Lookup(name)
		if !ok || !sym.Terminal || sym.ID == t.EpsilonID() {
			return Verdict{Accepted: false, Diagnostic: "unexpected symbol: " + name + " is not a known terminal"}
		}
		ids = append(ids, sym.ID)
	}
	ids = append(ids, t.DollarID())

	stack := util.Stack[int]{}
	stack.Push(t.DollarID())
	stack.Push(d.g.Start())

	cursor := 0
	status := Running

	for status == Running {
		top := stack.Peek()
		cur := ids[cursor]

		sym := t.ByID(top)
		var step Step
		step.StackTop = top
		step.Lookahead = cur

		if sym.Terminal {
			if top == cur {
				stack.Pop()
				cursor++
				step.Matched = true

				stackEmpty := stack.Empty()
				inputDone := cursor >= len(ids)
				switch {
				case stackEmpty && inputDone:
					status = Accepted
				case stackEmpty != inputDone:
					status = Rejected
				}
			} else {
				status = Rejected
			}
		} else {
			rule, ok := d.table.Lookup(top, cur)
			if !ok {
				status = Rejected
			} else {
				applied := rule
				step.Applied = &applied
				stack.Pop()
				for i := len(rule.RHS) - 1; i >= 0; i-- {
					if rule.RHS[i] == t.EpsilonID() {
						continue
					}
					stack.Push(rule.RHS[i])
				}
			}
		}

		if d.Trace != nil {
			d.Trace(step)
		}
	}

	if status == Accepted {
		return Verdict{Accepted: true}
	}
	return Verdict{Accepted: false, Diagnostic: rejectionReason(d, stack, ids, cursor)}
}

// rejectionReason classifies why the driver stopped in Rejected state, for
// the diagnostic side channel.
func rejectionReason(d *Driver, stack util.Stack[int], ids []int, cursor int) string {
	t := d.g.Symbols

	if stack.Empty() && cursor < len(ids) {
		return "stack emptied before input was exhausted"
	}
	if !stack.Empty() && cursor >= len(ids) {
		return "input exhausted before stack was emptied"
	}

	top := stack.Peek()
	cur := ids[cursor]
	topSym := t.ByID(top)

	if topSym.Terminal {
		return "expected " + topSym.Name + ", found " + t.ByID(cur).Name
	}
	return "no applicable production for " + topSym.Name + " with lookahead " + t.ByID(cur).Name
}
