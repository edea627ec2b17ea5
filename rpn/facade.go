package rpn

import (
	"io"
	"strings"

	"github.com/pragma-/qrpn/internal/diag"
)

// Evaluator holds one stack and its diagnostic output sink. The zero
// Evaluator is ready to use, with print writing nowhere; use NewEvaluator
// with WithWriter to capture print output.
type Evaluator struct {
	stack  Stack
	writer *diag.Writer
}

// Option configures an Evaluator constructed by NewEvaluator.
type Option func(*Evaluator)

// WithWriter directs print's output to w.
func WithWriter(w io.Writer) Option {
	return func(e *Evaluator) {
		e.writer = diag.New(w)
	}
}

// NewEvaluator builds an Evaluator with an empty stack, applying opts in
// order.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Len returns the current stack height.
func (e *Evaluator) Len() int { return e.stack.Len() }

// Items returns the evaluator's stack contents, bottom first.
func (e *Evaluator) Items() []Quantity { return e.stack.Items() }

// EvaluateToken evaluates a single token against the evaluator's stack.
// On failure the stack is left exactly as it was before the call.
func (e *Evaluator) EvaluateToken(token string) error {
	snapshot := e.stack
	if err := dispatchToken(&e.stack, e.writer, token); err != nil {
		e.stack = snapshot
		return err
	}
	return nil
}

// EvaluateString splits s on single spaces and evaluates the resulting
// tokens, honoring structured control words. On failure the stack is left
// exactly as it was before the call.
func (e *Evaluator) EvaluateString(s string) error {
	tokens := strings.Split(s, " ")
	snapshot := e.stack
	if err := EvaluateTokens(&e.stack, e.writer, tokens, 0); err != nil {
		e.stack = snapshot
		return err
	}
	return nil
}

// TryToken evaluates token against a throwaway copy of the stack and
// reports whether it would succeed, without mutating the evaluator.
func (e *Evaluator) TryToken(token string) error {
	cp := e.stack
	return dispatchToken(&cp, e.writer, token)
}

// TryString evaluates s against a throwaway copy of the stack and reports
// whether it would succeed, without mutating the evaluator.
func (e *Evaluator) TryString(s string) error {
	tokens := strings.Split(s, " ")
	cp := e.stack
	return EvaluateTokens(&cp, e.writer, tokens, 0)
}

// String renders the top of the stack the way print does, or "" if empty.
func (e *Evaluator) String() string {
	if e.stack.Len() == 0 {
		return ""
	}
	top, _ := e.stack.At(0)
	return formatQuantity(*top)
}
