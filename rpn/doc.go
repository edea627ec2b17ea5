// Package rpn implements a reverse-Polish calculator whose values carry SI
// dimension vectors alongside their complex magnitudes. Tokens are
// evaluated one at a time against a fixed-capacity stack; arithmetic
// operators check their dimensional preconditions (an Evaluator restores its
// stack from a snapshot when a token or string fails; EvaluateTokens does
// not), a compound unit parser recognizes prefixed unit names with optional
// exponents and denominators, and a small structured-control sublanguage
// (if/else/endif, begin/until, begin/while/repeat) lets programs branch and
// loop over a token list.
//
// Evaluator is the typical entry point:
//
//	e := rpn.NewEvaluator()
//	e.EvaluateString("2 km 3 km +")
//	fmt.Println(e)
package rpn
