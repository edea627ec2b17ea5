package rpn_test

import (
	"fmt"

	"github.com/pragma-/qrpn/rpn"
)

func ExampleEvaluator() {
	e := rpn.NewEvaluator()
	if err := e.EvaluateString("2 km 3 km +"); err != nil {
		panic(err)
	}
	fmt.Println(e)
	// Output:
	// 5000 metre
}

func ExampleEvaluator_EvaluateString_colloquial() {
	e := rpn.NewEvaluator()
	if err := e.EvaluateString("1 hour"); err != nil {
		panic(err)
	}
	fmt.Println(e)
	// Output:
	// 1 hour (3600 second)
}

func ExampleEvaluator_EvaluateString_controlFlow() {
	e := rpn.NewEvaluator()
	if err := e.EvaluateString("1 if 42 else 7 endif"); err != nil {
		panic(err)
	}
	fmt.Println(e)
	// Output:
	// 42
}
