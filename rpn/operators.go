package rpn

import (
	"math"
	"math/cmplx"

	"github.com/pkg/errors"

	"github.com/pragma-/qrpn/internal/diag"
)

// opHandler is the uniform signature every operator dispatches through.
// Only print uses w; every other handler ignores it.
type opHandler func(s *Stack, w *diag.Writer) error

// operators maps an exact token string to its handler, built once at
// package init instead of a cascade of string compares.
var operators map[string]opHandler

func init() {
	operators = map[string]opHandler{
		"+":   wrap(opAdd),
		"add": wrap(opAdd),
		"-":   wrap(opSub),
		"sub": wrap(opSub),
		"*":   wrap(opMul),
		"mul": wrap(opMul),
		"/":   wrap(opDiv),
		"div": wrap(opDiv),
		"mod": wrap(opMod),
		"%":   wrap(opMod),

		"hypot":  wrap(opHypot),
		"atan2":  wrap(opAtan2),
		"idiv":   wrap(opIdiv),
		"sum":    wrap(opSum),
		"choose": wrap(opChoose),
		"gcd":    wrap(opGcd),
		"lcm":    wrap(opLcm),

		"rcp":        wrap(opRcp),
		"chs":        wrap(opChs),
		"abs":        wrap(opAbs),
		"real":       wrap(opReal),
		"imaginary":  wrap(opImaginary),
		"arg":        wrap(opArg),
		"square":     wrap(opSquare),
		"sqrt":       wrap(opSqrt),
		"nextafter":  wrap(opNextafter),
		"nextafterf": wrap(opNextafterf),
		"isprime":    wrap(opIsprime),

		"hav":     wrap(unaryDimensionlessReal(hav)),
		"floor":   wrap(unaryDimensionlessReal(math.Floor)),
		"ceil":    wrap(unaryDimensionlessReal(math.Ceil)),
		"round":   wrap(unaryDimensionlessReal(math.Round)),
		"erfc":    wrap(unaryDimensionlessReal(math.Erfc)),
		"log2":    wrap(unaryDimensionlessReal(math.Log2)),
		"log10":   wrap(unaryNonnegDimensionlessReal(math.Log10)),
		"tenlog":  wrap(unaryNonnegDimensionlessReal(tenlog)),
		"itenlog": wrap(unaryDimensionlessReal(itenlog)),
		"crd":     wrap(unaryDimensionlessReal(crd)),
		"exsec":   wrap(unaryDimensionlessReal(exsec)),
		"ahav":    wrap(unaryDimensionlessReal(ahav)),
		"acrd":    wrap(unaryDimensionlessReal(acrd)),
		"aexsec":  wrap(unaryDimensionlessReal(aexsec)),
		"gamma":   wrap(unaryDimensionlessReal(math.Gamma)),

		"cos":  wrap(unaryDimensionlessComplex(cmplx.Cos)),
		"sin":  wrap(unaryDimensionlessComplex(cmplx.Sin)),
		"tan":  wrap(unaryDimensionlessComplex(cmplx.Tan)),
		"tanh": wrap(unaryDimensionlessComplex(cmplx.Tanh)),
		"acos": wrap(unaryDimensionlessComplex(cmplx.Acos)),
		"asin": wrap(unaryDimensionlessComplex(cmplx.Asin)),
		"atan": wrap(unaryDimensionlessComplex(cmplx.Atan)),
		"exp":  wrap(unaryDimensionlessComplex(cmplx.Exp)),
		"log":  wrap(unaryDimensionlessComplex(cmplx.Log)),

		"pow":  wrap(opPow),
		"rpow": wrap(opRpow),

		"swap": wrap(opSwap),
		"drop": wrap(opDrop),
		"dup":  wrap(opDup),
		"over": wrap(opOver),
		"pick": wrap(opPick),
		"roll": wrap(opRoll),
		"rot":  wrap(opRot),

		"eq": wrap(opEq),
		"lt": wrap(opLt),
		"le": wrap(opLe),
		"gt": wrap(opGt),
		"ge": wrap(opGe),

		"and": wrap(opAnd),
		"or":  wrap(opOr),
		"not": wrap(opNot),

		"quadratic": wrap(opQuadratic),

		"br":     wrap(opBearingRange),
		"travel": wrap(opTravel),

		"date":  wrap(opDate),
		"print": opPrint,
	}
}

// wrap adapts a stack-only handler (the overwhelming majority of operators)
// to the uniform opHandler signature.
func wrap(f func(s *Stack) error) opHandler {
	return func(s *Stack, _ *diag.Writer) error {
		return f(s)
	}
}

// --- operand validation helpers ---

func requireReal(q Quantity) (float64, error) {
	if imag(q.Value) != 0 {
		return 0, ErrMustBeReal
	}
	return real(q.Value), nil
}

// requireDomainReal is requireReal's ErrDomain-flavored sibling, for the
// operators (pow/rpow's exponent, the lt/le/gt/ge comparisons) whose C
// counterparts reject an imaginary operand with QRPN_ERROR_DOMAIN rather
// than QRPN_ERROR_MUST_BE_REAL.
func requireDomainReal(q Quantity) (float64, error) {
	if imag(q.Value) != 0 {
		return 0, ErrDomain
	}
	return real(q.Value), nil
}

func requireDimensionless(q Quantity) error {
	if !Dimensionless(q.Units) {
		return ErrMustBeUnitless
	}
	return nil
}

func requireDimensionlessReal(q Quantity) (float64, error) {
	if err := requireDimensionless(q); err != nil {
		return 0, err
	}
	return requireReal(q)
}

func requireInteger(v float64) (int, error) {
	if v != math.Trunc(v) || math.Abs(v) >= (1<<53) {
		return 0, ErrMustBeInteger
	}
	return int(v), nil
}

func requireNonnegInt(q Quantity) (int, error) {
	v, err := requireDimensionlessReal(q)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, ErrMustBeNonnegative
	}
	return requireInteger(v)
}

// requireIsprimeOperand is isprime's own bound check: unlike requireNonnegInt
// (used by choose/gcd/lcm/pick/roll), the C source allows exactly 2^53 and
// rejects anything larger with QRPN_ERROR_DOMAIN rather than
// QRPN_ERROR_MUST_BE_INTEGER.
func requireIsprimeOperand(q Quantity) (int, error) {
	v, err := requireDimensionlessReal(q)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, ErrMustBeNonnegative
	}
	if v > (1 << 53) {
		return 0, ErrDomain
	}
	if v != math.Trunc(v) {
		return 0, ErrMustBeInteger
	}
	return int(v), nil
}

func popTwo(s *Stack) (Quantity, Quantity, error) {
	b, err := s.Pop()
	if err != nil {
		return Quantity{}, Quantity{}, err
	}
	a, err := s.Pop()
	if err != nil {
		return Quantity{}, Quantity{}, err
	}
	return a, b, nil
}

// --- arithmetic ---

func binEquivDims(s *Stack, combine func(a, b complex128) complex128) error {
	a, b, err := popTwo(s)
	if err != nil {
		return err
	}
	if !Equivalent(a.Units, b.Units) {
		return ErrInconsistentUnits
	}
	return s.Push(Quantity{Value: combine(a.Value, b.Value), Units: a.Units})
}

func opAdd(s *Stack) error { return binEquivDims(s, func(a, b complex128) complex128 { return a + b }) }
func opSub(s *Stack) error { return binEquivDims(s, func(a, b complex128) complex128 { return a - b }) }

func opMul(s *Stack) error {
	a, b, err := popTwo(s)
	if err != nil {
		return err
	}
	units, err := addDims(a.Units, b.Units, 1)
	if err != nil {
		return err
	}
	return s.Push(Quantity{Value: a.Value * b.Value, Units: units})
}

func opDiv(s *Stack) error {
	a, b, err := popTwo(s)
	if err != nil {
		return err
	}
	units, err := addDims(a.Units, b.Units, -1)
	if err != nil {
		return err
	}
	return s.Push(Quantity{Value: a.Value / b.Value, Units: units})
}

func opMod(s *Stack) error {
	a, b, err := popTwo(s)
	if err != nil {
		return err
	}
	if !Equivalent(a.Units, b.Units) {
		return ErrInconsistentUnits
	}
	ra, err := requireReal(a)
	if err != nil {
		return err
	}
	rb, err := requireReal(b)
	if err != nil {
		return err
	}
	return s.Push(Quantity{Value: complex(math.Mod(ra, rb), 0), Units: a.Units})
}

func opHypot(s *Stack) error {
	a, b, err := popTwo(s)
	if err != nil {
		return err
	}
	if !Equivalent(a.Units, b.Units) {
		return ErrInconsistentUnits
	}
	ra, err := requireReal(a)
	if err != nil {
		return err
	}
	rb, err := requireReal(b)
	if err != nil {
		return err
	}
	return s.Push(Quantity{Value: complex(math.Hypot(ra, rb), 0), Units: a.Units})
}

func opAtan2(s *Stack) error {
	a, b, err := popTwo(s)
	if err != nil {
		return err
	}
	if !Equivalent(a.Units, b.Units) {
		return ErrInconsistentUnits
	}
	ra, err := requireReal(a)
	if err != nil {
		return err
	}
	rb, err := requireReal(b)
	if err != nil {
		return err
	}
	return s.Push(Quantity{Value: complex(math.Atan2(ra, rb), 0)})
}

func opIdiv(s *Stack) error {
	a, b, err := popTwo(s)
	if err != nil {
		return err
	}
	if err := requireDimensionless(a); err != nil {
		return err
	}
	if err := requireDimensionless(b); err != nil {
		return err
	}
	ra, err := requireReal(a)
	if err != nil {
		return err
	}
	rb, err := requireReal(b)
	if err != nil {
		return err
	}
	if rb == 0 {
		return ErrDomain
	}
	return s.Push(Quantity{Value: complex(math.Trunc(ra/rb), 0)})
}

func opSum(s *Stack) error {
	if s.height == 0 {
		return ErrNotEnoughStack
	}
	acc := s.data[0]
	for i := 1; i < s.height; i++ {
		if !Equivalent(acc.Units, s.data[i].Units) {
			return ErrInconsistentUnits
		}
		acc.Value += s.data[i].Value
	}
	s.height = 0
	return s.Push(acc)
}

// --- unary ---

func opRcp(s *Stack) error {
	top, err := s.At(0)
	if err != nil {
		return err
	}
	units, err := negateDims(top.Units)
	if err != nil {
		return err
	}
	top.Units = units
	top.Value = complex(1, 0) / top.Value
	return nil
}

func opChs(s *Stack) error {
	top, err := s.At(0)
	if err != nil {
		return err
	}
	v := -top.Value
	if imag(v) == 0 {
		v = complex(real(v), 0)
	}
	top.Value = v
	return nil
}

func opAbs(s *Stack) error {
	top, err := s.At(0)
	if err != nil {
		return err
	}
	top.Value = complex(cmplx.Abs(top.Value), 0)
	return nil
}

func opReal(s *Stack) error {
	top, err := s.At(0)
	if err != nil {
		return err
	}
	top.Value = complex(real(top.Value), 0)
	return nil
}

func opImaginary(s *Stack) error {
	top, err := s.At(0)
	if err != nil {
		return err
	}
	top.Value = complex(imag(top.Value), 0)
	return nil
}

func opArg(s *Stack) error {
	top, err := s.At(0)
	if err != nil {
		return err
	}
	top.Value = complex(cmplx.Phase(top.Value), 0)
	top.Units = Dim{}
	return nil
}

func opSquare(s *Stack) error {
	top, err := s.At(0)
	if err != nil {
		return err
	}
	units, err := scaleDims(top.Units, 2)
	if err != nil {
		return err
	}
	top.Units = units
	top.Value = top.Value * top.Value
	return nil
}

func opSqrt(s *Stack) error {
	top, err := s.At(0)
	if err != nil {
		return err
	}
	units, err := halveDims(top.Units)
	if err != nil {
		return err
	}
	top.Units = units
	top.Value = cmplx.Sqrt(top.Value)
	return nil
}

func opNextafter(s *Stack) error {
	top, err := s.At(0)
	if err != nil {
		return err
	}
	r, err := requireReal(*top)
	if err != nil {
		return err
	}
	top.Value = complex(math.Nextafter(r, math.Inf(1)), 0)
	return nil
}

func opNextafterf(s *Stack) error {
	top, err := s.At(0)
	if err != nil {
		return err
	}
	r, err := requireReal(*top)
	if err != nil {
		return err
	}
	top.Value = complex(float64(math.Nextafter32(float32(r), float32(math.Inf(1)))), 0)
	return nil
}

// --- dimensionless transcendentals ---

func unaryDimensionlessReal(f func(float64) float64) func(*Stack) error {
	return func(s *Stack) error {
		top, err := s.At(0)
		if err != nil {
			return err
		}
		r, err := requireDimensionlessReal(*top)
		if err != nil {
			return err
		}
		top.Value = complex(f(r), 0)
		return nil
	}
}

func unaryNonnegDimensionlessReal(f func(float64) float64) func(*Stack) error {
	return func(s *Stack) error {
		top, err := s.At(0)
		if err != nil {
			return err
		}
		r, err := requireDimensionlessReal(*top)
		if err != nil {
			return err
		}
		if r < 0 {
			return ErrMustBeNonnegative
		}
		top.Value = complex(f(r), 0)
		return nil
	}
}

func unaryDimensionlessComplex(f func(complex128) complex128) func(*Stack) error {
	return func(s *Stack) error {
		top, err := s.At(0)
		if err != nil {
			return err
		}
		if err := requireDimensionless(*top); err != nil {
			return err
		}
		top.Value = f(top.Value)
		return nil
	}
}

func hav(x float64) float64 {
	s := math.Sin(x / 2)
	return s * s
}

func crd(x float64) float64 { return 2 * math.Sin(x/2) }

func exsec(x float64) float64 { return 1/math.Cos(x) - 1 }

func ahav(x float64) float64 { return 2 * math.Asin(math.Sqrt(x)) }

func acrd(x float64) float64 { return 2 * math.Asin(x/2) }

func aexsec(x float64) float64 { return math.Acos(1 / (x + 1)) }

func tenlog(x float64) float64 { return 10 * math.Log10(x) }

func itenlog(x float64) float64 { return math.Pow(10, x/10) }

// --- combinatorial ---

func opChoose(s *Stack) error {
	a, b, err := popTwo(s)
	if err != nil {
		return err
	}
	n, err := requireNonnegInt(a)
	if err != nil {
		return err
	}
	k, err := requireNonnegInt(b)
	if err != nil {
		return err
	}
	if k > n {
		return s.Push(Quantity{Value: 0})
	}
	if k > n-k {
		k = n - k
	}
	result := 1.0
	for i := 0; i < k; i++ {
		result = result * float64(n-i) / float64(i+1)
	}
	return s.Push(Quantity{Value: complex(math.Round(result), 0)})
}

func opGcd(s *Stack) error {
	a, b, err := popTwo(s)
	if err != nil {
		return err
	}
	na, err := requireNonnegInt(a)
	if err != nil {
		return err
	}
	nb, err := requireNonnegInt(b)
	if err != nil {
		return err
	}
	return s.Push(Quantity{Value: complex(float64(gcdInt(na, nb)), 0)})
}

func opLcm(s *Stack) error {
	a, b, err := popTwo(s)
	if err != nil {
		return err
	}
	na, err := requireNonnegInt(a)
	if err != nil {
		return err
	}
	nb, err := requireNonnegInt(b)
	if err != nil {
		return err
	}
	g := gcdInt(na, nb)
	if g == 0 {
		return s.Push(Quantity{Value: 0})
	}
	return s.Push(Quantity{Value: complex(float64(na*nb/g), 0)})
}

func gcdInt(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func opIsprime(s *Stack) error {
	top, err := s.At(0)
	if err != nil {
		return err
	}
	n, err := requireIsprimeOperand(*top)
	if err != nil {
		return err
	}
	if n < 2 {
		top.Value = 0
		return nil
	}
	isPrime := true
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			isPrime = false
			break
		}
	}
	if isPrime {
		top.Value = 1
	} else {
		top.Value = 0
	}
	return nil
}

// --- powers ---

func powi(v complex128, k int) complex128 {
	if k < 0 {
		return complex(1, 0) / powi(v, -k)
	}
	result := complex(1.0, 0)
	base := v
	for k > 0 {
		if k&1 == 1 {
			result *= base
		}
		base *= base
		k >>= 1
	}
	return result
}

func powComplex(v complex128, e float64) complex128 {
	if e == math.Trunc(e) && math.Abs(e) < (1<<31) {
		return powi(v, int(e))
	}
	return cmplx.Pow(v, complex(e, 0))
}

func opPow(s *Stack) error {
	a, b, err := popTwo(s)
	if err != nil {
		return err
	}
	if err := requireDimensionless(b); err != nil {
		return err
	}
	rb, err := requireDomainReal(b)
	if err != nil {
		return err
	}
	if Dimensionless(a.Units) {
		return s.Push(Quantity{Value: powComplex(a.Value, rb)})
	}
	k, err := requireInteger(rb)
	if err != nil {
		return err
	}
	units, err := scaleDims(a.Units, k)
	if err != nil {
		return err
	}
	return s.Push(Quantity{Value: powi(a.Value, k), Units: units})
}

func opRpow(s *Stack) error {
	a, b, err := popTwo(s)
	if err != nil {
		return err
	}
	if err := requireDimensionless(b); err != nil {
		return err
	}
	rb, err := requireDomainReal(b)
	if err != nil {
		return err
	}
	if Dimensionless(a.Units) {
		return s.Push(Quantity{Value: powComplex(a.Value, rb)})
	}
	k, err := requireInteger(rb)
	if err != nil {
		return err
	}
	units, err := divDims(a.Units, k)
	if err != nil {
		return err
	}
	return s.Push(Quantity{Value: cmplx.Pow(a.Value, complex(1/rb, 0)), Units: units})
}

// --- stack shuffling ---

func opSwap(s *Stack) error {
	x, err := s.At(0)
	if err != nil {
		return err
	}
	y, err := s.At(1)
	if err != nil {
		return err
	}
	*x, *y = *y, *x
	return nil
}

func opDrop(s *Stack) error {
	_, err := s.Pop()
	return err
}

func opDup(s *Stack) error {
	top, err := s.At(0)
	if err != nil {
		return err
	}
	return s.Push(*top)
}

func opOver(s *Stack) error {
	second, err := s.At(1)
	if err != nil {
		return err
	}
	return s.Push(*second)
}

func opRot(s *Stack) error {
	x, err := s.At(0)
	if err != nil {
		return err
	}
	y, err := s.At(1)
	if err != nil {
		return err
	}
	z, err := s.At(2)
	if err != nil {
		return err
	}
	*z, *y, *x = *y, *x, *z
	return nil
}

// opPick copies the element at depth n+1 (0-indexed from the top, after the
// argument itself is popped) to the top of the stack.
func opPick(s *Stack) error {
	nq, err := s.Pop()
	if err != nil {
		return err
	}
	n, err := requireNonnegInt(nq)
	if err != nil {
		return err
	}
	if n+2 > s.height {
		return ErrNotEnoughStack
	}
	idx := s.height - 1 - (n + 1)
	return s.Push(s.data[idx])
}

// opRoll rotates the top n+2 elements: the bottom of that window moves to
// the top, with everything above it shifting down by one. roll 0 is
// therefore a plain two-element swap; roll 1 rotates three elements, and so
// on.
func opRoll(s *Stack) error {
	nq, err := s.Pop()
	if err != nil {
		return err
	}
	n, err := requireNonnegInt(nq)
	if err != nil {
		return err
	}
	m := n + 2
	if m > s.height {
		return ErrNotEnoughStack
	}
	lo := s.height - m
	bottom := s.data[lo]
	copy(s.data[lo:s.height-1], s.data[lo+1:s.height])
	s.data[s.height-1] = bottom
	return nil
}

// --- comparisons ---

func opEq(s *Stack) error {
	a, b, err := popTwo(s)
	if err != nil {
		return err
	}
	if !Equivalent(a.Units, b.Units) {
		return ErrInconsistentUnits
	}
	return s.Push(boolQuantity(a.Value == b.Value))
}

func compareReal(s *Stack, cmp func(a, b float64) bool) error {
	a, b, err := popTwo(s)
	if err != nil {
		return err
	}
	if !Equivalent(a.Units, b.Units) {
		return ErrInconsistentUnits
	}
	ra, err := requireDomainReal(a)
	if err != nil {
		return err
	}
	rb, err := requireDomainReal(b)
	if err != nil {
		return err
	}
	return s.Push(boolQuantity(cmp(ra, rb)))
}

func opLt(s *Stack) error { return compareReal(s, func(a, b float64) bool { return a < b }) }
func opLe(s *Stack) error { return compareReal(s, func(a, b float64) bool { return a <= b }) }
func opGt(s *Stack) error { return compareReal(s, func(a, b float64) bool { return a > b }) }
func opGe(s *Stack) error { return compareReal(s, func(a, b float64) bool { return a >= b }) }

func truthy(q Quantity) bool { return q.Value != 0 }

func opAnd(s *Stack) error {
	a, b, err := popTwo(s)
	if err != nil {
		return err
	}
	if err := requireDimensionless(a); err != nil {
		return err
	}
	if err := requireDimensionless(b); err != nil {
		return err
	}
	return s.Push(boolQuantity(truthy(a) && truthy(b)))
}

func opOr(s *Stack) error {
	a, b, err := popTwo(s)
	if err != nil {
		return err
	}
	if err := requireDimensionless(a); err != nil {
		return err
	}
	if err := requireDimensionless(b); err != nil {
		return err
	}
	return s.Push(boolQuantity(truthy(a) || truthy(b)))
}

func opNot(s *Stack) error {
	top, err := s.At(0)
	if err != nil {
		return err
	}
	if err := requireDimensionless(*top); err != nil {
		return err
	}
	top.Value = boolQuantity(!truthy(*top)).Value
	top.Units = Dim{}
	return nil
}

func boolQuantity(b bool) Quantity {
	if b {
		return Quantity{Value: 1}
	}
	return Quantity{Value: 0}
}

// --- quadratic ---

func opQuadratic(s *Stack) error {
	c, err := s.Pop()
	if err != nil {
		return err
	}
	b, err := s.Pop()
	if err != nil {
		return err
	}
	a, err := s.Pop()
	if err != nil {
		return err
	}

	twiceB, err := scaleDims(b.Units, 2)
	if err != nil {
		return err
	}
	expected, err := addDims(twiceB, a.Units, -1)
	if err != nil {
		return err
	}
	if !Equivalent(expected, c.Units) {
		return ErrInconsistentUnits
	}

	d := b.Value*b.Value - 4*a.Value*c.Value
	sqrtD := cmplx.Sqrt(d)
	var r1 complex128
	if real(sqrtD) > 0 {
		r1 = (-b.Value - sqrtD) / (2 * a.Value)
	} else {
		r1 = (-b.Value + sqrtD) / (2 * a.Value)
	}
	r0 := c.Value / (a.Value * r1)

	rootUnits, err := addDims(b.Units, a.Units, -1)
	if err != nil {
		return err
	}
	if err := s.Push(Quantity{Value: r1, Units: rootUnits}); err != nil {
		return err
	}
	return s.Push(Quantity{Value: r0, Units: rootUnits})
}

// --- print ---

func opPrint(s *Stack, w *diag.Writer) error {
	top, err := s.At(0)
	if err != nil {
		return err
	}
	if w == nil {
		return nil
	}
	_, err = w.Write([]byte(formatQuantity(*top)))
	return errors.Wrap(err, "print")
}
