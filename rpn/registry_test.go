package rpn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamedQuantitiesHaveAnAlias(t *testing.T) {
	for i, n := range namedQuantities {
		assert.Falsef(t, n.name == "" && n.abbrev == "" && n.altSpelling == "", "entry %d has no alias at all", i)
	}
}

func TestDisplayNamePrefersName(t *testing.T) {
	withName := namedQuantity{name: "metre", abbrev: "m"}
	if got := withName.displayName(); got != "metre" {
		t.Errorf("got %q, want metre", got)
	}
	abbrevOnly := namedQuantity{abbrev: "Wh"}
	if got := abbrevOnly.displayName(); got != "Wh" {
		t.Errorf("got %q, want Wh", got)
	}
}

func TestEntersAsOperandFlag(t *testing.T) {
	found := false
	for _, n := range namedQuantities {
		if n.name == "Boltzmann" {
			found = true
			if !n.entersAsOperand() {
				t.Errorf("Boltzmann should enter as operand")
			}
		}
		if n.name == "metre" && n.entersAsOperand() {
			t.Errorf("metre should not enter as operand")
		}
	}
	if !found {
		t.Fatalf("Boltzmann entry not found in registry")
	}
}

// TestRegistryCollisionsResolveToFirstDeclared guards the colloquial
// printer's load-bearing tie-break: where non-SI entries share the same
// dimensions and a value within the printer's own 1e-6 tolerance (Boltzmann
// and Bc do), a quantity equal to a later entry prints under the name of the
// first such entry in declaration order.
func TestRegistryCollisionsResolveToFirstDeclared(t *testing.T) {
	for j := range namedQuantities {
		b := &namedQuantities[j]
		if b.siEligible() {
			continue
		}
		for i := 0; i < j; i++ {
			a := &namedQuantities[i]
			if a.siEligible() || !Equivalent(a.units, b.units) {
				continue
			}
			ratio := a.value / b.value
			if ratio > 0.999999 && ratio < 1.000001 {
				got, ok := formatColloquial(Quantity{Value: complex(b.value, 0), Units: b.units})
				if !ok || !strings.Contains(got, a.displayName()+" (") {
					t.Errorf("entry %d (%s) printed as %q, want the earlier colliding entry %d (%s)", j, b.displayName(), got, i, a.displayName())
				}
				break
			}
		}
	}
}

func TestSIPrefixesSpanExpectedRange(t *testing.T) {
	var min, max float64
	for i, p := range siPrefixes {
		if i == 0 || p.scale < min {
			min = p.scale
		}
		if i == 0 || p.scale > max {
			max = p.scale
		}
	}
	if min > 1e-23 {
		t.Errorf("smallest prefix scale %v too large", min)
	}
	if max < 1e26 {
		t.Errorf("largest prefix scale %v too small", max)
	}
}
