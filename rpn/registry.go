package rpn

import "math"

// Flags on a namedQuantity registry entry.
const (
	// flagEntersAsOperand marks a named physical constant that, when named
	// in input, pushes a new dimensionless 1+0i quantity before being
	// applied, rather than multiplying the current top.
	flagEntersAsOperand = 1 << iota
	flagSIBase
	flagSIDerived
)

// namedQuantity is one entry in the unit/constant registry: a scalar value,
// a dimension vector, up to three parse aliases, and flags. Entries are
// immutable for the lifetime of the process.
type namedQuantity struct {
	value       float64
	units       Dim
	name        string
	abbrev      string
	altSpelling string
	flags       int
}

func (n *namedQuantity) entersAsOperand() bool { return n.flags&flagEntersAsOperand != 0 }
func (n *namedQuantity) siEligible() bool      { return n.flags&(flagSIBase|flagSIDerived) != 0 }

// displayName returns the name used when printing this unit: its full name
// if it has one, else its abbreviation (fprintf_quantity_si's
// `named->name ? named->name : named->abrv`).
func (n *namedQuantity) displayName() string {
	if n.name != "" {
		return n.name
	}
	return n.abbrev
}

// namedQuantities is the static unit/constant registry, transcribed from
// applets/qrpn/qrpn.c's named_quantities[] in declaration order. Order is
// load-bearing: the colloquial pretty-printer (print.go) picks the first
// match within tolerance, and parsing relies on the unit parser's linear
// scan finding the same entry print would.
var namedQuantities = []namedQuantity{
	// SI base units
	{value: 1, units: Dim{DimMetre: 1}, name: "metre", abbrev: "m", altSpelling: "meter", flags: flagSIBase},
	{value: 1, units: Dim{DimKilogram: 1}, name: "kilogram", abbrev: "kg", flags: flagSIBase},
	{value: 1, units: Dim{DimSecond: 1}, name: "second", abbrev: "s", flags: flagSIBase},
	{value: 1, units: Dim{DimAmpere: 1}, name: "ampere", abbrev: "A", flags: flagSIBase},
	{value: 1, units: Dim{DimKelvin: 1}, name: "kelvin", abbrev: "K", flags: flagSIBase},
	{value: 1, units: Dim{DimCandela: 1}, name: "candela", abbrev: "Cd", flags: flagSIBase},
	{value: 1, units: Dim{DimMole: 1}, name: "mole", abbrev: "mol", flags: flagSIBase},

	// SI derived units
	{value: 1, units: Dim{DimSecond: -1}, name: "hertz", abbrev: "Hz", flags: flagSIDerived},
	{value: 1, units: Dim{DimMetre: 1, DimKilogram: 1, DimSecond: -2}, name: "newton", abbrev: "N", flags: flagSIDerived},
	{value: 1, units: Dim{DimMetre: -1, DimKilogram: 1, DimSecond: -2}, name: "pascal", abbrev: "Pa", flags: flagSIDerived},
	{value: 1, units: Dim{DimMetre: 2, DimKilogram: 1, DimSecond: -2}, name: "joule", abbrev: "J", flags: flagSIDerived},
	{value: 1, units: Dim{DimMetre: 2, DimKilogram: 1, DimSecond: -3}, name: "watt", abbrev: "W", flags: flagSIDerived},
	{value: 1, units: Dim{DimSecond: 1, DimAmpere: 1}, name: "coulomb", abbrev: "C", flags: flagSIDerived},
	{value: 1, units: Dim{DimMetre: 2, DimKilogram: 1, DimSecond: -3, DimAmpere: -1}, name: "volt", abbrev: "V", flags: flagSIDerived},
	{value: 1, units: Dim{DimMetre: -2, DimKilogram: -1, DimSecond: 4, DimAmpere: 2}, name: "farad", abbrev: "F", flags: flagSIDerived},
	{value: 1, units: Dim{DimMetre: 2, DimKilogram: 1, DimSecond: -3, DimAmpere: -2}, name: "ohm", abbrev: "ohm", flags: flagSIDerived},
	{value: 1, units: Dim{DimMetre: -2, DimKilogram: -1, DimSecond: 3, DimAmpere: 2}, name: "siemens", abbrev: "S", flags: flagSIDerived},
	{value: 1, units: Dim{DimMetre: 2, DimKilogram: 1, DimSecond: -2, DimAmpere: -1}, name: "weber", abbrev: "Wb", flags: flagSIDerived},
	{value: 1, units: Dim{DimKilogram: 1, DimSecond: -2, DimAmpere: -1}, name: "tesla", abbrev: "T", flags: flagSIDerived},
	{value: 1, units: Dim{DimMetre: 2, DimKilogram: 1, DimSecond: -2, DimAmpere: -2}, name: "henry", abbrev: "H", flags: flagSIDerived},
	{value: 1, units: Dim{DimSecond: -1, DimMole: 1}, name: "katal", abbrev: "kat", flags: flagSIDerived},

	{value: 1, units: Dim{DimMetre: -2, DimKilogram: 1, DimSecond: -1}, name: "rayl"},

	{value: 100e3, units: Dim{DimMetre: -1, DimKilogram: 1, DimSecond: -2}, name: "bar"},

	{value: 60, units: Dim{DimSecond: 1}, name: "minute", abbrev: "min"},
	{value: 3600, units: Dim{DimSecond: 1}, name: "hour", abbrev: "h"},
	{value: 86400, units: Dim{DimSecond: 1}, name: "day"},
	{value: 1209600, units: Dim{DimSecond: 1}, name: "fortnight"},

	{value: 1.0e-15, units: Dim{DimMetre: 1}, name: "fermi"},
	{value: 1.0e-6, units: Dim{DimMetre: 1}, name: "micron"},
	{value: 1.0e-28, units: Dim{DimMetre: 2}, name: "barn", abbrev: "b"},
	{value: 1e-3, units: Dim{DimKilogram: 1}, name: "gram", abbrev: "gm"},

	{value: 1e3, units: Dim{DimKilogram: 1}, name: "tonne", abbrev: "t", altSpelling: "ton"},
	{value: 1e-3, units: Dim{DimMetre: 3}, name: "litre", abbrev: "L"},
	{value: 1e-6, units: Dim{DimMetre: 3}, name: "cc"},
	{value: 10e3, units: Dim{DimMetre: 2}, name: "hectare", abbrev: "ha"},
	{value: 3600, units: Dim{DimMetre: 2, DimKilogram: 1, DimSecond: -2}, abbrev: "Wh"},
	{value: 3600, units: Dim{DimSecond: 1, DimAmpere: 1}, abbrev: "Ah"},
	{value: 1.0e-2, units: Dim{DimMetre: 2, DimSecond: -2}, name: "rad"},
	{value: 10e-6, units: Dim{DimMetre: 1, DimKilogram: 1, DimSecond: -2}, name: "dyne"},

	{value: 3.7e10, units: Dim{DimSecond: -1}, name: "curie", abbrev: "Ci"},

	{value: 4.92892159375e-6, units: Dim{DimMetre: 3}, name: "teaspoon", abbrev: "tsp"},
	{value: 14.78676478125e-6, units: Dim{DimMetre: 3}, name: "tablespoon", abbrev: "Tbsp"},
	{value: 29.5735295625e-6, units: Dim{DimMetre: 3}, name: "floz"},
	{value: 236.5882365e-6, units: Dim{DimMetre: 3}, name: "cup"},
	{value: 473.176473e-6, units: Dim{DimMetre: 3}, name: "pint"},
	{value: 0.946352946e-3, units: Dim{DimMetre: 3}, name: "quart"},
	{value: 3.785411784e-3, units: Dim{DimMetre: 3}, name: "gallon"},

	{value: 1.60217657e-19, units: Dim{DimMetre: 2, DimKilogram: 1, DimSecond: -2}, abbrev: "eV"},

	{value: 4046.8564224, units: Dim{DimMetre: 2}, name: "acre"},
	{value: 4.184, units: Dim{DimMetre: 2, DimKilogram: 1, DimSecond: -2}, name: "calorie", abbrev: "cal"},
	{value: 4.184e3, units: Dim{DimMetre: 2, DimKilogram: 1, DimSecond: -2}, abbrev: "Cal"},
	{value: 4.184e6, units: Dim{DimMetre: 2, DimSecond: -2}, name: "TNT"},
	{value: 1852, units: Dim{DimMetre: 1}, name: "nmi"},
	{value: 0.514444444, units: Dim{DimMetre: 1, DimSecond: -1}, name: "knot", abbrev: "kt"},
	{value: 1609.344, units: Dim{DimMetre: 1}, name: "mile"},
	{value: 1609.344 / 3600, units: Dim{DimMetre: 1, DimSecond: -1}, abbrev: "mph"},
	{value: 86400 * 365.2425, units: Dim{DimSecond: 1}, name: "year", abbrev: "a"},
	{value: 1852 * 3, units: Dim{DimMetre: 1}, name: "league"},
	{value: 9.8066, units: Dim{DimMetre: 1, DimSecond: -2}, name: "g"},
	{value: 0.01, units: Dim{DimMetre: 1, DimSecond: -2}, name: "gal", abbrev: "Gal"},

	{value: 1.3806488e-23, units: Dim{DimMetre: 2, DimKilogram: 1, DimSecond: -2, DimKelvin: -1}, flags: flagEntersAsOperand, name: "Boltzmann", abbrev: "k"},
	{value: 6371000, units: Dim{DimMetre: 1}, flags: flagEntersAsOperand, name: "Earth radius", abbrev: "Re"},

	{value: 6.02214129e23, units: Dim{DimMole: -1}, name: "avogadro"},

	{value: 6.6738480e-11, units: Dim{DimMetre: 3, DimKilogram: -1, DimSecond: -2}, flags: flagEntersAsOperand, name: "G"},
	{value: 5.97219e24, units: Dim{DimKilogram: 1}, flags: flagEntersAsOperand, name: "Me"},

	{value: 8.3144621, units: Dim{DimMetre: 2, DimKilogram: 1, DimSecond: -2, DimKelvin: -1, DimMole: -1}, flags: flagEntersAsOperand, name: "Rc"},
	{value: 299792458, units: Dim{DimMetre: 1, DimSecond: -1}, flags: flagEntersAsOperand, name: "c", abbrev: "c0"},
	{value: 1.3806488e-23, units: Dim{DimMetre: 2, DimKilogram: 1, DimSecond: -2, DimKelvin: -1}, flags: flagEntersAsOperand, name: "Bc"},
	{value: 8.854187817620e-12, units: Dim{DimMetre: -3, DimKilogram: -1, DimSecond: 4, DimAmpere: 2}, flags: flagEntersAsOperand, name: "e0"},
	{value: 4.0e-7 * math.Pi, units: Dim{DimMetre: 1, DimKilogram: 1, DimSecond: -2, DimAmpere: -2}, flags: flagEntersAsOperand, name: "u0"},

	{value: 20.779e9, units: Dim{DimMetre: 2}, name: "Wales"},

	{value: 0.0283495, units: Dim{DimKilogram: 1}, name: "ounce", abbrev: "oz"},
	{value: 0.0311034768, units: Dim{DimKilogram: 1}, name: "troyoz"},
	{value: 64.79891e-6, units: Dim{DimKilogram: 1}, name: "grain"},
	{value: 101.325e3, units: Dim{DimMetre: -1, DimKilogram: 1, DimSecond: -2}, name: "atmosphere", abbrev: "atm"},
	{value: 745.699872, units: Dim{DimMetre: 2, DimKilogram: 1, DimSecond: -3}, name: "horsepower", abbrev: "hp"},
	{value: 0.3048 * 6.0, units: Dim{DimMetre: 1}, name: "fathom"},

	{value: 0.0254, units: Dim{DimMetre: 1}, name: "inch", abbrev: "in"},
	{value: 0.3048, units: Dim{DimMetre: 1}, name: "foot", abbrev: "ft"},
	{value: 0.9144, units: Dim{DimMetre: 1}, name: "yard", abbrev: "yd"},
	{value: 201.168, units: Dim{DimMetre: 1}, name: "furlong"},
	{value: 3.08567758e16, units: Dim{DimMetre: 1}, name: "parsec", abbrev: "pc"},

	{value: 0.45359237, units: Dim{DimKilogram: 1}, name: "lbm"},
	{value: 4.448222, units: Dim{DimMetre: 1, DimKilogram: 1, DimSecond: -2}, name: "lbf"},
	{value: 6.35029318, units: Dim{DimKilogram: 1}, name: "stone", abbrev: "st"},
}

// siPrefixes is the static SI-prefix registry, transcribed from
// applets/qrpn/qrpn.c's si_prefixes[]. Order does not matter for this table
// (prefix matching is exact-length, exact-byte), but declaration order is
// kept identical to the source for ease of cross-checking.
var siPrefixes = []struct {
	scale  float64
	name   string
	abbrev string
}{
	{1e-24, "yocto", "y"},
	{1e-21, "zepto", "z"},
	{1e-18, "atto", "a"},
	{1e-15, "femto", "f"},
	{1e-12, "pico", "p"},
	{1e-9, "nano", "n"},
	{1e-6, "micro", "u"},
	{1e-3, "milli", "m"},
	{1e-2, "centi", "c"},
	{1e-1, "deci", "d"},
	{1e2, "hecto", "h"},
	{1e3, "kilo", "k"},
	{1e6, "mega", "M"},
	{1e9, "giga", "G"},
	{1e12, "tera", "T"},
	{1e15, "peta", "P"},
	{1e18, "exa", "E"},
	{1e21, "zetta", "Z"},
	{1e24, "yotta", "Y"},
	{1e27, "hella", "H"},
}

// unitsOfTime is the dimension vector of one second, used by `date` and the
// ISO-8601 literal path (units_of_time in the C source).
var unitsOfTime = Dim{DimSecond: 1}
