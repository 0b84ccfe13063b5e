package problems

import "github.com/thalesfsp/nm"

// Divider is a voltage source driving a series resistor into a shunt
// resistor. The load is connected across the shunt.
type Divider struct {
	Source float64 // volts
	Series float64 // ohms
	Shunt  float64 // ohms
}

// DefaultDivider is a 9 V source, 1 kΩ series and 470 Ω shunt.
var DefaultDivider = Divider{Source: 9, Series: 1000, Shunt: 470}

// LoadPower returns the power dissipated in a load of rl ohms. A zero load
// dissipates nothing.
func (d Divider) LoadPower(rl float64) float64 {
	if rl == 0 {
		return 0
	}

	req := d.Shunt * rl / (d.Shunt + rl)
	vl := d.Source * req / (d.Series + req)

	return vl * vl / rl
}

// Thevenin returns the Thevenin resistance seen by the load, which is the
// load that maximizes LoadPower.
func (d Divider) Thevenin() float64 {
	return d.Series * d.Shunt / (d.Series + d.Shunt)
}

// Objective returns -LoadPower(x[0]), so minimizing it maximizes power.
func (d Divider) Objective() nm.ObjectiveFunc {
	return func(x []float64) float64 {
		return -d.LoadPower(x[0])
	}
}

// MaxPower searches the load resistance of DefaultDivider from 100 Ω,
// keeping the resistance non-negative.
func MaxPower() Problem {
	d := DefaultDivider
	rth := d.Thevenin()

	return Problem{
		Name:         "maxpower",
		Description:  "load resistance maximizing power out of a 9 V, 1k/470 divider",
		Objective:    d.Objective(),
		Constraint:   nm.NonNegative(),
		Start:        []float64{100},
		Epsilon:      1.0e-8,
		Scale:        1,
		Optimum:      []float64{rth},
		OptimumValue: -d.LoadPower(rth),
	}
}
