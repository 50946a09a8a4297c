// Package model implements the saddle-point model of a quantum point contact
// in a tilted magnetic field.
package model

import (
	"math"

	"github.com/EricCWWong/GSimulator/pkg/material"
	"github.com/pkg/errors"
)

const (
	// BohrMagneton in meV/T.
	BohrMagneton = 5.7883818060e-2
	// CyclotronConstant is hbar*e/m_e in meV/T.
	CyclotronConstant = 0.11576763
)

// Model exposes quantities derived from a configuration together with
// the transmission over an energy axis.
type Model interface {
	HwX() float64
	HwY() float64
	MagneticField() float64
	Angle() float64
	// E1 and E2 are the subband energies in meV.
	E1() float64
	E2() float64
	// EVsd is the bias energy in meV.
	EVsd() float64
	// HwC is the cyclotron energy in meV.
	HwC() float64
	// Zeeman returns the Zeeman energy for given spin projection in meV.
	Zeeman(spin float64) float64
	// TotalTransmission returns conductance in units of 2e^2/h for every
	// reduced energy (E_f - U_0)/hbar w_x. Result saturates at channels.
	TotalTransmission(channels int, energies []float64) []float64
}

// Factory constructs model for a configuration.
type Factory interface {
	New(hwX, hwY, vsd, b, angle float64) (Model, error)
}

// FactoryFunc adapts function to Factory.
type FactoryFunc func(hwX, hwY, vsd, b, angle float64) (Model, error)

// New implements Factory.
func (f FactoryFunc) New(hwX, hwY, vsd, b, angle float64) (Model, error) {
	return f(hwX, hwY, vsd, b, angle)
}

// NewFactory returns factory of QPC models made of given material.
func NewFactory(m material.Material) Factory {
	return FactoryFunc(func(hwX, hwY, vsd, b, angle float64) (Model, error) {
		return New(m, hwX, hwY, vsd, b, angle)
	})
}

// QPC is a saddle-point constriction. It is read-only after construction.
type QPC struct {
	material      material.Material
	hwX, hwY      float64
	vsd           float64
	magneticField float64
	angle         float64

	hwC    float64
	e1, e2 float64
}

// New builds QPC model and derives its subband energies.
func New(m material.Material, hwX, hwY, vsd, b, angle float64) (*QPC, error) {
	if !(hwX > 0) || !(hwY > 0) || math.IsInf(hwX, 0) || math.IsInf(hwY, 0) {
		return nil, errors.Errorf("confinement energies must be positive and finite (hw_x=%g, hw_y=%g)", hwX, hwY)
	}
	for name, value := range map[string]float64{"V_sd": vsd, "B": b, "angle": angle} {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, errors.Errorf("%s must be finite, got %g", name, value)
		}
	}
	if !(m.EffectiveMass > 0) {
		return nil, errors.Errorf("material %q has non positive effective mass %g", m.Name, m.EffectiveMass)
	}

	q := &QPC{
		material:      m,
		hwX:           hwX,
		hwY:           hwY,
		vsd:           vsd,
		magneticField: b,
		angle:         angle,
	}
	// Only the field component along the 2DEG normal bends the orbits.
	q.hwC = math.Abs(CyclotronConstant * b * math.Cos(angle) / m.EffectiveMass)

	omega2 := q.hwC*q.hwC + hwY*hwY - hwX*hwX
	root := math.Sqrt(omega2*omega2 + 4*hwX*hwX*hwY*hwY)
	q.e1 = math.Sqrt(root-omega2) / (2 * math.Sqrt2)
	q.e2 = math.Sqrt(root+omega2) / math.Sqrt2

	return q, nil
}

// HwX implements Model.
func (q *QPC) HwX() float64 { return q.hwX }

// HwY implements Model.
func (q *QPC) HwY() float64 { return q.hwY }

// MagneticField implements Model.
func (q *QPC) MagneticField() float64 { return q.magneticField }

// Angle implements Model.
func (q *QPC) Angle() float64 { return q.angle }

// E1 implements Model.
func (q *QPC) E1() float64 { return q.e1 }

// E2 implements Model.
func (q *QPC) E2() float64 { return q.e2 }

// EVsd implements Model.
func (q *QPC) EVsd() float64 { return q.vsd }

// HwC implements Model.
func (q *QPC) HwC() float64 { return q.hwC }

// Zeeman implements Model.
func (q *QPC) Zeeman(spin float64) float64 {
	return q.material.GFactor * BohrMagneton * q.magneticField * spin
}

// Transmission returns probability of passing through subband n at energy in meV
// for given spin projection.
func (q *QPC) Transmission(n int, energy, spin float64) float64 {
	epsilon := (energy - q.e2*(float64(n)+0.5) - q.Zeeman(spin)) / q.e1
	return 1 / (1 + math.Exp(-2*math.Pi*epsilon))
}

// TotalTransmission implements Model.
// Bias splits the window symmetrically around the Fermi energy and both spin
// projections carry half of a conductance quantum.
func (q *QPC) TotalTransmission(channels int, energies []float64) []float64 {
	total := make([]float64, len(energies))
	halfBias := q.EVsd() / 2
	for i, x := range energies {
		energy := x * q.hwX
		var sum float64
		for n := 0; n < channels; n++ {
			for _, spin := range []float64{0.5, -0.5} {
				sum += 0.25 * (q.Transmission(n, energy+halfBias, spin) + q.Transmission(n, energy-halfBias, spin))
			}
		}
		total[i] = sum
	}
	return total
}
