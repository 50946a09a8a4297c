package mocks

import "github.com/EricCWWong/GSimulator/pkg/model"
import "github.com/stretchr/testify/mock"

// Model mock
type Model struct {
	mock.Mock
}

// HwX provides a mock function with given fields:
func (_m *Model) HwX() float64 {
	ret := _m.Called()
	return ret.Get(0).(float64)
}

// HwY provides a mock function with given fields:
func (_m *Model) HwY() float64 {
	ret := _m.Called()
	return ret.Get(0).(float64)
}

// MagneticField provides a mock function with given fields:
func (_m *Model) MagneticField() float64 {
	ret := _m.Called()
	return ret.Get(0).(float64)
}

// Angle provides a mock function with given fields:
func (_m *Model) Angle() float64 {
	ret := _m.Called()
	return ret.Get(0).(float64)
}

// E1 provides a mock function with given fields:
func (_m *Model) E1() float64 {
	ret := _m.Called()
	return ret.Get(0).(float64)
}

// E2 provides a mock function with given fields:
func (_m *Model) E2() float64 {
	ret := _m.Called()
	return ret.Get(0).(float64)
}

// EVsd provides a mock function with given fields:
func (_m *Model) EVsd() float64 {
	ret := _m.Called()
	return ret.Get(0).(float64)
}

// HwC provides a mock function with given fields:
func (_m *Model) HwC() float64 {
	ret := _m.Called()
	return ret.Get(0).(float64)
}

// Zeeman provides a mock function with given fields: spin
func (_m *Model) Zeeman(spin float64) float64 {
	ret := _m.Called(spin)
	return ret.Get(0).(float64)
}

// TotalTransmission provides a mock function with given fields: channels, energies
func (_m *Model) TotalTransmission(channels int, energies []float64) []float64 {
	ret := _m.Called(channels, energies)

	var r0 []float64
	if rf, ok := ret.Get(0).(func(int, []float64) []float64); ok {
		r0 = rf(channels, energies)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]float64)
		}
	}

	return r0
}

var _ model.Model = (*Model)(nil)
