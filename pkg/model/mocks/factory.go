package mocks

import "github.com/EricCWWong/GSimulator/pkg/model"
import "github.com/stretchr/testify/mock"

// Factory mock
type Factory struct {
	mock.Mock
}

// New provides a mock function with given fields: hwX, hwY, vsd, b, angle
func (_m *Factory) New(hwX float64, hwY float64, vsd float64, b float64, angle float64) (model.Model, error) {
	ret := _m.Called(hwX, hwY, vsd, b, angle)

	var r0 model.Model
	if rf, ok := ret.Get(0).(func(float64, float64, float64, float64, float64) model.Model); ok {
		r0 = rf(hwX, hwY, vsd, b, angle)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(model.Model)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(float64, float64, float64, float64, float64) error); ok {
		r1 = rf(hwX, hwY, vsd, b, angle)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

var _ model.Factory = (*Factory)(nil)
