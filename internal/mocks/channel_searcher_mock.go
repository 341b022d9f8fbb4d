package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"brandpulse/internal/service"
)

// MockChannelSearcher is a mock type for the ChannelSearcher type
type MockChannelSearcher struct {
	mock.Mock
}

// Ready provides a mock function with given fields:
func (_m *MockChannelSearcher) Ready() error {
	ret := _m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SearchChannels provides a mock function with given fields: ctx, query, maxResults
func (_m *MockChannelSearcher) SearchChannels(ctx context.Context, query string, maxResults int64) ([]service.Channel, error) {
	ret := _m.Called(ctx, query, maxResults)

	var r0 []service.Channel
	if rf, ok := ret.Get(0).(func(context.Context, string, int64) []service.Channel); ok {
		r0 = rf(ctx, query, maxResults)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]service.Channel)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, int64) error); ok {
		r1 = rf(ctx, query, maxResults)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockChannelSearcher creates a new instance of MockChannelSearcher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockChannelSearcher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockChannelSearcher {
	m := &MockChannelSearcher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ service.ChannelSearcher = (*MockChannelSearcher)(nil)
