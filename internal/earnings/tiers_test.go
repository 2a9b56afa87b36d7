package earnings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTakeHomePayBrackets(t *testing.T) {
	cases := []struct {
		hours float64
		rate  float64
		want  float64
	}{
		{0, 10, 0},
		{3, 10, 15},
		{7, 10, 35},
		{10, 10, 53},
		{13, 10, 71},
		{20, 10, 123.5},
		{40, 25, 71*2.5 + 27*25*0.75},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, TakeHomePay(tc.hours, tc.rate), 1e-9, "hours=%v rate=%v", tc.hours, tc.rate)
	}
}

func TestTakeHomePayZeroRate(t *testing.T) {
	assert.Equal(t, 0.0, TakeHomePay(12, 0))
}

func TestTakeHomePayMonotonicInHours(t *testing.T) {
	for _, rate := range []float64{0.5, 10, 37.25} {
		prev := TakeHomePay(0, rate)
		for h := 0.25; h <= 40; h += 0.25 {
			got := TakeHomePay(h, rate)
			assert.GreaterOrEqual(t, got, prev, "rate=%v hours=%v", rate, h)
			prev = got
		}
	}
}

func TestTakeHomePayMonotonicInRate(t *testing.T) {
	for _, hours := range []float64{1, 7, 9.5, 13, 30} {
		prev := TakeHomePay(hours, 0)
		for rate := 0.5; rate <= 60; rate += 0.5 {
			got := TakeHomePay(hours, rate)
			assert.GreaterOrEqual(t, got, prev, "hours=%v rate=%v", hours, rate)
			prev = got
		}
	}
}

func TestTakeHomePayContinuousAtBracketEdges(t *testing.T) {
	const eps = 1e-9
	for _, edge := range []float64{7, 13} {
		below := TakeHomePay(edge-eps, 10)
		above := TakeHomePay(edge+eps, 10)
		assert.InDelta(t, below, above, 1e-6, "edge=%v", edge)
	}
}

func TestScheduleCustomBrackets(t *testing.T) {
	flat := Schedule{{Width: 5, Retention: 1}}
	assert.Equal(t, 50.0, flat.TakeHomePay(8, 10), "hours past the last bracket are dropped")
}
