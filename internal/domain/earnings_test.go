package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeEarnings_StandardSplit(t *testing.T) {
	b, err := ComputeEarnings(10000, true, 1000, 15)

	require.NoError(t, err)
	assert.Equal(t, int64(10000), b.GrossCents)
	assert.Equal(t, int64(1000), b.PlatformFeeCents)
	assert.Equal(t, int64(9000), b.NetCents)
	// inclusive 15%: 10000 * 15 / 115
	assert.Equal(t, int64(1304), b.GSTCents)
}

func TestComputeEarnings_FeeRoundsUp(t *testing.T) {
	// 10% of 10001 is 1000.1, collected as 1001
	b, err := ComputeEarnings(10001, false, 1000, 15)

	require.NoError(t, err)
	assert.Equal(t, int64(1001), b.PlatformFeeCents)
	assert.Equal(t, int64(9000), b.NetCents)
	assert.Equal(t, int64(0), b.GSTCents)
}

func TestComputeEarnings_FeePlusNetEqualsGross(t *testing.T) {
	for _, gross := range []int64{1, 3, 99, 100, 10001, 123457, 99999999} {
		for _, bps := range []int64{0, 1, 250, 1000, 3333, 10000} {
			b, err := ComputeEarnings(gross, true, bps, 15)
			require.NoError(t, err)
			assert.Equal(t, gross, b.NetCents+b.PlatformFeeCents,
				"gross=%d bps=%d", gross, bps)
		}
	}
}

func TestComputeEarnings_NoGSTWhenNotCharged(t *testing.T) {
	b, err := ComputeEarnings(10000, false, 1000, 15)

	require.NoError(t, err)
	assert.Equal(t, int64(0), b.GSTCents)
	// net never loses the tax component twice
	assert.Equal(t, int64(9000), b.NetCents)
}

func TestComputeEarnings_InvalidInputs(t *testing.T) {
	_, err := ComputeEarnings(0, false, 1000, 15)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ComputeEarnings(-500, false, 1000, 15)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ComputeEarnings(10000, false, -1, 15)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ComputeEarnings(10000, false, 10001, 15)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ComputeEarnings(10000, true, 1000, 101)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
