package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusIndexProgression(t *testing.T) {
	assert.Equal(t, 0, StatusIndex(StatusPending))
	assert.Equal(t, 1, StatusIndex(StatusConfirmed))
	assert.Equal(t, 2, StatusIndex(StatusPreparing))
	assert.Equal(t, 3, StatusIndex(StatusReady))
	assert.Equal(t, 4, StatusIndex(StatusDelivered))

	// Cancelled sits outside the linear progression.
	assert.Equal(t, -1, StatusIndex(StatusCancelled))
	assert.Equal(t, -1, StatusIndex("shipped"))
	assert.Equal(t, -1, StatusIndex(""))
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range StatusSteps() {
		assert.True(t, ValidOrderStatus(s), s)
	}
	assert.True(t, ValidOrderStatus(StatusCancelled))
	assert.False(t, ValidOrderStatus("shipped"))
	assert.False(t, ValidOrderStatus(""))
}

func TestCanCancel(t *testing.T) {
	assert.True(t, CanCancel(StatusPending))
	assert.True(t, CanCancel(StatusConfirmed))
	assert.True(t, CanCancel(StatusPreparing))
	assert.True(t, CanCancel(StatusReady))

	// Both terminal states stay terminal.
	assert.False(t, CanCancel(StatusDelivered))
	assert.False(t, CanCancel(StatusCancelled))
}

func TestStatusStepsIsACopy(t *testing.T) {
	steps := StatusSteps()
	steps[0] = "mutated"
	assert.Equal(t, StatusPending, StatusSteps()[0])
}
