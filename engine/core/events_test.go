package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBusQueuesUntilDispatch(t *testing.T) {
	eb := NewEventBus()
	var goals, all int
	eb.On(EvtGoal, func(Event) { goals++ })
	eb.OnAny(func(Event) { all++ })

	eb.Emit(Event{Type: EvtGoal})
	eb.Emit(Event{Type: EvtPass})
	assert.Len(t, eb.Pending(), 2)
	assert.Zero(t, all)

	eb.Dispatch()
	assert.Equal(t, 1, goals)
	assert.Equal(t, 2, all)
	assert.Empty(t, eb.Pending())

	eb.Dispatch()
	assert.Equal(t, 2, all)
	assert.Equal(t, "restart-taken", EvtRestartTaken.String())
}
