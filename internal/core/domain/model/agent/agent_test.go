package agent_test

import (
	"sort"
	"testing"
	"time"

	"pizzeria/internal/core/domain/model/agent"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hiredAt = time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

func TestNewAgent(t *testing.T) {
	id := kernel.NewUUID()
	storeID := kernel.NewUUID()

	t.Run("should create active agent", func(t *testing.T) {
		a, err := agent.NewAgent(id, storeID, "  Marta ", " +1 555 0100 ", hiredAt)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(id))
		assert.True(t, a.StoreID().IsEqual(storeID))
		assert.Equal(t, "Marta", a.Name())
		assert.Equal(t, "+1 555 0100", a.Phone())
		assert.True(t, a.IsActive())
		assert.Equal(t, hiredAt, a.CreatedAt())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		a, err := agent.NewAgent(id, storeID, "   ", "", hiredAt)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, a)
	})

	t.Run("should reject missing identifiers", func(t *testing.T) {
		_, err := agent.NewAgent(kernel.UUID{}, kernel.UUID{}, "Marta", "", hiredAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.Contains(t, err.Error(), "store id")
	})
}

func TestAgent_SetActive(t *testing.T) {
	a, err := agent.RestoreAgent(kernel.NewUUID(), kernel.NewUUID(), "Marta", "", false, hiredAt)
	require.NoError(t, err)
	assert.False(t, a.IsActive())

	a.SetActive(true)
	assert.True(t, a.IsActive())

	a.SetActive(false)
	assert.False(t, a.IsActive())
}

func TestAgent_RotationOrder(t *testing.T) {
	storeID := kernel.NewUUID()
	first, _ := agent.NewAgent(kernel.MustUUIDFromString("00000000-0000-4000-8000-000000000002"), storeID, "B", "", hiredAt)
	tie, _ := agent.NewAgent(kernel.MustUUIDFromString("00000000-0000-4000-8000-000000000003"), storeID, "C", "", hiredAt)
	late, _ := agent.NewAgent(kernel.MustUUIDFromString("00000000-0000-4000-8000-000000000001"), storeID, "A", "", hiredAt.Add(time.Hour))

	agents := []*agent.Agent{late, tie, first}
	sort.Slice(agents, func(i, j int) bool { return agents[i].RotatesBefore(agents[j]) })

	assert.Equal(t, []string{"B", "C", "A"}, []string{agents[0].Name(), agents[1].Name(), agents[2].Name()})
}

func TestAgent_ZeroValue(t *testing.T) {
	var a agent.Agent
	require.ErrorIs(t, a.Validate(), agent.ErrAgentIsNotConstructed)

	var nilAgent *agent.Agent
	require.ErrorIs(t, nilAgent.Validate(), agent.ErrAgentIsNotConstructed)
	assert.False(t, (&a).IsEqual(nil))
}
