package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateTimeSlots(t *testing.T) {
	names := []string{"Math", "Physics", "History"}
	slots, err := GenerateTimeSlots(names, []string{"high"})
	require.NoError(t, err)
	require.Len(t, slots, 3)

	require.Equal(t, "08:00", slots[0].StartTime)
	for i, slot := range slots {
		require.Equal(t, names[i], slot.Name)
		require.Equal(t, fmt.Sprintf("%02d:00", 8+i), slot.StartTime)
		require.Equal(t, fmt.Sprintf("%02d:00", 9+i), slot.EndTime)
	}

	// explicit priority for the first task, default for the rest
	require.Equal(t, "high", slots[0].Priority)
	require.Equal(t, "medium", slots[1].Priority)
	require.Equal(t, "medium", slots[2].Priority)
}

func TestGenerateTimeSlotsEmpty(t *testing.T) {
	_, err := GenerateTimeSlots(nil, nil)
	require.ErrorIs(t, err, ErrNoTasks)

	_, err = GenerateTimeSlots([]string{}, []string{"high"})
	require.ErrorIs(t, err, ErrNoTasks)
}

func TestGenerateTimeSlotsPastMidnight(t *testing.T) {
	names := make([]string, 18)
	for i := range names {
		names[i] = fmt.Sprintf("task %d", i)
	}

	slots, err := GenerateTimeSlots(names, nil)
	require.NoError(t, err)

	// hour labels are not wrapped at 24
	require.Equal(t, "24:00", slots[16].StartTime)
	require.Equal(t, "25:00", slots[17].StartTime)
	require.Equal(t, "26:00", slots[17].EndTime)
}
