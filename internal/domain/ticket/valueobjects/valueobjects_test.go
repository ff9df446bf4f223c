package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketStatus_Labels(t *testing.T) {
	tests := []struct {
		status TicketStatus
		label  string
	}{
		{StatusOpen, "Open"},
		{StatusInProgress, "In Progress"},
		{StatusResolved, "Resolved"},
		{StatusClosed, "Closed"},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.label, tt.status.Label())
			assert.True(t, tt.status.IsValid())
		})
	}
}

func TestNewTicketStatus(t *testing.T) {
	s, err := NewTicketStatus("in_progress")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, s)

	_, err = NewTicketStatus("reopened")
	assert.Error(t, err)
	assert.Equal(t, "pending", TicketStatus("pending").Label())
}

func TestNewPriority(t *testing.T) {
	for _, p := range AllPriorities() {
		got, err := NewPriority(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	_, err := NewPriority("critical")
	assert.Error(t, err)
	assert.Equal(t, "Urgent", PriorityUrgent.Label())
	assert.Equal(t, PriorityMedium, DefaultPriority)
}
