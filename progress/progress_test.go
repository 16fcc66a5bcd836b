package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerAdvancesThroughLevel(t *testing.T) {
	tr := NewTracker()
	assert.Equal(t, 1, tr.Level())
	assert.Equal(t, 0, tr.QuestionIndex())
	assert.Equal(t, PhaseQuestion, tr.Phase())

	for i := 0; i < 6; i++ {
		require.NoError(t, tr.Complete())
		assert.Equal(t, i+1, tr.QuestionIndex())
		assert.Equal(t, PhaseQuestion, tr.Phase())
	}

	require.NoError(t, tr.Complete())
	assert.Equal(t, PhaseFeedback, tr.Phase())
	assert.Equal(t, 1, tr.Level())

	require.NoError(t, tr.AcknowledgeFeedback())
	assert.Equal(t, PhaseLevelSummary, tr.Phase())

	require.NoError(t, tr.AcknowledgeSummary())
	assert.Equal(t, 2, tr.Level())
	assert.Equal(t, 0, tr.QuestionIndex())
	assert.Equal(t, PhaseQuestion, tr.Phase())
}

func TestTrackerFullCampaign(t *testing.T) {
	tr := NewTracker()
	answered := 0
	for tr.Phase() != PhaseEnded {
		switch tr.Phase() {
		case PhaseQuestion:
			require.NoError(t, tr.Complete())
			answered++
		case PhaseFeedback:
			require.NoError(t, tr.AcknowledgeFeedback())
		case PhaseLevelSummary:
			require.NoError(t, tr.AcknowledgeSummary())
		}
	}
	assert.Equal(t, 35, answered)
	assert.Equal(t, 5, tr.Level())
}

func TestTrackerFinalLevelSkipsSummary(t *testing.T) {
	tr := NewTracker()
	for level := 0; level < 4; level++ {
		for i := 0; i < 7; i++ {
			require.NoError(t, tr.Complete())
		}
		require.NoError(t, tr.AcknowledgeFeedback())
		require.NoError(t, tr.AcknowledgeSummary())
	}

	for i := 0; i < 6; i++ {
		require.NoError(t, tr.Complete())
	}
	assert.True(t, tr.IsFinalQuestion())
	require.NoError(t, tr.Complete())
	assert.Equal(t, PhaseFeedback, tr.Phase())

	require.NoError(t, tr.AcknowledgeFeedback())
	assert.Equal(t, PhaseEnded, tr.Phase())
}

func TestTrackerRejectsOutOfPhaseCalls(t *testing.T) {
	tr := NewTracker()
	assert.Error(t, tr.AcknowledgeFeedback())
	assert.Error(t, tr.AcknowledgeSummary())

	for i := 0; i < 7; i++ {
		require.NoError(t, tr.Complete())
	}
	assert.Error(t, tr.Complete())
	assert.Error(t, tr.AcknowledgeSummary())
}

func TestTotalAnswered(t *testing.T) {
	tr := NewTracker()
	assert.Equal(t, 1, tr.TotalAnswered())

	for i := 0; i < 7; i++ {
		require.NoError(t, tr.Complete())
	}
	require.NoError(t, tr.AcknowledgeFeedback())
	require.NoError(t, tr.AcknowledgeSummary())
	assert.Equal(t, 8, tr.TotalAnswered())
}
