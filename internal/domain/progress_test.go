package domain

import (
	"testing"

	"github.com/spacepet-lab/client/internal/model"
	"github.com/stretchr/testify/require"
)

func Test_IsForwardTransition(t *testing.T) {
	testcases := []struct {
		from     model.ProgressStatus
		to       model.ProgressStatus
		expected bool
	}{
		{from: model.StatusNotStarted, to: model.StatusInProgress, expected: true},
		{from: model.StatusInProgress, to: model.StatusCompleted, expected: true},
		{from: model.StatusCompleted, to: model.StatusClaimed, expected: true},
		{from: model.StatusInProgress, to: model.StatusInProgress, expected: true},
		{from: model.StatusNotStarted, to: model.StatusClaimed, expected: true},
		{from: model.StatusClaimed, to: model.StatusCompleted, expected: false},
		{from: model.StatusCompleted, to: model.StatusInProgress, expected: false},
		{from: model.StatusInProgress, to: model.StatusNotStarted, expected: false},
		{from: model.StatusInProgress, to: model.ProgressStatus("bogus"), expected: false},
	}

	for _, tc := range testcases {
		require.Equal(t, tc.expected, IsForwardTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func Test_MergeProgress_NeverRollsBack(t *testing.T) {
	cached := model.QuestProgress{QuestID: "q1", Status: model.StatusCompleted, Progress: 100}

	// A stale snapshot arriving after completion is dropped.
	stale := model.QuestProgress{QuestID: "q1", Status: model.StatusInProgress, Progress: 40}
	require.Equal(t, cached, MergeProgress(cached, stale))

	// A same-status snapshot with a smaller amount is dropped too.
	cached = model.QuestProgress{QuestID: "q1", Status: model.StatusInProgress, Progress: 70}
	smaller := model.QuestProgress{QuestID: "q1", Status: model.StatusInProgress, Progress: 50}
	require.Equal(t, cached, MergeProgress(cached, smaller))

	// Forward movement is taken.
	claimed := model.QuestProgress{QuestID: "q1", Status: model.StatusClaimed, Progress: 100}
	require.Equal(t, claimed, MergeProgress(cached, claimed))
}

func Test_MergeProgressList(t *testing.T) {
	cached := []model.QuestProgress{
		{QuestID: "q1", Status: model.StatusCompleted, Progress: 100},
		{QuestID: "q2", Status: model.StatusInProgress, Progress: 30},
	}

	fresh := []model.QuestProgress{
		{QuestID: "q1", Status: model.StatusInProgress, Progress: 90},
		{QuestID: "q2", Status: model.StatusInProgress, Progress: 45},
		{QuestID: "q3", Status: model.StatusNotStarted},
	}

	merged := MergeProgressList(cached, fresh)
	require.Len(t, merged, 3)
	require.Equal(t, model.StatusCompleted, merged[0].Status)
	require.Equal(t, float64(45), merged[1].Progress)
	require.Equal(t, "q3", merged[2].QuestID)
}
