package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ItemRarity(t *testing.T) {
	testcases := []struct {
		score    int
		expected string
	}{
		{score: 0, expected: RarityBasic},
		{score: 99, expected: RarityBasic},
		{score: 100, expected: RarityRare},
		{score: 199, expected: RarityRare},
		{score: 200, expected: RarityEpic},
		{score: 299, expected: RarityEpic},
		{score: 300, expected: RarityLegendary},
		{score: 1000, expected: RarityLegendary},
	}

	for _, tc := range testcases {
		require.Equal(t, tc.expected, ItemRarity(tc.score), "score %d", tc.score)
	}
}

func Test_ItemPriceUSDT(t *testing.T) {
	testcases := []struct {
		score    int
		expected int
	}{
		{score: 0, expected: 1},
		{score: 10, expected: 1},
		{score: 60, expected: 3},
		{score: 99, expected: 4},
		{score: 100, expected: 8},
		{score: 200, expected: 25},
		{score: 240, expected: 30},
		{score: 299, expected: 37},
		{score: 300, expected: 60},
	}

	for _, tc := range testcases {
		require.Equal(t, tc.expected, ItemPriceUSDT(tc.score), "score %d", tc.score)
	}
}

func Test_ConvertRankingEntry(t *testing.T) {
	row := ConvertRankingEntry(RankingEntry{Rank: 7, Username: "nova", Score: 420})
	require.Equal(t, RankingRow{
		Rank:   7,
		Name:   "nova",
		Value:  420,
		Avatar: "🚀",
		IsMe:   false,
	}, row)
}

func Test_ConvertProgress(t *testing.T) {
	available := Quest{ID: "q", IsAvailable: true}
	locked := Quest{ID: "q", IsAvailable: false}

	testcases := []struct {
		name     string
		progress QuestProgress
		expected ProgressView
	}{
		{
			name:     "locked quest before start",
			progress: QuestProgress{Status: StatusNotStarted, Quest: locked},
			expected: ProgressView{Bucket: BucketLocked, Action: ActionNone},
		},
		{
			name:     "available quest before start",
			progress: QuestProgress{Status: StatusNotStarted, Quest: available},
			expected: ProgressView{Bucket: BucketInProgress, Action: ActionStart},
		},
		{
			name:     "running quest",
			progress: QuestProgress{Status: StatusInProgress, Quest: available},
			expected: ProgressView{Bucket: BucketInProgress, Action: ActionNone},
		},
		{
			name:     "completed and claimable",
			progress: QuestProgress{Status: StatusCompleted, CanClaim: true, Quest: available},
			expected: ProgressView{Bucket: BucketCompleted, Action: ActionClaim},
		},
		{
			name:     "completed but not claimable",
			progress: QuestProgress{Status: StatusCompleted, CanClaim: false, Quest: available},
			expected: ProgressView{Bucket: BucketCompleted, Action: ActionNone},
		},
		{
			name:     "claimed",
			progress: QuestProgress{Status: StatusClaimed, Quest: available},
			expected: ProgressView{Bucket: BucketCompleted, Action: ActionClaimed},
		},
		{
			name:     "claimable wins even when the quest got locked again",
			progress: QuestProgress{Status: StatusCompleted, CanClaim: true, Quest: locked},
			expected: ProgressView{Bucket: BucketCompleted, Action: ActionClaim},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, ConvertProgress(tc.progress))
		})
	}
}
