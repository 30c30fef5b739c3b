package domain

import (
	"github.com/spacepet-lab/client/internal/model"
)

// statusOrder ranks progress statuses along their only legal direction.
// A quest never moves backwards through these.
var statusOrder = map[model.ProgressStatus]int{
	model.StatusNotStarted: 0,
	model.StatusInProgress: 1,
	model.StatusCompleted:  2,
	model.StatusClaimed:    3,
}

func statusRank(s model.ProgressStatus) int {
	rank, ok := statusOrder[s]
	if !ok {
		return -1
	}

	return rank
}

// IsForwardTransition reports whether moving from one status to another
// advances the quest lifecycle. Staying in place counts as forward, rolling
// back or entering an unknown status does not.
func IsForwardTransition(from, to model.ProgressStatus) bool {
	fromRank, toRank := statusRank(from), statusRank(to)
	if fromRank < 0 || toRank < 0 {
		return false
	}

	return toRank >= fromRank
}

// MergeProgress reconciles a cached snapshot with a freshly fetched one for
// the same quest. The further-along snapshot wins, so a stale poll response
// arriving late can never roll the visible status back.
func MergeProgress(cached, fresh model.QuestProgress) model.QuestProgress {
	if !IsForwardTransition(cached.Status, fresh.Status) {
		return cached
	}

	if fresh.Status == cached.Status && fresh.Progress < cached.Progress {
		return cached
	}

	return fresh
}

// MergeProgressList reconciles the cached snapshot list with a fresh one,
// keyed by quest id. Quests appearing only in the fresh list are taken as is,
// quests dropped by the backend are dropped here too.
func MergeProgressList(cached, fresh []model.QuestProgress) []model.QuestProgress {
	cachedByID := map[string]model.QuestProgress{}
	for _, p := range cached {
		cachedByID[p.QuestID] = p
	}

	merged := make([]model.QuestProgress, 0, len(fresh))
	for _, p := range fresh {
		if old, ok := cachedByID[p.QuestID]; ok {
			merged = append(merged, MergeProgress(old, p))
		} else {
			merged = append(merged, p)
		}
	}

	return merged
}
