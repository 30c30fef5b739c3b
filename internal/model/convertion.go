package model

// Rarity tiers by item score. Tier names are the marketplace display strings.
const (
	RarityBasic     = "기본"
	RarityRare      = "레어"
	RarityEpic      = "에픽"
	RarityLegendary = "전설"
)

// ItemRarity classifies an item score into its rarity tier. Thresholds are
// 100, 200 and 300, lower bound inclusive.
func ItemRarity(score int) string {
	switch {
	case score >= 300:
		return RarityLegendary
	case score >= 200:
		return RarityEpic
	case score >= 100:
		return RarityRare
	default:
		return RarityBasic
	}
}

// ItemPriceUSDT derives the marketplace listing price from an item score. Each
// tier has its own divisor, the basic tier never prices below 1 USDT.
func ItemPriceUSDT(score int) int {
	switch {
	case score >= 300:
		return score / 5
	case score >= 200:
		return score / 8
	case score >= 100:
		return score / 12
	default:
		if p := score / 20; p > 1 {
			return p
		}
		return 1
	}
}

func ConvertItem(item Item) ItemView {
	return ItemView{
		Item:      item,
		Rarity:    ItemRarity(item.Score),
		PriceUSDT: ItemPriceUSDT(item.Score),
	}
}

// ConvertRankingEntry maps a backend leaderboard entry to its display row.
// The avatar is a fixed default and IsMe is always false, there is no
// identity comparison at this layer.
func ConvertRankingEntry(entry RankingEntry) RankingRow {
	return RankingRow{
		Rank:   entry.Rank,
		Name:   entry.Username,
		Value:  entry.Score,
		Avatar: "🚀",
		IsMe:   false,
	}
}

// Display buckets of a quest card.
const (
	BucketLocked     = "locked"
	BucketInProgress = "in-progress"
	BucketCompleted  = "completed"
)

// Claim affordances of a quest card. CanClaim is the sole gate for the claim
// action.
const (
	ActionStart   = "start"
	ActionClaim   = "claim"
	ActionClaimed = "claimed"
	ActionNone    = "none"
)

type ProgressView struct {
	Bucket string
	Action string
}

// ConvertProgress projects a progress snapshot onto its display bucket and
// action button. It is recomputed from the source snapshot on every render,
// never cached separately.
func ConvertProgress(p QuestProgress) ProgressView {
	view := ProgressView{Bucket: BucketInProgress, Action: ActionNone}

	if !p.Quest.IsAvailable && p.Status == StatusNotStarted {
		view.Bucket = BucketLocked
		return view
	}

	switch p.Status {
	case StatusNotStarted:
		view.Action = ActionStart
	case StatusCompleted, StatusClaimed:
		view.Bucket = BucketCompleted
	}

	if p.CanClaim {
		view.Action = ActionClaim
	} else if p.Status == StatusClaimed {
		view.Action = ActionClaimed
	}

	return view
}
