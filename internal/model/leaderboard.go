package model

type GetRankingsRequest struct {
	Type   string `json:"type,omitempty"`
	Period string `json:"period,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

type RankingEntry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Score    int    `json:"score"`
}

type GetRankingsResponse struct {
	Rankings []RankingEntry `json:"rankings"`
}

// RankingRow is the display-facing projection of a backend ranking entry.
type RankingRow struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Value  int    `json:"value"`
	Avatar string `json:"avatar"`
	IsMe   bool   `json:"isMe"`
}
