package model

type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Score    int    `json:"score"`
	TokenID  string `json:"tokenId,omitempty"`
	Equipped bool   `json:"equipped"`
}

type GetInventoryResponse struct {
	Items []Item `json:"items"`
}

type EquipItemRequest struct {
	WalletAddress string `json:"walletAddress"`
	ItemID        string `json:"itemId"`
}

type EquipItemResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type SellItemRequest struct {
	WalletAddress string `json:"walletAddress"`
	ItemID        string `json:"itemId"`

	// PriceUSDT is the derived listing price, see ItemPriceUSDT.
	PriceUSDT int `json:"priceUsdt"`
}

type SellItemResponse struct {
	Success bool   `json:"success"`
	TxHash  string `json:"txHash,omitempty"`
	Message string `json:"message,omitempty"`
}

// ItemView is the display-facing projection of an item with its derived
// rarity tier and marketplace price.
type ItemView struct {
	Item
	Rarity    string `json:"rarity"`
	PriceUSDT int    `json:"priceUsdt"`
}
