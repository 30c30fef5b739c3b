package model

type User struct {
	ID            string `json:"id"`
	LineUserID    string `json:"lineUserId"`
	DisplayName   string `json:"displayName"`
	PictureURL    string `json:"pictureUrl,omitempty"`
	WalletAddress string `json:"walletAddress,omitempty"`
	Level         int    `json:"level"`
	Experience    int    `json:"experience"`
}

type Pet struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type SimpleLoginRequest struct {
	LineUserID  string `json:"lineUserId"`
	DisplayName string `json:"displayName"`
	PictureURL  string `json:"pictureUrl,omitempty"`
}

type SimpleLoginResponse struct {
	Success bool   `json:"success"`
	User    User   `json:"user"`
	IsNew   bool   `json:"isNew"`
	Message string `json:"message,omitempty"`
}

type SelectPetRequest struct {
	PetType string `json:"petType"`
	Name    string `json:"name,omitempty"`
}

type SelectPetResponse struct {
	Success bool   `json:"success"`
	Pet     Pet    `json:"pet"`
	Message string `json:"message,omitempty"`
}

type UpdateWalletAddressRequest struct {
	WalletAddress string `json:"walletAddress"`
}

type UpdateWalletAddressResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
