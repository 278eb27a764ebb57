package dto

// TokenDTO carries the issued access token in the login response.
type TokenDTO struct {
	AccessToken string `json:"access_token"`
}
