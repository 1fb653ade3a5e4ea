package entity

// UserAuth identifies an authenticated API client.
type UserAuth struct {
	Username string `json:"username"`
}
