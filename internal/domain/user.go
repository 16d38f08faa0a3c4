package domain

// User is the read-only identity of the player. It only feeds presentation
// and the save namespace; game rules never look at it.
type User struct {
	ID        string `json:"user_id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}
