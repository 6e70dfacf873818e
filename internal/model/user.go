package model

// User is the minimal identity record referenced by issues, comments,
// and history rows. Credential handling lives outside this engine; the
// password is stored as an opaque string.
type User struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	Password    string  `json:"-"`
	DisplayName *string `json:"displayName,omitempty"`
	AvatarURL   *string `json:"avatarUrl,omitempty"`
}

// NewUser carries the caller-supplied fields for user creation.
// Username must be unique; a duplicate surfaces as a constraint error.
type NewUser struct {
	Username    string  `json:"username"`
	Password    string  `json:"password"`
	DisplayName *string `json:"displayName,omitempty"`
	AvatarURL   *string `json:"avatarUrl,omitempty"`
}
