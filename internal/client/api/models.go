package api

// LoginRequest is the body of POST /auth/login. Login carries the email.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// UserProfile is the read-only projection returned by GET /user/profile.
type UserProfile struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Token string `json:"token"`
}

// NewEvent is the body of POST /event. Guests are email addresses.
type NewEvent struct {
	Name   string   `json:"name"`
	Guests []string `json:"guests"`
}

// User is a participant as embedded in event listings.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	Nickname string `json:"nickname,omitempty"`
	Email    string `json:"email"`
}

type Event struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	Admin     *User  `json:"admin,omitempty"`
	Guests    []User `json:"guests,omitempty"`
}

// EventList is the response of GET /event: events the user administers and
// events the user is invited to.
type EventList struct {
	ManagedEvents []Event `json:"managedEvents"`
	GuestEvents   []Event `json:"guestEvents"`
}
