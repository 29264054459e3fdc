package user

// User is the signed-in identity as returned by the auth endpoints.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// Session pairs an identity with its bearer credential. A nil *Session means
// the client is anonymous.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Address is the delivery address edited on the profile page. It is persisted
// locally and independently of the session; the backend never sees it.
type Address struct {
	Name   string `json:"name"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
	Phone  string `json:"phone"`
}

// DisplayName prefers the real name and falls back to the username.
func (u User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName + " " + u.LastName
	}
	return u.Username
}
