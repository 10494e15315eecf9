package models

// Actor roles. Any role other than provider or requester is treated as an
// administrative view with full visibility.
const (
	RoleProvider  = "provider"
	RoleRequester = "requester"
)

// Actor identifies who is performing an operation. Identity is established
// upstream (JWT middleware); this core never makes auth decisions beyond
// the ownership checks the state machine requires.
type Actor struct {
	ID       string `bson:"id" json:"id"`
	Role     string `bson:"role" json:"role"`
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email,omitempty" json:"email,omitempty"`
	FCMToken string `bson:"fcm_token,omitempty" json:"-"`
}
