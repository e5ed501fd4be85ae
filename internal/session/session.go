package session

import (
	"context"
	"strings"

	"go-clothing-store/internal/apiclient"

	"github.com/shopspring/decimal"
)

type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// User is the profile cached next to the bearer token.
type User struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Role    string          `json:"role"`
	IsAdmin bool            `json:"is_admin"`
	Balance decimal.Decimal `json:"balance"`
}

func UserFromAPI(u apiclient.User) User {
	return User{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    u.Role,
		IsAdmin: u.IsAdmin,
		Balance: u.Balance,
	}
}

// Session is one browser's view of the identity holder. ID identifies the
// browser (guest cart and wishlist hang off it) and survives logins.
type Session struct {
	ID    string
	Token string
	User  *User
}

func (s Session) State() State {
	if s.Token != "" && s.User != nil {
		return Authenticated
	}
	return Anonymous
}

func (s Session) IsAuthenticated() bool {
	return s.State() == Authenticated
}

func (s Session) IsAdmin() bool {
	if !s.IsAuthenticated() {
		return false
	}
	return s.User.IsAdmin || strings.EqualFold(s.User.Role, "admin")
}

// Anonymized drops the credential but keeps the browser identity.
func (s Session) Anonymized() Session {
	return Session{ID: s.ID}
}

type ctxKey struct{}

func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}
