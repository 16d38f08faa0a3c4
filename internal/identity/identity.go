package identity

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/CookieClicker_Go/internal/domain"
)

// Provider returns the current player. It is read-only and never fails.
type Provider interface {
	Current() domain.User
}

// Static always returns the same configured user
type Static struct {
	user domain.User
}

// NewStatic creates a provider for a fixed player. Blank values fall back
// to the demo player.
func NewStatic(id, username string) *Static {
	id = strings.TrimSpace(id)
	if id == "" {
		id = DefaultPlayerID
	}
	username = strings.TrimSpace(username)
	if username == "" {
		username = DefaultPlayerName
	}
	return &Static{user: domain.User{ID: id, Username: username}}
}

// Current returns the configured user
func (s *Static) Current() domain.User {
	return s.user
}

// DisplayName title-cases the username for presentation
func DisplayName(u domain.User) string {
	return cases.Title(language.English, cases.NoLower).String(u.Username)
}

// Namespace returns the save namespace for the user
func Namespace(u domain.User) string {
	if u.ID == "" {
		return DefaultPlayerID
	}
	return u.ID
}
