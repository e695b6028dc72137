package web

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/session"
)

type Link struct {
	Label string
	Href  string
}

// Links are shown in the header on every page.
var Links = []Link{
	{Label: "Home", Href: "/"},
	{Label: "Demo", Href: "/demo"},
	{Label: "Dashboard", Href: "/dashboard"},
	{Label: "Partners", Href: "/partners"},
	{Label: "Contact", Href: "/contact"},
}

// Nav is the header view model.
type Nav struct {
	Authenticated bool
	FullName      string
	Email         string
	Initial       string
	Links         []Link
}

// NewNav reads the signed-in user from sess.
func NewNav(ctx context.Context, sess *session.Session) (Nav, error) {
	nav := Nav{Links: Links}

	user, err := sess.User(ctx)
	if err != nil {
		return nav, err
	}
	if user == nil {
		return nav, nil
	}

	nav.Authenticated = true
	nav.FullName = user.FullName
	nav.Email = user.Email
	nav.Initial = initial(user.FullName)
	return nav, nil
}

func initial(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return "U"
	}
	return strings.ToUpper(string(r))
}
