package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Login renders the sign-in form. errMsg and email are echoed back after a failed attempt.
func Login(errMsg, email string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw(`<section><h2>Log in</h2>`)
		if errMsg != "" {
			p.raw(`<p class="error">`)
			p.text(errMsg)
			p.raw(`</p>`)
		}
		p.raw(`<form method="post" action="/login">`)
		p.raw(`<p><label>Email <input type="email" name="username" required value="`)
		p.text(email)
		p.raw(`"></label></p>`)
		p.raw(`<p><label>Password <input type="password" name="password" required></label></p>`)
		p.raw(`<p><button type="submit">Log in</button></p></form></section>`)
		return p.err
	})
	return Layout("Log in", nil, body)
}
