// Package pages holds the server-rendered screens.
package pages

import (
	"context"
	"io"

	"item-notes/models"

	"github.com/a-h/templ"
)

const styles = `
body{font-family:system-ui,sans-serif;max-width:960px;margin:0 auto;padding:1rem;color:#222}
header{display:flex;justify-content:space-between;align-items:center;border-bottom:1px solid #ddd;margin-bottom:1rem}
section{margin-bottom:2rem}
ul{list-style:none;padding:0}
li{display:flex;justify-content:space-between;align-items:center;padding:.4rem 0;border-bottom:1px solid #eee}
.pinned{font-weight:600}
.tag{background:#eef;border-radius:4px;padding:0 .4rem;margin-left:.4rem;font-size:.85em}
.error{color:#b00}
form.inline{display:inline}
`

// Layout wraps body in the common page chrome. user may be nil on public pages.
func Layout(title string, user *models.User, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		p.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		p.raw(`<title>`)
		p.text(title)
		p.raw(`</title><style>`)
		p.raw(styles)
		p.raw(`</style></head><body><header><h1>Item Notes</h1>`)
		if user != nil {
			p.raw(`<div><span>`)
			p.text(user.Email)
			p.raw(`</span> <form class="inline" method="post" action="/logout"><button type="submit">Log out</button></form></div>`)
		}
		p.raw(`</header><main>`)
		if p.err != nil {
			return p.err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		p.raw(`</main></body></html>`)
		return p.err
	})
}

// printer accumulates the first write error so components can emit markup without checking every call
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) raw(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) text(s string) {
	p.raw(templ.EscapeString(s))
}
