package pages

import (
	"context"
	"io"

	"item-notes/models"

	"github.com/a-h/templ"
)

// IndexData is everything the dashboard shows
type IndexData struct {
	User       *models.User
	Items      *models.ItemsPublic
	Categories []string
	Category   string
	Notes      *models.NotesPublic
	Error      string
}

// Index renders the dashboard: items with the category filter, then notes pinned first
func Index(data IndexData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		if data.Error != "" {
			p.raw(`<p class="error">`)
			p.text(data.Error)
			p.raw(`</p>`)
		}
		itemsSection(p, data)
		notesSection(p, data)
		return p.err
	})
	return Layout("Dashboard", data.User, body)
}

func itemsSection(p *printer, data IndexData) {
	p.raw(`<section id="items"><h2>Items</h2>`)

	p.raw(`<form method="get" action="/"><label>Category <select name="category"><option value="">All</option>`)
	for _, cat := range data.Categories {
		p.raw(`<option value="`)
		p.text(cat)
		p.raw(`"`)
		if cat == data.Category {
			p.raw(` selected`)
		}
		p.raw(`>`)
		p.text(cat)
		p.raw(`</option>`)
	}
	p.raw(`</select></label> <button type="submit">Filter</button></form>`)

	p.raw(`<ul>`)
	if data.Items != nil {
		for _, item := range data.Items.Data {
			p.raw(`<li><span>`)
			p.text(item.Title)
			if item.Category != nil {
				p.raw(`<span class="tag">`)
				p.text(*item.Category)
				p.raw(`</span>`)
			}
			if item.Description != nil {
				p.raw(`<br><small>`)
				p.text(*item.Description)
				p.raw(`</small>`)
			}
			p.raw(`</span><form class="inline" method="post" action="/items/`)
			p.text(item.ID)
			p.raw(`/delete"><button type="submit">Delete</button></form></li>`)
		}
	}
	p.raw(`</ul>`)

	p.raw(`<form method="post" action="/items">`)
	p.raw(`<input name="title" placeholder="Title" required maxlength="255"> `)
	p.raw(`<input name="description" placeholder="Description" maxlength="255"> `)
	p.raw(`<input name="category" placeholder="Category" maxlength="100"> `)
	p.raw(`<button type="submit">Add item</button></form></section>`)
}

func notesSection(p *printer, data IndexData) {
	p.raw(`<section id="notes"><h2>Notes</h2><ul>`)
	if data.Notes != nil {
		for _, note := range data.Notes.Data {
			if note.IsPinned {
				p.raw(`<li class="pinned"><span>`)
			} else {
				p.raw(`<li><span>`)
			}
			p.text(note.Title)
			if note.Content != "" {
				p.raw(`<br><small>`)
				p.text(note.Content)
				p.raw(`</small>`)
			}
			p.raw(`</span><span><form class="inline" method="post" action="/notes/`)
			p.text(note.ID)
			p.raw(`/pin"><button type="submit">`)
			if note.IsPinned {
				p.raw(`Unpin`)
			} else {
				p.raw(`Pin`)
			}
			p.raw(`</button></form> <form class="inline" method="post" action="/notes/`)
			p.text(note.ID)
			p.raw(`/delete"><button type="submit">Delete</button></form></span></li>`)
		}
	}
	p.raw(`</ul>`)

	p.raw(`<form method="post" action="/notes">`)
	p.raw(`<input name="title" placeholder="Title" required maxlength="255"> `)
	p.raw(`<input name="content" placeholder="Content"> `)
	p.raw(`<label><input type="checkbox" name="is_pinned" value="true"> Pinned</label> `)
	p.raw(`<button type="submit">Add note</button></form></section>`)
}
