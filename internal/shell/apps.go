package shell

import (
	"swim/internal/document"
	"swim/internal/explorer"
	"swim/internal/pane"
	"swim/internal/script"
)

// app is the mode a slot is in: *browserApp, *editorApp or *scriptApp.
type app interface {
	title() string
	draw(p *pane.Pane)
}

type browserApp struct {
	ex *explorer.Explorer
}

type editorApp struct {
	name string
	doc  *document.Document
}

type scriptApp struct {
	sess *script.Session
	// reported is set once the finished session has been logged.
	reported bool
}

func (a *browserApp) title() string { return "files" }
func (a *editorApp) title() string {
	if a.doc.Modified() {
		return a.name + "*"
	}
	return a.name
}
func (a *scriptApp) title() string {
	if a.sess.Full() {
		return "run " + a.sess.Name() + " (full)"
	}
	return "run " + a.sess.Name()
}

func (a *browserApp) draw(p *pane.Pane) { a.ex.Draw(p) }
func (a *editorApp) draw(p *pane.Pane)  { a.doc.Draw(p) }
func (a *scriptApp) draw(p *pane.Pane)  { a.sess.Draw(p) }

// Mode names reported to the front end.
const (
	ModeFiles  = "files"
	ModeEdit   = "edit"
	ModeScript = "run"
)

func modeOf(a app) string {
	switch a.(type) {
	case *editorApp:
		return ModeEdit
	case *scriptApp:
		return ModeScript
	}
	return ModeFiles
}
