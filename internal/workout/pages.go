package workout

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/2beens/sorcerer/internal/program"
	"github.com/2beens/sorcerer/internal/tracker"
)

//go:embed templates/*.html
var templatesFS embed.FS

type dayTab struct {
	Day    program.Day
	Short  string
	Active bool
}

type pageData struct {
	State         tracker.Snapshot
	Days          []dayTab
	Icon          string
	Rules         []program.RulesSection
	Recovery      []string
	DurationWeeks int
}

// Pages renders the single page, either whole or just the app body for in-place updates.
type Pages struct {
	tmpl *template.Template
}

func NewPages() (*Pages, error) {
	funcMap := template.FuncMap{
		"pct": func(f float64) string {
			return fmt.Sprintf("%.0f%%", f)
		},
		"width": func(f float64) template.CSS {
			return template.CSS(fmt.Sprintf("width: %.2f%%", f))
		},
		"upper": strings.ToUpper,
		"formURL": func(id string) string {
			return "/exercises/" + id + "/form"
		},
		"isRules": func(v tracker.View) bool {
			return v == tracker.ViewRules
		},
	}

	tmpl, err := template.New("page").Funcs(funcMap).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	return &Pages{tmpl: tmpl}, nil
}

func (p *Pages) Render(state tracker.Snapshot, partial bool) ([]byte, error) {
	data := newPageData(state)
	name := "layout"
	if partial {
		name = "app"
	}

	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func newPageData(state tracker.Snapshot) pageData {
	tabs := make([]dayTab, 0, 7)
	for _, d := range program.Days() {
		tabs = append(tabs, dayTab{Day: d, Short: d.Short(), Active: d == state.Day})
	}
	return pageData{
		State:         state,
		Days:          tabs,
		Icon:          state.Day.Icon(),
		Rules:         program.RulesPanel(),
		Recovery:      program.RecoveryProtocol(),
		DurationWeeks: program.ProgramMeta().DurationWeeks,
	}
}
