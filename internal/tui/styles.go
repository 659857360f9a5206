// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ianlewis/go-vocab/session"
)

// palette is the set of colors for a theme.
type palette struct {
	text      lipgloss.Color
	muted     lipgloss.Color
	accent    lipgloss.Color
	border    lipgloss.Color
	selection lipgloss.Color
	tag       lipgloss.Color
}

var palettes = map[session.Theme]palette{
	session.Light: {
		text:      lipgloss.Color("#1f2933"),
		muted:     lipgloss.Color("#616e7c"),
		accent:    lipgloss.Color("#2563eb"),
		border:    lipgloss.Color("#cbd2d9"),
		selection: lipgloss.Color("#2563eb"),
		tag:       lipgloss.Color("#e4e7eb"),
	},
	session.Dark: {
		text:      lipgloss.Color("#e4e7eb"),
		muted:     lipgloss.Color("#9aa5b1"),
		accent:    lipgloss.Color("#60a5fa"),
		border:    lipgloss.Color("#3e4c59"),
		selection: lipgloss.Color("#60a5fa"),
		tag:       lipgloss.Color("#323f4b"),
	},
}

// styles are the lipgloss styles used by the view.
type styles struct {
	title    lipgloss.Style
	status   lipgloss.Style
	prompt   lipgloss.Style
	filter   lipgloss.Style
	card     lipgloss.Style
	selected lipgloss.Style
	headword lipgloss.Style
	tag      lipgloss.Style
	label    lipgloss.Style
	muted    lipgloss.Style
	empty    lipgloss.Style
}

func newStyles(t session.Theme) styles {
	p, ok := palettes[t]
	if !ok {
		p = palettes[session.Light]
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.border).
		Foreground(p.text).
		Padding(0, 1)

	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		status:   lipgloss.NewStyle().Foreground(p.muted),
		prompt:   lipgloss.NewStyle().Foreground(p.accent),
		filter:   lipgloss.NewStyle().Foreground(p.text),
		card:     card,
		selected: card.BorderForeground(p.selection),
		headword: lipgloss.NewStyle().Bold(true).Foreground(p.text),
		tag:      lipgloss.NewStyle().Background(p.tag).Foreground(p.text).Padding(0, 1),
		label:    lipgloss.NewStyle().Italic(true).Foreground(p.muted),
		muted:    lipgloss.NewStyle().Foreground(p.muted),
		empty:    lipgloss.NewStyle().Foreground(p.muted).Padding(1, 2),
	}
}
