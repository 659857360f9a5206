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

// Package tui implements an interactive terminal vocabulary browser.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ianlewis/go-vocab"
	"github.com/ianlewis/go-vocab/facet"
	"github.com/ianlewis/go-vocab/internal/debounce"
	"github.com/ianlewis/go-vocab/internal/folding"
	"github.com/ianlewis/go-vocab/session"
	"github.com/ianlewis/go-vocab/speech"
)

const (
	// SearchDelay is the quiet period after the last keystroke before the
	// search term is applied.
	SearchDelay = 300 * time.Millisecond

	// LoadingDelay is how long the loading indicator is shown before the
	// vocabulary is loaded.
	LoadingDelay = 500 * time.Millisecond
)

// loadedMsg is sent when the loading delay has elapsed.
type loadedMsg struct {
	// reset clears the query as well.
	reset bool
}

// searchMsg is sent by the debouncer with the search term to apply.
type searchMsg struct {
	search string
}

// Options are options for the browser.
type Options struct {
	// State is the session to browse.
	State *session.State

	// Speaker speaks headwords and translations. May be nil.
	Speaker *speech.Speaker

	// Text is the default vocabulary text loaded at start and on reset.
	Text string
}

// Model is the bubbletea model for the browser.
type Model struct {
	state   *session.State
	speaker *speech.Speaker
	text    string

	search   *debounce.Debouncer
	send     func(tea.Msg)
	loading  bool
	input    string
	selected int
	width    int
	notice   string
	styles   styles
}

// New returns a new browser model.
func New(opts Options) *Model {
	speaker := opts.Speaker
	if speaker == nil {
		speaker = speech.NewSpeaker(nil, nil)
	}
	return &Model{
		state:   opts.State,
		speaker: speaker,
		text:    opts.Text,
		search:  debounce.New(SearchDelay),
		loading: true,
		styles:  newStyles(opts.State.Theme()),
	}
}

// Run runs the browser until the user quits or ctx is canceled.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)
	m.send = p.Send
	defer m.close()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}

// Init implements [tea.Model.Init].
func (m *Model) Init() tea.Cmd {
	return loadAfterDelay(false)
}

func loadAfterDelay(reset bool) tea.Cmd {
	return tea.Tick(LoadingDelay, func(time.Time) tea.Msg {
		return loadedMsg{reset: reset}
	})
}

// Update implements [tea.Model.Update].
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.reset {
			m.state.Reset(m.text)
		} else {
			m.state.Load(m.text)
		}
		m.loading = false
		m.clampSelection()
	case searchMsg:
		// Input has changed since the search was scheduled.
		if msg.search != m.input {
			break
		}
		m.state.SetSearch(msg.search)
		m.clampSelection()
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.BlurMsg:
		m.speaker.Suspend()
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.notice = ""

	switch msg.String() {
	case "ctrl+c", "esc":
		m.close()
		return tea.Quit
	case "ctrl+t":
		m.styles = newStyles(m.state.ToggleTheme())
		return nil
	}

	if m.loading {
		return nil
	}

	switch msg.String() {
	case "ctrl+r":
		m.search.Stop()
		m.input = ""
		m.selected = 0
		m.loading = true
		return loadAfterDelay(true)
	case "tab":
		m.state.SetLevel(next(m.state.Facets().LevelOptions(), m.state.Query().Level))
		m.clampSelection()
	case "shift+tab":
		m.state.SetPartOfSpeech(next(m.state.Facets().PartOfSpeechOptions(), m.state.Query().PartOfSpeech))
		m.clampSelection()
	case "up":
		if m.selected > 0 {
			m.selected--
		}
	case "down":
		if m.selected < len(m.state.Filtered())-1 {
			m.selected++
		}
	case "ctrl+e":
		if r := m.current(); r != nil {
			m.speak(r.English, speech.English)
		}
	case "ctrl+u":
		if r := m.current(); r != nil {
			m.speak(r.Translation, speech.Uzbek)
		}
	case "backspace":
		if m.input != "" {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
			m.trigger()
		}
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.input += string(msg.Runes)
			m.trigger()
		}
	}
	return nil
}

// trigger schedules the current input to be applied as the search term.
func (m *Model) trigger() {
	search := m.input
	m.search.Trigger(func() {
		if m.send != nil {
			m.send(searchMsg{search: search})
		}
	})
}

func (m *Model) speak(text string, lang speech.Language) {
	if !m.speaker.Supported() {
		m.notice = "Speech synthesis is not supported"
		return
	}
	m.speaker.Speak(text, lang)
}

func (m *Model) current() *vocab.Record {
	filtered := m.state.Filtered()
	if m.selected < 0 || m.selected >= len(filtered) {
		return nil
	}
	return filtered[m.selected]
}

func (m *Model) clampSelection() {
	if n := len(m.state.Filtered()); m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *Model) close() {
	m.search.Stop()
	m.speaker.Suspend()
}

// next returns the value of the option after the one with value current.
func next(opts []facet.Option, current string) string {
	for i, o := range opts {
		if o.Value == current {
			return opts[(i+1)%len(opts)].Value
		}
	}
	return opts[0].Value
}

func label(opts []facet.Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// View implements [tea.Model.View].
func (m *Model) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.title.Render("Vocabulary"))
	b.WriteString("  ")
	b.WriteString(s.status.Render(fmt.Sprintf("[%s]", m.state.Theme())))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(s.status.Render("Loading vocabulary..."))
		b.WriteString("\n")
		return b.String()
	}

	q := m.state.Query()
	facets := m.state.Facets()
	b.WriteString(s.prompt.Render("Search: "))
	b.WriteString(s.filter.Render(m.input))
	b.WriteString("\n")
	b.WriteString(s.filter.Render(fmt.Sprintf("Level: %s  Part of Speech: %s",
		label(facets.LevelOptions(), q.Level),
		label(facets.PartOfSpeechOptions(), q.PartOfSpeech))))
	b.WriteString("\n")
	b.WriteString(s.status.Render(m.state.Count()))
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(s.label.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	filtered := m.state.Filtered()
	if len(filtered) == 0 {
		b.WriteString(s.empty.Render("No words found\nTry adjusting your search or filters"))
		b.WriteString("\n")
	}
	for i, r := range filtered {
		b.WriteString(m.card(i, r))
		b.WriteString("\n")
	}

	b.WriteString(s.muted.Render("type to search • tab level • shift+tab part of speech • ctrl+e/ctrl+u speak • ctrl+t theme • ctrl+r reset • esc quit"))
	return b.String()
}

func (m *Model) card(i int, r *vocab.Record) string {
	s := m.styles

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top,
			s.headword.Render(folding.Line(r.English)),
			" ",
			s.muted.Render(fmt.Sprintf("#%d", i+1)),
			" ",
			s.tag.Render(folding.Line(r.PartOfSpeech)),
			" ",
			s.tag.Render(folding.Line(r.DisplayLevel())),
		),
		fmt.Sprintf("%s %s", folding.Line(r.Translation), s.muted.Render(folding.Line(r.TranslationPartOfSpeech))),
		s.label.Render("Example:") + " " + quote(r.ExampleSource),
	}
	if r.ExampleTranslation != "" {
		lines = append(lines, s.label.Render("Tarjima:")+" "+quote(r.ExampleTranslation))
	}

	style := s.card
	if i == m.selected {
		style = s.selected
	}
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func quote(s string) string {
	return "\"" + folding.Line(s) + "\""
}
