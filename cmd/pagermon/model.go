package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sisoputnfrba/tp-2025-2c-ElPager/internal/pager"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Quit    key.Binding
	Refresh key.Binding
}

var keys = keyMap{
	Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
	Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh now")),
}

// model polls cmd/pagerd's GET /pager/debug endpoint on an interval and
// renders the last snapshot it got. It never talks to internal/pager
// directly — pagermon is a client of the daemon, same as any other
// caller of the HTTP surface.
type model struct {
	daemonURL string
	interval  time.Duration

	snap    pager.Snapshot
	err     error
	cursor  int
	width   int
	height  int
}

type snapshotMsg struct {
	snap pager.Snapshot
	err  error
}

type tickMsg struct{}

func initialModel(daemonURL string, interval time.Duration) model {
	return model{daemonURL: daemonURL, interval: interval}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(fetchSnapshot(m.daemonURL), tick(m.interval))
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return tickMsg{} })
}

func fetchSnapshot(url string) tea.Cmd {
	return func() tea.Msg {
		resp, err := http.Get(url)
		if err != nil {
			return snapshotMsg{err: err}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return snapshotMsg{err: fmt.Errorf("pagermon: daemon returned %s", resp.Status)}
		}

		var snap pager.Snapshot
		if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
			return snapshotMsg{err: err}
		}
		return snapshotMsg{snap: snap}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, tea.Batch(fetchSnapshot(m.daemonURL), tick(m.interval))

	case snapshotMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.snap = msg.snap
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Refresh):
			return m, fetchSnapshot(m.daemonURL)
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			m.cursor++
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("pagermon — live pager state"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf(" frames free: %d  blocks free: %d  current pid: %d ",
		len(m.snap.FreeFrames), len(m.snap.FreeBlocks), m.snap.CurrentPID)))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render(fmt.Sprintf(" clock queue (%d entries) ", len(m.snap.Clock))))
	b.WriteString("\n")
	for _, entry := range m.snap.Clock {
		line := fmt.Sprintf("pid=%d vpage=%d frame=%d ref=%v", entry.PID, entry.VPage, entry.Frame, entry.Referenced)
		if entry.Modified {
			b.WriteString(modifiedStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, proc := range m.snap.Processes {
		b.WriteString(headerStyle.Render(fmt.Sprintf(" pid %d — %d pages, next vaddr %#x ", proc.PID, proc.Pages, proc.NextVAddr)))
		b.WriteString("\n")
		for _, page := range proc.Table {
			line := fmt.Sprintf("vpage=%d frame=%d r=%v w=%v resident=%v modified=%v zero_pending=%v",
				page.VPage, page.Frame, page.ReadEnable, page.WriteEnable, page.Resident, page.Modified, page.ZeroPending)
			style := rowStyle
			if page.Resident {
				style = residentStyle
			}
			b.WriteString(style.Render(line))
			b.WriteString("\n")
		}
	}

	b.WriteString(statusBarStyle.Render(" q: quit   r: refresh now "))
	return lipgloss.NewStyle().Render(b.String())
}
