package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"auction-market/configs"
	"auction-market/internal/database"
	"auction-market/pkg/utils"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	db database.Service
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Every(1*time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	table     table.Model
	viewport  viewport.Model
	logBuffer *bytes.Buffer
	logs      []string
	showTable bool
	quitting  bool
}

func (m model) Init() tea.Cmd {
	return tick()
}

func auctionRows() []table.Row {
	auctions, err := db.GetActiveAuctions(context.Background())
	if err != nil {
		log.Error("Error getting auctions: ", err)
		return nil
	}

	rows := make([]table.Row, 0, len(auctions))
	for _, auction := range auctions {
		timeLeft := time.Until(auction.EndTime)
		timeLeftStr := timeLeft.Round(time.Second).String()
		if timeLeft < 0 {
			timeLeftStr = "Ended"
		}

		rows = append(rows, table.Row{
			fmt.Sprintf("%d", auction.ID),
			auction.Title,
			fmt.Sprintf("%.2f", auction.CurrentPrice),
			timeLeftStr,
		})
	}
	return rows
}

func newTable() model {
	columns := []table.Column{
		{Title: "AUCTION ID", Width: 12},
		{Title: "TITLE", Width: 30},
		{Title: "CURRENT PRICE", Width: 16},
		{Title: "TIME LEFT", Width: 20},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(auctionRows()),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	vp := viewport.New(100, 15)
	vp.Style = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		PaddingRight(2)
	return model{table: t, showTable: true, viewport: vp}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)
	switch msg := msg.(type) {
	case tickMsg:
		if m.showTable {
			m.table.SetRows(auctionRows())
		} else {
			// refresh logs to get new logs
			m.logs = strings.Split(m.logBuffer.String(), "\n")
		}
		// re-arm the next refresh in both views
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "up":
			if !m.showTable {
				m.viewport.LineUp(1)
			}
		case "down":
			if !m.showTable {
				m.viewport.LineDown(1)
			}
		case "tab":
			m.showTable = !m.showTable
			if !m.showTable {
				m.logs = strings.Split(m.logBuffer.String(), "\n")
			}
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	}

	if m.showTable {
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m model) View() string {
	if m.quitting {
		return "Bye!\n"
	}
	if m.showTable {
		return baseStyle.Render(m.table.View()) + "\n" + helpStyle.Render("• tab: switch modes • q: exit\n")
	}

	styledLogs := make([]string, len(m.logs))
	copy(styledLogs, m.logs)
	styledLogs = utils.ColorizeLogs(styledLogs)

	// only show last 15 lines of logs
	if len(styledLogs) > 15 {
		styledLogs = styledLogs[len(styledLogs)-15:]
	}

	m.viewport.SetContent(strings.Join(styledLogs, "\n"))
	return m.viewport.View() + "\n" + helpStyle.Render("• tab: switch modes • q: exit\n")
}

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	// Redirect logs to buffer for the logs view
	logBuffer := new(bytes.Buffer)
	log.SetOutput(logBuffer)

	db, err = database.New(cfg)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	m := newTable()
	m.logBuffer = logBuffer
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running dashboard: %v", err)
	}
}
