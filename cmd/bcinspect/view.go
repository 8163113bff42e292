package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"github.com/wippyai/llvm-bitcode/bitcode"
	"github.com/wippyai/llvm-bitcode/source"
)

func viewCmd(g *globals) *cli.Command {
	var full bool

	return &cli.Command{
		Name:      "view",
		Usage:     "Browse the payload as a hex dump",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "full",
				Usage:       "show the whole file instead of the bitstream payload",
				Destination: &full,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return errors.New("view: expected exactly one file")
			}
			src, err := g.open(c.Args().First())
			if err != nil {
				return err
			}
			defer src.Close()

			f, err := src.Parse()
			if err != nil {
				return err
			}
			data, label, err := viewData(src, f, full)
			if err != nil {
				return err
			}

			m := newViewerModel(fmt.Sprintf("%s (%s)", src.Path(), label), data)
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}
}

// viewData picks the bytes to show: the bitstream payload, or every byte
// of the source when full is set.
func viewData(src *source.Source, f *bitcode.File, full bool) ([]byte, string, error) {
	if full {
		return src.Bytes(), "whole file", nil
	}
	data, err := f.Bitstream()
	return data, f.Kind().String() + " bitstream", err
}

type viewerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newViewerModel(title string, data []byte) *viewerModel {
	content := hex.Dump(data)
	if content == "" {
		content = "(empty)\n"
	}
	return &viewerModel{title: title, content: content}
}

func (m *viewerModel) Init() tea.Cmd {
	return nil
}

func (m *viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		chrome := lipgloss.Height(m.headerView()) + lipgloss.Height(m.footerView())
		height := msg.Height - chrome
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *viewerModel) headerView() string {
	return titleStyle.Render("Bitcode Viewer") + " " + m.title
}

func (m *viewerModel) footerView() string {
	pct := 100.0
	if m.ready {
		pct = m.viewport.ScrollPercent() * 100
	}
	return helpStyle.Render(fmt.Sprintf("%3.f%% • ↑/↓ scroll • q quit", pct))
}

func (m *viewerModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteByte('\n')
	b.WriteString(m.viewport.View())
	b.WriteByte('\n')
	b.WriteString(m.footerView())
	return b.String()
}
