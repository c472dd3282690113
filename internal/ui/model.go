package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Jobo16/excel-csv-processor/internal/converter"
	"github.com/Jobo16/excel-csv-processor/internal/types"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

type state int

const (
	stateProcessing state = iota
	stateComplete
)

type Model struct {
	state        state
	inputDir     string
	outputDir    string
	cfg          converter.Config
	summary      *types.RunSummary
	width        int
	height       int
	progress     progress.Model
	progressChan chan float64
	resultChan   chan *types.RunSummary
}

type runCompleteMsg struct {
	summary *types.RunSummary
}

type progressMsg float64

func InitialModel(inputDir, outputDir string, cfg converter.Config) Model {
	prog := progress.New(progress.WithGradient("#FF8C42", "#FF9F5A"))

	return Model{
		state:        stateProcessing,
		inputDir:     inputDir,
		outputDir:    outputDir,
		cfg:          cfg,
		progress:     prog,
		progressChan: make(chan float64, 100),
		resultChan:   make(chan *types.RunSummary, 1),
	}
}

func (m Model) Init() tea.Cmd {
	return m.startRun()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateProcessing:
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			}
		case stateComplete:
			switch msg.String() {
			case "ctrl+c", "q", "enter", "esc":
				return m, tea.Quit
			}
		}

	case runCompleteMsg:
		m.summary = msg.summary
		m.state = stateComplete
		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case progressMsg:
		if m.state == stateProcessing {
			cmd := m.progress.SetPercent(float64(msg))
			return m, tea.Batch(cmd, waitForProgress(m.progressChan, m.resultChan))
		}
		return m, nil
	}

	return m, nil
}

func (m Model) startRun() tea.Cmd {
	// Capture channels for the goroutine
	progressChan := m.progressChan
	resultChan := m.resultChan
	inputDir := m.inputDir
	outputDir := m.outputDir
	cfg := m.cfg

	return tea.Batch(
		func() tea.Msg {
			go func() {
				summary := converter.Run(inputDir, outputDir, cfg, progressChan)
				resultChan <- summary
				close(resultChan)
			}()
			return nil
		},
		waitForProgress(progressChan, resultChan),
		m.progress.Init(), // Start progress bar animation
	)
}

func waitForProgress(progressChan chan float64, resultChan chan *types.RunSummary) tea.Cmd {
	return func() tea.Msg {
		if progressChan == nil {
			return nil
		}

		p, ok := <-progressChan
		if !ok {
			// Progress channel closed, the run is over.
			summary, ok := <-resultChan
			if ok {
				return runCompleteMsg{summary: summary}
			}
			return nil
		}

		return progressMsg(p)
	}
}

func (m Model) View() string {
	switch m.state {
	case stateProcessing:
		return m.viewProcessing()
	case stateComplete:
		return m.viewComplete()
	}
	return ""
}

func (m Model) viewProcessing() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("Processing Excel files..."))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("Input:  %s\n", m.inputDir))
	s.WriteString(fmt.Sprintf("Output: %s\n", m.outputDir))
	s.WriteString("\n")
	s.WriteString(m.progress.View())

	return BoxStyle.Render(s.String())
}

func (m Model) viewComplete() string {
	var s strings.Builder

	if m.summary.Succeeded == m.summary.Total && m.summary.Total > 0 {
		s.WriteString(TitleStyle.Render("✓ Processing Complete!"))
	} else {
		s.WriteString(TitleStyle.Render("Processing Finished"))
	}
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("Processed %d/%d file(s)\n", m.summary.Succeeded, m.summary.Total))
	s.WriteString(SubtitleStyle.Render(m.summary.Status()))
	s.WriteString("\n\n")

	for _, r := range m.summary.Results {
		line := fmt.Sprintf("✓ %s -> %s", filepath.Base(r.InputFile), filepath.Base(r.OutputFile))
		if r.MergeStatus == types.MergeSkipped {
			line += " (merge skipped: missing required columns)"
			s.WriteString(WarningStyle.Render(line))
		} else {
			s.WriteString(SuccessStyle.Render(line))
		}
		s.WriteString("\n")
	}

	if len(m.summary.Errors) > 0 {
		s.WriteString("\n")
		s.WriteString(ErrorStyle.Render(fmt.Sprintf("%d error(s):", len(m.summary.Errors))))
		s.WriteString("\n")
		for _, e := range m.summary.Errors {
			s.WriteString(ErrorStyle.Render("✗ " + e))
			s.WriteString("\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(HelpStyle.Render("Press any key to exit"))

	return BoxStyle.Render(s.String())
}
