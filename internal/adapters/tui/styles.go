package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/logolink/internal/ui/style"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Width(labelWidth)

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(style.Iris).
				Bold(true).
				Width(labelWidth)

	valueStyle = lipgloss.NewStyle().
			Foreground(style.White)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(style.Slate).
				Faint(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	successStyle = lipgloss.NewStyle().Foreground(style.Green)
	errorStyle   = lipgloss.NewStyle().Foreground(style.Red)
	warningStyle = lipgloss.NewStyle().Foreground(style.Yellow)
	loadingStyle = lipgloss.NewStyle().Foreground(style.Slate)
)
