package tui

import (
	"strings"

	"go.trai.ch/logolink/internal/core/domain"
	"go.trai.ch/logolink/internal/ui/style"
)

const helpText = "↑/↓ move · ←/→ toggle · ctrl+t test link · ctrl+s save · esc quit"

// View renders the form.
//
//nolint:gocritic // hugeParam ignored
func (m *Model) View() string {
	if m.Saved || m.Quit {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Logo Link Settings"))
	b.WriteString("\n\n")

	for _, f := range m.Fields() {
		b.WriteString(m.row(f))
		b.WriteString("\n")
	}

	if m.Probe != nil {
		b.WriteString("\n")
		b.WriteString(probeLine(*m.Probe))
		b.WriteString("\n")
	}

	if m.Err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(style.Cross + " " + m.Err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpText))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) row(f Field) string {
	label, value, placeholder := m.describe(f)

	ls := labelStyle
	cursor := "  "
	if f == m.Focus {
		ls = focusedLabelStyle
		cursor = style.Tilde + " "
	}

	rendered := valueStyle.Render(value)
	if value == "" {
		rendered = placeholderStyle.Render(placeholder)
	}
	return cursor + ls.Render(label) + rendered
}

func (m *Model) describe(f Field) (label, value, placeholder string) {
	switch f {
	case FieldMode:
		if m.Settings.EffectiveMode() == domain.ModeCustom {
			return "Right-click", "Custom link", ""
		}
		return "Right-click", "Brand assets", ""
	case FieldAssetsURL:
		return "Assets URL", m.Settings.AssetsURL, "media library"
	case FieldCustomURL:
		return "Custom URL", m.Settings.CustomURL, "https://"
	case FieldCustomText:
		return "Link text", m.Settings.CustomText, "Custom Link"
	case FieldPresentation:
		if m.Settings.Presentation == domain.PresentationRedirect {
			return "Presentation", "Redirect", ""
		}
		if m.Settings.Presentation == domain.PresentationMenu {
			return "Presentation", "Menu", ""
		}
		return "Presentation", "", "site default"
	default:
		return "", "", ""
	}
}

func probeLine(r domain.ProbeResult) string {
	switch r.Status {
	case domain.ProbeSuccess:
		return successStyle.Render(style.Check + " " + r.Message)
	case domain.ProbeWarning:
		return warningStyle.Render(style.Warning + " " + r.Message)
	case domain.ProbeLoading:
		return loadingStyle.Render(style.Circle + " " + r.Message)
	default:
		return errorStyle.Render(style.Cross + " " + r.Message)
	}
}
