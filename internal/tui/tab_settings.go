package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/atelier/internal/config"
	"github.com/theirongolddev/atelier/internal/tui/components"
	"github.com/theirongolddev/atelier/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// updateSettingsKey handles keys on the settings tab. Every change is saved
// to the config file right away.
func (a App) updateSettingsKey(key string) (App, bool) {
	switch key {
	case "t":
		a.cfg.Appearance.Theme = theme.Next(a.cfg.Appearance.Theme)
		theme.SetActive(a.cfg.Appearance.Theme)
		a.saveConfig("Theme: " + a.cfg.Appearance.Theme)
	case "c":
		a.cfg.General.ConfirmClear = !a.cfg.General.ConfirmClear
		a.saveConfig(fmt.Sprintf("Confirm before clear: %s", onOff(a.cfg.General.ConfirmClear)))
	case "m":
		a.cfg.Display.MonthLabel = !a.cfg.Display.MonthLabel
		a.saveConfig(fmt.Sprintf("Month label: %s", onOff(a.cfg.Display.MonthLabel)))
	default:
		return a, false
	}
	return a, true
}

func (a *App) saveConfig(msg string) {
	if err := config.Save(a.cfg); err != nil {
		a.log.Error("saving config", "err", err)
		a.setStatus("Could not save config: "+err.Error(), true)
		return
	}
	a.setStatus(msg, false)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	type field struct {
		key, label, value string
	}
	fields := []field{
		{"t", "Theme", a.cfg.Appearance.Theme},
		{"c", "Confirm clear", onOff(a.cfg.General.ConfirmClear)},
		{"m", "Month label", onOff(a.cfg.Display.MonthLabel)},
		{"", "Currency", a.cfg.Display.Currency},
		{"", "Locale", a.cfg.Display.Locale},
		{"", "Data file", config.DBPath(a.cfg)},
		{"", "Config file", config.Path()},
	}

	inner := components.CardInnerWidth(cw)
	valueW := max(inner-4-16, 10)

	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte('\n')
		}
		k := spaceStyle.Render("   ")
		if f.key != "" {
			k = keyStyle.Render("["+f.key+"]")
		}
		b.WriteString(k + spaceStyle.Render(" ") +
			labelStyle.Render(fmt.Sprintf("%-16s", f.label)) +
			valueStyle.Render(truncStr(f.value, valueW)))
	}

	return components.ContentCard("Settings", b.String(), cw)
}
