package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/multicolumn/pkg/i18n"
	"github.com/matzehuels/multicolumn/pkg/layout"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PresetPickerModel - Interactive layout selection
// =============================================================================

type pickerMode int

const (
	modeList   pickerMode = iota // choosing a preset
	modeCustom                   // typing custom ratios
)

// PresetPickerModel is the bubbletea model for choosing a layout. The last
// list entry opens a custom ratio prompt; the input must parse before it can
// be submitted.
type PresetPickerModel struct {
	Lang     string
	Presets  []layout.Preset
	Cursor   int
	Input    string
	Err      string
	Selected *layout.Request

	mode pickerMode
}

// NewPresetPickerModel creates a picker showing strings in lang.
func NewPresetPickerModel(lang string) PresetPickerModel {
	return PresetPickerModel{Lang: lang, Presets: layout.Presets()}
}

// customIndex is the list position of the custom ratio entry.
func (m PresetPickerModel) customIndex() int {
	return len(m.Presets)
}

func (m PresetPickerModel) Init() tea.Cmd {
	return nil
}

func (m PresetPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.mode == modeCustom {
		return m.updateCustom(key)
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < m.customIndex() {
			m.Cursor++
		}
	case "enter":
		if m.Cursor == m.customIndex() {
			m.mode = modeCustom
			return m, nil
		}
		req := m.Presets[m.Cursor].Request()
		m.Selected = &req
		return m, tea.Quit
	}
	return m, nil
}

func (m PresetPickerModel) updateCustom(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.mode = modeList
		m.Err = ""
		return m, nil
	case tea.KeyEnter:
		ratios, err := layout.ParseRatios(m.Input)
		if err != nil {
			m.Err = ratioErrorText(m.Lang, err)
			return m, nil
		}
		m.Selected = &layout.Request{Columns: len(ratios), Ratios: ratios}
		return m, tea.Quit
	case tea.KeyBackspace:
		if r := []rune(m.Input); len(r) > 0 {
			m.Input = string(r[:len(r)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		m.Input += string(key.Runes)
	}
	m.Err = ""
	return m, nil
}

// ratioErrorText localizes a custom ratio parse error.
func ratioErrorText(lang string, err error) string {
	var sumErr *layout.SumError
	if stderrors.As(err, &sumErr) {
		return i18n.Format(lang, i18n.KeyErrorRatioSum, sumErr.Sum)
	}
	return i18n.Lookup(lang, i18n.KeyErrorRatioFormat)
}

func (m PresetPickerModel) View() string {
	if m.mode == modeCustom {
		return m.viewCustom()
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render(i18n.Lookup(m.Lang, i18n.KeyMenuTitle)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(i18n.Lookup(m.Lang, i18n.KeyPickerHelp)))
	b.WriteString("\n\n")

	for i := 0; i <= m.customIndex(); i++ {
		if layout.SeparatorBefore(i) || i == m.customIndex() {
			b.WriteString(listDimStyle.Render("  " + strings.Repeat("─", 24)))
			b.WriteString("\n")
		}

		var title string
		if i == m.customIndex() {
			title = i18n.Lookup(m.Lang, i18n.KeyPresetCustom)
		} else {
			title = i18n.Lookup(m.Lang, m.Presets[i].Title)
		}

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + title))
		} else {
			b.WriteString(listNormalStyle.Render("  " + title))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m PresetPickerModel) viewCustom() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(i18n.Lookup(m.Lang, i18n.KeyPresetCustom)))
	b.WriteString("\n")
	b.WriteString(i18n.Lookup(m.Lang, i18n.KeyCustomPrompt))
	b.WriteString("\n\n")

	b.WriteString(StyleHighlight.Render("> "))
	if m.Input == "" {
		b.WriteString(listDimStyle.Render(i18n.Lookup(m.Lang, i18n.KeyCustomPlaceholder)))
	} else {
		b.WriteString(StyleValue.Render(m.Input))
	}
	b.WriteString("\n")

	if m.Err != "" {
		b.WriteString(StyleError.Render(m.Err))
		b.WriteString("\n")
	}
	b.WriteString(listSelectedStyle.Render(fmt.Sprintf("[ %s ]", i18n.Lookup(m.Lang, i18n.KeyCustomSubmit))))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(i18n.Lookup(m.Lang, i18n.KeyPickerCustomHelp)))
	return b.String()
}

// runPicker shows the picker and returns the chosen request. It reports
// false when the picker was dismissed without a choice.
func runPicker(ctx context.Context, lang string) (layout.Request, bool, error) {
	p := tea.NewProgram(NewPresetPickerModel(lang), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return layout.Request{}, false, err
	}
	fm, ok := finalModel.(PresetPickerModel)
	if !ok || fm.Selected == nil {
		return layout.Request{}, false, nil
	}
	return *fm.Selected, true, nil
}
