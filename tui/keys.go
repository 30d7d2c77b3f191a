package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Quit      key.Binding
	Component key.Binding
	Window    key.Binding
	Autocorr  key.Binding
	StepDown  key.Binding
	StepUp    key.Binding
	MinDown   key.Binding
	MinUp     key.Binding
	MaxDown   key.Binding
	MaxUp     key.Binding
	ZeroLess  key.Binding
	ZeroMore  key.Binding
	ZeroList  key.Binding
	Color     key.Binding
	Style     key.Binding
	Save      key.Binding
	Reload    key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Component: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "component"),
	),
	Window: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "window"),
	),
	Autocorr: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "autocorr"),
	),
	StepDown: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-/+", "time step"),
	),
	StepUp: key.NewBinding(
		key.WithKeys("+", "="),
	),
	MinDown: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[/]", "min freq"),
	),
	MinUp: key.NewBinding(
		key.WithKeys("]"),
	),
	MaxDown: key.NewBinding(
		key.WithKeys("{"),
		key.WithHelp("{/}", "max freq"),
	),
	MaxUp: key.NewBinding(
		key.WithKeys("}"),
	),
	ZeroLess: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n/N", "zero count"),
	),
	ZeroMore: key.NewBinding(
		key.WithKeys("N"),
	),
	ZeroList: key.NewBinding(
		key.WithKeys("z"),
		key.WithHelp("z", "zero list"),
	),
	Color: key.NewBinding(
		key.WithKeys("k"),
		key.WithHelp("k", "color"),
	),
	Style: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "style"),
	),
	Save: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// ShortHelp lists the bindings shown in the footer
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Component, k.Window, k.Autocorr, k.StepDown, k.MinDown, k.MaxDown,
		k.ZeroLess, k.ZeroList, k.Color, k.Style, k.Save, k.Reload, k.Quit,
	}
}

// FullHelp is the same list; the view has no expanded help
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
