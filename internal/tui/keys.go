package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap binds terminal keys to calculator actions. Digits, the decimal
// point and the operator characters are passed through as typed.
type keyMap struct {
	Quit         key.Binding
	SwitchPanel  key.Binding
	Equals       key.Binding
	Backspace    key.Binding
	ClearEntry   key.Binding
	Clear        key.Binding
	Sqrt         key.Binding
	Square       key.Binding
	Reciprocal   key.Binding
	Negate       key.Binding
	Pi           key.Binding
	Euler        key.Binding
	MemorySave   key.Binding
	MemoryRecall key.Binding
	MemoryAdd    key.Binding
	MemorySub    key.Binding
	MemoryClear  key.Binding
	ClearHistory key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:         key.NewBinding(key.WithKeys("ctrl+c", "esc", "q"), key.WithHelp("q", "quit")),
		SwitchPanel:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "history/memory")),
		Equals:       key.NewBinding(key.WithKeys("enter", "="), key.WithHelp("enter", "=")),
		Backspace:    key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "back")),
		ClearEntry:   key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "CE")),
		Clear:        key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "C")),
		Sqrt:         key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "√")),
		Square:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "x²")),
		Reciprocal:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "1/x")),
		Negate:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "±")),
		Pi:           key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "π")),
		Euler:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "e")),
		MemorySave:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "MS")),
		MemoryRecall: key.NewBinding(key.WithKeys("M"), key.WithHelp("M", "MR")),
		MemoryAdd:    key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("^a", "M+")),
		MemorySub:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("^d", "M-")),
		MemoryClear:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("^l", "MC")),
		ClearHistory: key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "clear history")),
	}
}

// labels pairs each binding with the session key label it dispatches.
func (k keyMap) labels() []struct {
	binding key.Binding
	label   string
} {
	return []struct {
		binding key.Binding
		label   string
	}{
		{k.Equals, "="},
		{k.Backspace, "back"},
		{k.ClearEntry, "CE"},
		{k.Clear, "C"},
		{k.Sqrt, "sqrt"},
		{k.Square, "sqr"},
		{k.Reciprocal, "1/x"},
		{k.Negate, "neg"},
		{k.Pi, "pi"},
		{k.Euler, "e"},
		{k.MemorySave, "MS"},
		{k.MemoryRecall, "MR"},
		{k.MemoryAdd, "M+"},
		{k.MemorySub, "M-"},
		{k.MemoryClear, "MC"},
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{
		k.Equals, k.Clear, k.ClearEntry, k.Sqrt, k.Square, k.Reciprocal, k.Negate,
		k.MemorySave, k.MemoryRecall, k.MemoryAdd, k.MemorySub, k.MemoryClear,
		k.SwitchPanel, k.Quit,
	}
}
