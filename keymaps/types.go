package keymaps

import "fmt"

// Key identifies a named control key.
type Key int

const (
	KeyNone Key = iota
	KeySpace
	KeyReturn
	KeyEscape
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrl
	KeyShift
	KeyAlt
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// SymbolKind tells a named key apart from a literal character.
type SymbolKind uint8

const (
	NamedSymbol SymbolKind = iota + 1
	LiteralSymbol
)

// Symbol is the unit handed to a key injector: either a named control key
// or a single literal character.
type Symbol struct {
	Kind SymbolKind
	Key  Key
	Char rune
}

// Named returns the symbol for control key k.
func Named(k Key) Symbol { return Symbol{Kind: NamedSymbol, Key: k} }

// Literal returns the symbol that types r.
func Literal(r rune) Symbol { return Symbol{Kind: LiteralSymbol, Char: r} }

func (s Symbol) String() string {
	if s.Kind == NamedSymbol {
		return s.Key.String()
	}
	return fmt.Sprintf("%q", s.Char)
}

// Action is a resolved action name.
type Action struct {
	Name    string
	Symbols []Symbol
}

// Keystroke is a Linux input key code, optionally chorded with shift.
type Keystroke struct {
	Code  int
	Shift bool
}

// Layout maps literal characters to keystrokes.
type Layout map[rune]Keystroke

// LayoutProvider provides character layouts by name
type LayoutProvider struct {
	layouts map[string]Layout
}

// NewLayoutProvider creates an empty provider
func NewLayoutProvider() *LayoutProvider {
	return &LayoutProvider{
		layouts: map[string]Layout{},
	}
}

// GetLayout returns the named layout, falling back to the US layout.
func (p *LayoutProvider) GetLayout(name string) Layout {
	layout, exists := p.layouts[name]
	if !exists {
		return p.layouts[LayoutUS]
	}
	return layout
}

// HasLayout reports whether name is registered.
func (p *LayoutProvider) HasLayout(name string) bool {
	_, ok := p.layouts[name]
	return ok
}

// RegisterLayout registers a layout under name
func (p *LayoutProvider) RegisterLayout(name string, layout Layout) {
	p.layouts[name] = layout
}
