package keymaps

import "strings"

// CreateDefaultLayoutProvider creates and returns a provider with all built-in layouts
func CreateDefaultLayoutProvider() *LayoutProvider {
	provider := NewLayoutProvider()

	RegisterUSLayout(provider)

	return provider
}

// Resolve turns an action name into the symbols to inject. Names of
// control keys are matched case-insensitively; anything else is typed
// literally, one symbol per character.
func Resolve(name string) Action {
	if k, ok := namedKeys[strings.ToLower(strings.TrimSpace(name))]; ok {
		return Action{Name: name, Symbols: []Symbol{Named(k)}}
	}

	symbols := make([]Symbol, 0, len(name))
	for _, r := range name {
		symbols = append(symbols, Literal(r))
	}
	return Action{Name: name, Symbols: symbols}
}

// Code returns the Linux key code of a named key.
func Code(k Key) (int, bool) {
	code, ok := keyCodes[k]
	return code, ok
}
