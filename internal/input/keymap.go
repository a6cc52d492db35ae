package input

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Und)

// Binding ties a key name to the engine's key code.
type Binding struct {
	Name string
	Code int32
}

// KeyMap is the per-key boolean map shared by the frame update. Names are stored
// lower-cased, so "W" and "w" are the same key.
type KeyMap struct {
	bindings []Binding
	down     map[string]bool
	prev     map[string]bool
}

// NewKeyMap returns a KeyMap polling the given bindings.
func NewKeyMap(bindings ...Binding) *KeyMap {
	m := &KeyMap{
		down: make(map[string]bool),
		prev: make(map[string]bool),
	}
	for _, b := range bindings {
		b.Name = lower.String(b.Name)
		m.bindings = append(m.bindings, b)
	}
	return m
}

// Poll refreshes every bound key from isDown (e.g. rl.IsKeyDown). Call once per frame
// before reading the map.
func (m *KeyMap) Poll(isDown func(code int32) bool) {
	for k, v := range m.down {
		m.prev[k] = v
	}
	for _, b := range m.bindings {
		m.down[b.Name] = isDown(b.Code)
	}
}

// Set records a key down/up event by name.
func (m *KeyMap) Set(name string, down bool) {
	name = lower.String(name)
	m.prev[name] = m.down[name]
	m.down[name] = down
}

// Down reports whether the key is held.
func (m *KeyMap) Down(name string) bool {
	return m.down[lower.String(name)]
}

// Pressed reports whether the key went down since the previous poll.
func (m *KeyMap) Pressed(name string) bool {
	name = lower.String(name)
	return m.down[name] && !m.prev[name]
}

// Clear releases every key, e.g. while the console has focus.
func (m *KeyMap) Clear() {
	for k := range m.down {
		m.prev[k] = false
		m.down[k] = false
	}
}
