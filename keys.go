package autoprompt

import (
	"strings"
)

// KeyCode identifies a decoded key.
type KeyCode int

// Key codes understood by Input.Handle.
const (
	KeyUnknown KeyCode = iota
	KeyRune            // printable character, see Key.Rune
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyDelete
	KeyInterrupt // Ctrl+C
	KeyEOF       // Ctrl+D
)

// Key is one fully decoded key event.
type Key struct {
	Code KeyCode
	Rune rune // set when Code is KeyRune
}

// Char returns the Key for a printable character.
func Char(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// Keys returns one KeyRune per character of s. Handy for feeding typed text.
func Keys(s string) []Key {
	keys := make([]Key, 0, len(s))
	for _, r := range s {
		keys = append(keys, Char(r))
	}
	return keys
}

// isPrintable reports whether k is a printable character.
func (k Key) isPrintable() bool {
	return k.Code == KeyRune && isPrintableRune(k.Rune)
}

func isPrintableRune(r rune) bool {
	return r >= 32 && r != 127
}

// KeyMap holds the raw input to Key mapping.
type KeyMap struct {
	bindings  map[rune]KeyCode
	sequences map[string]KeyCode
}

// NewDefaultKeyMap creates the default key bindings.
//
// Default key bindings:
//   - Enter/Return: KeyEnter
//   - Ctrl+C: KeyInterrupt
//   - Ctrl+D: KeyEOF
//   - Ctrl+A / Ctrl+E: KeyHome / KeyEnd
//   - Tab: KeyTab
//   - Backspace: KeyBackspace
//   - Arrow keys, Home, End, Delete: their escape sequences
//
// Example:
//
//	keyMap := autoprompt.NewDefaultKeyMap()
//	// Shift+Tab walks suggestions upwards
//	keyMap.BindSequence("[Z", autoprompt.KeyUp)
func NewDefaultKeyMap() *KeyMap {
	km := &KeyMap{
		bindings:  make(map[rune]KeyCode),
		sequences: make(map[string]KeyCode),
	}

	km.bindings['\r'] = KeyEnter
	km.bindings['\n'] = KeyEnter
	km.bindings['\x03'] = KeyInterrupt // Ctrl+C
	km.bindings['\x04'] = KeyEOF       // Ctrl+D
	km.bindings['\x01'] = KeyHome      // Ctrl+A
	km.bindings['\x05'] = KeyEnd       // Ctrl+E
	km.bindings['\t'] = KeyTab
	km.bindings['\x7f'] = KeyBackspace
	km.bindings['\b'] = KeyBackspace

	km.sequences["[A"] = KeyUp
	km.sequences["[B"] = KeyDown
	km.sequences["[C"] = KeyRight
	km.sequences["[D"] = KeyLeft
	km.sequences["[H"] = KeyHome
	km.sequences["[F"] = KeyEnd
	km.sequences["OA"] = KeyUp
	km.sequences["OB"] = KeyDown
	km.sequences["OC"] = KeyRight
	km.sequences["OD"] = KeyLeft
	km.sequences["OH"] = KeyHome
	km.sequences["OF"] = KeyEnd
	km.sequences["[1~"] = KeyHome
	km.sequences["[4~"] = KeyEnd
	km.sequences["[3~"] = KeyDelete

	return km
}

// Bind adds or updates a binding for a single rune.
func (km *KeyMap) Bind(r rune, code KeyCode) {
	km.bindings[r] = code
}

// BindSequence adds or updates an escape sequence binding. The sequence does
// not include the leading ESC.
func (km *KeyMap) BindSequence(seq string, code KeyCode) {
	km.sequences[seq] = code
}

// Lookup returns the key for a single rune. Unbound printable runes map to
// KeyRune and unbound control runes to KeyUnknown.
func (km *KeyMap) Lookup(r rune) Key {
	if km != nil && km.bindings != nil {
		if code, ok := km.bindings[r]; ok {
			return Key{Code: code}
		}
	}
	if isPrintableRune(r) {
		return Char(r)
	}
	return Key{Code: KeyUnknown}
}

// LookupSequence returns the key for an escape sequence, or KeyUnknown.
func (km *KeyMap) LookupSequence(seq string) Key {
	if km == nil || km.sequences == nil {
		return Key{Code: KeyUnknown}
	}
	if code, ok := km.sequences[seq]; ok {
		return Key{Code: code}
	}
	return Key{Code: KeyUnknown}
}

// runeSource is the part of the terminal the key reader needs.
type runeSource interface {
	ReadRune() (rune, int, error)
	Buffered() bool
}

// keyReader decodes runes from a terminal into Keys.
type keyReader struct {
	src     runeSource
	keyMap  *KeyMap
	pending []rune
}

func newKeyReader(src runeSource, keyMap *KeyMap) *keyReader {
	if keyMap == nil {
		keyMap = NewDefaultKeyMap()
	}
	return &keyReader{src: src, keyMap: keyMap}
}

func (kr *keyReader) readRune() (rune, error) {
	if len(kr.pending) > 0 {
		r := kr.pending[0]
		kr.pending = kr.pending[1:]
		return r, nil
	}
	r, _, err := kr.src.ReadRune()
	return r, err
}

func (kr *keyReader) buffered() bool {
	return len(kr.pending) > 0 || kr.src.Buffered()
}

// ReadKey blocks until one key is decoded.
func (kr *keyReader) ReadKey() (Key, error) {
	r, err := kr.readRune()
	if err != nil {
		return Key{}, err
	}
	if r != '\x1b' {
		return kr.keyMap.Lookup(r), nil
	}
	// A lone ESC has nothing queued behind it.
	if !kr.buffered() {
		return Key{Code: KeyEscape}, nil
	}
	next, err := kr.readRune()
	if err != nil {
		return Key{}, err
	}
	if next != '[' && next != 'O' {
		kr.pending = append(kr.pending, next)
		return Key{Code: KeyEscape}, nil
	}
	seq, err := kr.readSequence(next)
	if err != nil {
		return Key{}, err
	}
	return kr.keyMap.LookupSequence(seq), nil
}

// readSequence reads the rest of a CSI or SS3 sequence started by first.
func (kr *keyReader) readSequence(first rune) (string, error) {
	var sb strings.Builder
	sb.WriteRune(first)
	for range 10 { // Limit to prevent infinite loop
		r, err := kr.readRune()
		if err != nil {
			return "", err
		}
		sb.WriteRune(r)
		// Parameters are digits and ';'; anything else terminates.
		if (r < '0' || r > '9') && r != ';' {
			break
		}
	}
	return sb.String(), nil
}
