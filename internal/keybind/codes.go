package keybind

// Linux evdev key codes for the keys a binding can name. The code path gives
// chords a layout-independent identity when key_detection_type=code.
var keyCodes = map[Key]uint32{
	"a": 30, "b": 48, "c": 46, "d": 32, "e": 18, "f": 33, "g": 34,
	"h": 35, "i": 23, "j": 36, "k": 37, "l": 38, "m": 50, "n": 49,
	"o": 24, "p": 25, "q": 16, "r": 19, "s": 31, "t": 20, "u": 22,
	"v": 47, "w": 17, "x": 45, "y": 21, "z": 44,

	"1": 2, "2": 3, "3": 4, "4": 5, "5": 6,
	"6": 7, "7": 8, "8": 9, "9": 10, "0": 11,

	"f1": 59, "f2": 60, "f3": 61, "f4": 62, "f5": 63, "f6": 64,
	"f7": 65, "f8": 66, "f9": 67, "f10": 68, "f11": 87, "f12": 88,

	KeyEscape:    1,
	KeyEnter:     28,
	KeySpace:     57,
	KeyTab:       15,
	KeyBackspace: 14,
	KeyInsert:    110,
	KeyDelete:    111,
	KeyHome:      102,
	KeyEnd:       107,
	KeyPageUp:    104,
	KeyPageDown:  109,
	KeyLeft:      105,
	KeyRight:     106,
	KeyUp:        103,
	KeyDown:      108,

	"-": 12, "=": 13, "[": 26, "]": 27, "\\": 43,
	";": 39, "'": 40, "`": 41, ",": 51, ".": 52, "/": 53,
}

// shiftedSymbols maps the shifted US-layout spelling of a key back to its
// unshifted base. Used when a terminal reports the produced character and a
// binding names the physical key.
var shiftedSymbols = map[rune]Key{
	'!': "1", '@': "2", '#': "3", '$': "4", '%': "5",
	'^': "6", '&': "7", '*': "8", '(': "9", ')': "0",
	'_': "-", '+': "=", '{': "[", '}': "]", '|': "\\",
	':': ";", '"': "'", '~': "`", '<': ",", '>': ".", '?': "/",
}

// CodeFor returns the evdev code for a symbolic key, or 0 when unknown.
func CodeFor(k Key) uint32 {
	return keyCodes[k]
}

// Unshift resolves a shifted character to its physical key on the reference
// layout. The second result is false when the rune is not a shifted symbol.
func Unshift(r rune) (Key, bool) {
	k, ok := shiftedSymbols[r]
	return k, ok
}
