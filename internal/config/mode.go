package config

import "fmt"

// Mode selects the top-level behavior of an invocation.
type Mode int

const (
	ModeRun Mode = iota
	ModeDrun
	ModeDmenu
	ModeFile
	ModeMath
	ModeSsh
	ModeEmoji
	ModeWebsearch
	ModeAuto
)

var modeNames = map[Mode]string{
	ModeRun:       "run",
	ModeDrun:      "drun",
	ModeDmenu:     "dmenu",
	ModeFile:      "file",
	ModeMath:      "math",
	ModeSsh:       "ssh",
	ModeEmoji:     "emoji",
	ModeWebsearch: "websearch",
	ModeAuto:      "auto",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode maps a CLI/config spelling to a Mode.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}
