// Package desktop deals with the freedesktop surface of the system:
// .desktop application entries, detached process spawning, and the
// clipboard.
package desktop

import (
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

// Entry is one parsed .desktop application entry.
type Entry struct {
	Name       string
	Icon       string
	Exec       string
	WorkingDir string
	Terminal   bool
	Hidden     bool
	NoDisplay  bool
	Actions    []Action
}

// Action is a per-entry sub-action (e.g. "New Private Window").
type Action struct {
	Name string
	Icon string
	Exec string
}

const actionSectionPrefix = "Desktop Action "

// LocaleVariants derives the name-lookup order from the user's locale,
// e.g. LC_ALL=de_AT.UTF-8 yields ["de_AT", "de"].
func LocaleVariants() []string {
	locale := os.Getenv("LC_ALL")
	if locale == "" {
		locale = os.Getenv("LC_MESSAGES")
	}
	if locale == "" {
		locale = os.Getenv("LANG")
	}
	if locale == "" {
		return nil
	}
	lang, _, _ := strings.Cut(locale, ".")
	if base, _, ok := strings.Cut(lang, "_"); ok {
		return []string{lang, base}
	}
	return []string{lang}
}

// localizedValue resolves "Key[locale]" for each variant before falling
// back to the bare key.
func localizedValue(sec *ini.Section, key string, locales []string) string {
	for _, loc := range locales {
		if k, err := sec.GetKey(key + "[" + loc + "]"); err == nil {
			return k.String()
		}
	}
	return sec.Key(key).String()
}

// ParseEntry reads a single .desktop file. Files without a Desktop Entry
// section are rejected.
func ParseEntry(path string, locales []string) (*Entry, error) {
	f, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, path)
	if err != nil {
		return nil, err
	}
	sec, err := f.GetSection("Desktop Entry")
	if err != nil {
		return nil, err
	}

	entry := &Entry{
		Name:       localizedValue(sec, "Name", locales),
		Icon:       sec.Key("Icon").String(),
		Exec:       sec.Key("Exec").String(),
		WorkingDir: sec.Key("Path").String(),
		Terminal:   sec.Key("Terminal").MustBool(false),
		Hidden:     sec.Key("Hidden").MustBool(false),
		NoDisplay:  sec.Key("NoDisplay").MustBool(false),
	}

	for _, s := range f.Sections() {
		if !strings.HasPrefix(s.Name(), actionSectionPrefix) {
			continue
		}
		entry.Actions = append(entry.Actions, Action{
			Name: localizedValue(s, "Name", locales),
			Icon: s.Key("Icon").String(),
			Exec: s.Key("Exec").String(),
		})
	}
	return entry, nil
}
