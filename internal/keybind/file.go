package keybind

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type bindingSpec struct {
	Key       string   `yaml:"key"`
	Modifiers []string `yaml:"modifiers"`
	Label     string   `yaml:"label"`
	Visible   *bool    `yaml:"visible"`
}

type hintSpec struct {
	Text     string `yaml:"text"`
	Location string `yaml:"location"`
}

type customKeysSpec struct {
	Bindings []bindingSpec `yaml:"bindings"`
	Hint     *hintSpec     `yaml:"hint"`
}

// LoadCustomKeys reads the user's chord definitions from a YAML file. A
// missing file is not an error; it simply means no custom chords.
func LoadCustomKeys(path string) (*CustomKeys, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read custom keys: %w", err)
	}

	var spec customKeysSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("parse custom keys: %w", err)
	}

	keys := &CustomKeys{}
	for _, bs := range spec.Bindings {
		key := Key(strings.ToLower(strings.TrimSpace(bs.Key)))
		if key == KeyNone {
			return nil, fmt.Errorf("binding %q has no key", bs.Label)
		}
		var mods Modifier
		for _, name := range bs.Modifiers {
			m, err := ParseModifier(name)
			if err != nil {
				return nil, err
			}
			mods |= m
		}
		visible := true
		if bs.Visible != nil {
			visible = *bs.Visible
		}
		keys.Bindings = append(keys.Bindings, Binding{
			Key:       key,
			Code:      CodeFor(key),
			Modifiers: mods,
			Label:     bs.Label,
			Visible:   visible,
		})
	}

	if spec.Hint != nil {
		loc := HintTop
		if strings.EqualFold(spec.Hint.Location, "bottom") {
			loc = HintBottom
		}
		keys.Hint = &Hint{Text: spec.Hint.Text, Location: loc}
	}

	if len(keys.Bindings) == 0 && keys.Hint == nil {
		return nil, nil
	}
	return keys, nil
}
