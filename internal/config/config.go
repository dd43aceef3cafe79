// Package config holds runtime configuration. Values come from three layers:
// built-in defaults, the TOML config file, and CLI flags. Flags the user set
// explicitly win over the file, which wins over the defaults.
package config

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"

	"gofi/internal/menu"
)

// Config mirrors the config file's keys. Enumerated values are stored as
// their config-file spelling; the typed getters below parse them on demand
// so a bad value surfaces as an InvalidArgument error, not a zero value.
type Config struct {
	Fork                 bool    `toml:"fork"`
	Show                 string  `toml:"show"`
	Style                string  `toml:"style"`
	Prompt               string  `toml:"prompt"`
	Width                string  `toml:"width"`
	Height               string  `toml:"height"`
	Lines                int     `toml:"lines"`
	LinesAdditionalSpace int     `toml:"lines_additional_space"`
	Columns              int     `toml:"columns"`
	Location             string  `toml:"location"`
	Matching             string  `toml:"matching"`
	Insensitive          bool    `toml:"insensitive"`
	HideSearch           bool    `toml:"hide_search"`
	HideScroll           bool    `toml:"hide_scroll"`
	NormalWindow         bool    `toml:"normal_window"`
	ImageSize            int     `toml:"image_size"`
	AllowImages          bool    `toml:"allow_images"`
	AllowMarkup          bool    `toml:"allow_markup"`
	Term                 string  `toml:"term"`
	Password             string  `toml:"password"`
	SortOrder            string  `toml:"sort_order"`
	FuzzyMinScore        float64 `toml:"fuzzy_min_score"`
	LineWrap             string  `toml:"line_wrap"`
	Search               string  `toml:"search"`
	NoActions            bool    `toml:"no_actions"`
	EmojiHideLabel       bool    `toml:"emoji_hide_label"`
	KeyDetectionType     string  `toml:"key_detection_type"`
	Layer                string  `toml:"layer"`
	TextOutputMode       string  `toml:"text_output_mode"`
	SearchURL            string  `toml:"search_url"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Width:            "50%",
		Height:           "40%",
		Columns:          1,
		ImageSize:        32,
		Insensitive:      true,
		AllowImages:      true,
		AllowMarkup:      true,
		Matching:         "contains",
		SortOrder:        "alphabetical",
		LineWrap:         "none",
		KeyDetectionType: "value",
		Layer:            "top",
		TextOutputMode:   "clipboard",
		SearchURL:        "https://duckduckgo.com/?q=",
	}
}

// Load builds the effective configuration. confPath overrides the default
// config file location; an explicit path that does not exist is an error,
// a missing default file is not. flags may be nil.
func Load(confPath string, flags *pflag.FlagSet) (*Config, error) {
	cfg := Default()

	path, err := ConfPath(confPath)
	if err != nil {
		if confPath != "" {
			return nil, err
		}
	} else if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, &menu.ParseError{Detail: fmt.Sprintf("config file %s: %v", path, err)}
	}

	if flags != nil {
		if err := applyFlags(cfg, flags); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// applyFlags overlays flags the user actually set. Flag names use dashes
// where the file uses underscores; values arrive as strings and are
// weakly decoded into the typed fields.
func applyFlags(cfg *Config, flags *pflag.FlagSet) error {
	overlay := make(map[string]any)
	flags.Visit(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		overlay[key] = f.Value.String()
	})
	if len(overlay) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "toml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(overlay); err != nil {
		return &menu.ParseError{Detail: fmt.Sprintf("merging flags: %v", err)}
	}
	return nil
}

// Mode parses the configured mode; an empty value is an error since every
// invocation needs one.
func (c *Config) Mode() (Mode, error) {
	if c.Show == "" {
		return 0, fmt.Errorf("no mode selected, use --show")
	}
	return ParseMode(c.Show)
}

// PromptText is the configured prompt, defaulting to the mode name.
func (c *Config) PromptText() string {
	if c.Prompt != "" {
		return c.Prompt
	}
	if m, err := ParseMode(c.Show); err == nil {
		return m.String()
	}
	return ""
}

func (c *Config) MatchMethod() (menu.MatchMethod, error) {
	return menu.ParseMatchMethod(c.Matching)
}

func (c *Config) Order() (menu.SortOrder, error) {
	return menu.ParseSortOrder(c.SortOrder)
}

func (c *Config) Wrap() (WrapMode, error) {
	return ParseWrapMode(c.LineWrap)
}

func (c *Config) Anchors() ([]Anchor, error) {
	return ParseAnchors(c.Location)
}

func (c *Config) LayerKind() (Layer, error) {
	return ParseLayer(c.Layer)
}

func (c *Config) OutputMode() (TextOutputMode, error) {
	return ParseTextOutputMode(c.TextOutputMode)
}

// Validate parses every enumerated field once so a bad spelling fails at
// startup instead of mid-session.
func (c *Config) Validate() error {
	if _, err := c.MatchMethod(); err != nil {
		return err
	}
	if _, err := c.Order(); err != nil {
		return err
	}
	if _, err := c.Wrap(); err != nil {
		return err
	}
	if _, err := c.Anchors(); err != nil {
		return err
	}
	if _, err := c.LayerKind(); err != nil {
		return err
	}
	if _, err := c.OutputMode(); err != nil {
		return err
	}
	return nil
}

// terminal emulators probed when no term is configured, with the argument
// that makes them run a command.
var terminals = []struct {
	name string
	arg  string
}{
	{"gnome-terminal", "--"},
	{"konsole", "-e"},
	{"xfce4-terminal", "--command"},
	{"xterm", "-e"},
	{"alacritty", "-e"},
	{"lxterminal", "-e"},
	{"kitty", "-e"},
	{"tilix", "-e"},
}

// Terminal returns the command prefix used to launch terminal programs,
// probing PATH for a known emulator when none is configured. Empty when
// nothing is found.
func (c *Config) Terminal() string {
	if c.Term != "" {
		return c.Term
	}
	for _, t := range terminals {
		if _, err := exec.LookPath(t.name); err == nil {
			return t.name + " " + t.arg
		}
	}
	return ""
}

// ExpandPath expands a leading ~ and $VAR references.
func ExpandPath(input string) string {
	if input == "~" || strings.HasPrefix(input, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			input = home + input[1:]
		}
	}
	return os.ExpandEnv(input)
}
