// Package app wires providers to the menu for each mode and performs the
// post-selection action.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gofi/internal/cache"
	"gofi/internal/config"
	"gofi/internal/desktop"
	"gofi/internal/keybind"
	"gofi/internal/logging"
	"gofi/internal/logging/events"
	"gofi/internal/menu"
	"gofi/internal/providers"
	"gofi/internal/ui"
)

// Run executes the configured mode. A cancelled menu is a normal outcome
// and returns nil.
func Run(cfg *config.Config) error {
	mode, err := cfg.Mode()
	if err != nil {
		return err
	}
	switch mode {
	case config.ModeRun:
		return runRun(cfg)
	case config.ModeDrun:
		return runDrun(cfg)
	case config.ModeDmenu:
		return runDmenu(cfg, os.Stdin, os.Stdout)
	case config.ModeFile:
		return runFile(cfg)
	case config.ModeMath:
		return runMath(cfg)
	case config.ModeSsh:
		return runSSH(cfg)
	case config.ModeEmoji:
		return runEmoji(cfg, os.Stdout)
	case config.ModeWebsearch:
		return runWebsearch(cfg)
	case config.ModeAuto:
		return runAuto(cfg)
	}
	return fmt.Errorf("unhandled mode %s", mode)
}

// uiOptions maps the loaded configuration onto one menu invocation.
func uiOptions(cfg *config.Config, mode config.Mode) (ui.Options, error) {
	matching, err := cfg.MatchMethod()
	if err != nil {
		return ui.Options{}, err
	}
	detection, err := keybind.ParseDetectionType(cfg.KeyDetectionType)
	if err != nil {
		return ui.Options{}, err
	}
	keys, err := keybind.LoadCustomKeys(config.KeysPath())
	if err != nil {
		return ui.Options{}, err
	}
	opts := ui.Options{
		Mode:          mode.String(),
		Prompt:        cfg.PromptText(),
		Password:      cfg.Password != "",
		HideSearch:    cfg.HideSearch,
		Lines:         cfg.Lines,
		InitialQuery:  cfg.Search,
		Insensitive:   cfg.Insensitive,
		Matching:      matching,
		FuzzyMinScore: cfg.FuzzyMinScore,
		CustomKeys:    keys,
		Detection:     detection,
	}
	switch mode {
	// Modes where the typed text is itself a valid selection: dmenu echoes
	// it, emoji copies it, math keeps evaluating it, and ssh/auto connect
	// to hosts that are not in the config file.
	case config.ModeDmenu, config.ModeMath, config.ModeSsh, config.ModeEmoji, config.ModeAuto:
		opts.NewOnEmpty = true
	}
	return opts, nil
}

func show(provider menu.Provider, opts ui.Options) (menu.Selection, bool, error) {
	sel, err := ui.Show(menu.NewLockedProvider(provider), opts)
	if errors.Is(err, menu.ErrNoSelection) {
		return menu.Selection{}, false, nil
	}
	if err != nil {
		return menu.Selection{}, false, err
	}
	return sel, true, nil
}

// launchItem spawns the item's action detached from the menu process.
func launchItem(item menu.Item) error {
	if item.Action == "" {
		return menu.ErrMissingAction
	}
	return desktop.SpawnDetached(item.Action, item.WorkingDir)
}

// bumpCache records one launch and persists the counts.
func bumpCache(c *cache.Cache, path, key string) {
	if c == nil || path == "" {
		return
	}
	c.Bump(key)
	events.Action.CacheBump(key, c.Get(key))
	if err := c.Save(path); err != nil {
		logging.Error(err)
	}
}

func runDrun(cfg *config.Config) error {
	p := providers.NewDrun(cfg, nil)
	opts, err := uiOptions(cfg, config.ModeDrun)
	if err != nil {
		return err
	}
	sel, ok, err := show(p, opts)
	if !ok || err != nil {
		return err
	}
	bumpCache(p.Cache(), p.CachePath(), sel.Item.Label)
	return launchItem(sel.Item)
}

// runRun replaces the menu process with the chosen executable, keeping the
// detached spawn path for forked invocations.
func runRun(cfg *config.Config) error {
	p := providers.NewRun(cfg)
	opts, err := uiOptions(cfg, config.ModeRun)
	if err != nil {
		return err
	}
	sel, ok, err := show(p, opts)
	if !ok || err != nil {
		return err
	}
	bumpCache(p.Cache(), p.CachePath(), sel.Item.Label)
	if sel.Item.Action == "" {
		return menu.ErrMissingAction
	}
	if cfg.Fork {
		return desktop.SpawnDetached(sel.Item.Action, sel.Item.WorkingDir)
	}
	return desktop.Exec(sel.Item.Action)
}

// runDmenu reads candidates from r and echoes the chosen label to w.
func runDmenu(cfg *config.Config, r io.Reader, w io.Writer) error {
	order, err := cfg.Order()
	if err != nil {
		return err
	}
	p, err := providers.NewDmenu(r, order)
	if err != nil {
		return err
	}
	opts, err := uiOptions(cfg, config.ModeDmenu)
	if err != nil {
		return err
	}
	sel, ok, err := show(p, opts)
	if !ok || err != nil {
		return err
	}
	_, werr := fmt.Fprintln(w, sel.Item.Label)
	return werr
}

func runFile(cfg *config.Config) error {
	order, err := cfg.Order()
	if err != nil {
		return err
	}
	p := providers.NewFile(order, nil)
	opts, err := uiOptions(cfg, config.ModeFile)
	if err != nil {
		return err
	}
	sel, ok, err := show(p, opts)
	if !ok || err != nil {
		return err
	}
	return launchItem(sel.Item)
}

// runMath keeps the menu alive across confirmations so past results stack
// up under the current line.
func runMath(cfg *config.Config) error {
	p := providers.NewMath(nil)
	locked := menu.NewLockedProvider(p)
	opts, err := uiOptions(cfg, config.ModeMath)
	if err != nil {
		return err
	}
	for {
		sel, err := ui.Show(locked, opts)
		if errors.Is(err, menu.ErrNoSelection) {
			return nil
		}
		if err != nil {
			return err
		}
		p.Push(sel.Item)
		opts.InitialQuery = ""
	}
}

func runSSH(cfg *config.Config) error {
	order, err := cfg.Order()
	if err != nil {
		return err
	}
	p := providers.NewSSH(order, nil)
	opts, err := uiOptions(cfg, config.ModeSsh)
	if err != nil {
		return err
	}
	sel, ok, err := show(p, opts)
	if !ok || err != nil {
		return err
	}
	return providers.LaunchSSH(sel.Item, cfg.Terminal())
}

func runEmoji(cfg *config.Config, stdout io.Writer) error {
	order, err := cfg.Order()
	if err != nil {
		return err
	}
	p := providers.NewEmoji(order, cfg.EmojiHideLabel)
	opts, err := uiOptions(cfg, config.ModeEmoji)
	if err != nil {
		return err
	}
	sel, ok, err := show(p, opts)
	if !ok || err != nil {
		return err
	}
	glyph, ok := providers.Glyph(sel.Item)
	if !ok {
		glyph = sel.Item.Label
	}
	return emitText(cfg, stdout, glyph)
}

// emitText delivers selected text per text_output_mode.
func emitText(cfg *config.Config, stdout io.Writer, text string) error {
	mode, err := cfg.OutputMode()
	if err != nil {
		return err
	}
	if mode == config.OutputStdout {
		_, werr := fmt.Fprintln(stdout, text)
		return werr
	}
	return desktop.CopyToClipboard(text, text)
}

func runWebsearch(cfg *config.Config) error {
	p := providers.NewWebsearch(cfg.SearchURL, nil)
	opts, err := uiOptions(cfg, config.ModeWebsearch)
	if err != nil {
		return err
	}
	sel, ok, err := show(p, opts)
	if !ok || err != nil {
		return err
	}
	return launchItem(sel.Item)
}

// runAuto dispatches on the route that produced the confirmed item. Math
// results loop back into the menu like math mode.
func runAuto(cfg *config.Config) error {
	p := providers.NewAuto(cfg)
	locked := menu.NewLockedProvider(p)
	opts, err := uiOptions(cfg, config.ModeAuto)
	if err != nil {
		return err
	}
	opts.IgnoredWords = providers.AutoIgnoredWords()
	for {
		sel, err := ui.Show(locked, opts)
		if errors.Is(err, menu.ErrNoSelection) {
			return nil
		}
		if err != nil {
			return err
		}
		done, err := handleAutoSelection(p, cfg, sel)
		if done || err != nil {
			return err
		}
		opts.InitialQuery = ""
	}
}

func handleAutoSelection(p *providers.Auto, cfg *config.Config, sel menu.Selection) (bool, error) {
	route, routed := sel.Item.Data.(providers.Route)
	// Typed text confirmed without a matching item carries no route. An
	// "ssh <host>" query still means a connection, even to a host absent
	// from the config file.
	if !routed && strings.HasPrefix(sel.Item.Label, "ssh") {
		item := sel.Item
		item.Label = strings.TrimSpace(strings.TrimPrefix(item.Label, "ssh"))
		item.Action = ""
		return true, providers.LaunchSSH(item, cfg.Terminal())
	}
	switch route {
	case providers.RouteMath:
		p.Math().Push(sel.Item)
		return false, nil
	case providers.RouteSsh:
		return true, providers.LaunchSSH(sel.Item, cfg.Terminal())
	case providers.RouteFile, providers.RouteSearch:
		return true, launchItem(sel.Item)
	default:
		drun := p.DrunProvider()
		bumpCache(drun.Cache(), drun.CachePath(), sel.Item.Label)
		return true, launchItem(sel.Item)
	}
}
