package providers

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gofi/internal/desktop"
	"gofi/internal/logging"
	"gofi/internal/menu"
)

var hostPattern = regexp.MustCompile(`(?m)^\s*Host\s+(.+)$`)

// SSH lists the hosts declared in the user's SSH config.
type SSH struct {
	items []menu.Item
}

func NewSSH(order menu.SortOrder, data any) *SSH {
	var items []menu.Item
	for _, host := range readHosts() {
		items = append(items, menu.NewItem(host, "computer", "ssh "+host, nil, "", 0, data))
	}
	menu.ApplySort(items, order)
	return &SSH{items: items}
}

func readHosts() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	content, err := os.ReadFile(filepath.Join(home, ".ssh", "config"))
	if err != nil {
		logging.Error(err)
		return nil
	}
	return ParseHosts(string(content))
}

// ParseHosts extracts host tokens from SSH config content. Several hosts
// may share one Host line.
func ParseHosts(content string) []string {
	var hosts []string
	for _, cap := range hostPattern.FindAllStringSubmatch(content, -1) {
		hosts = append(hosts, strings.Fields(cap[1])...)
	}
	return hosts
}

func (p *SSH) Elements(query *string) menu.ProviderData {
	if query != nil {
		return menu.ProviderData{}
	}
	return menu.ProviderData{Items: menu.CloneItems(p.items)}
}

func (p *SSH) SubElements(menu.Item) menu.ProviderData {
	return menu.ProviderData{}
}

// LaunchSSH opens the item's connection in the given terminal, sourcing the
// user's bashrc first so aliases and agents are available.
func LaunchSSH(item menu.Item, terminal string) error {
	if terminal == "" {
		return menu.ErrMissingAction
	}
	sshCmd := item.Action
	if sshCmd == "" {
		sshCmd = "ssh " + item.Label
	}
	cmd := fmt.Sprintf("%s bash -c \"source ~/.bashrc; %s\"", terminal, sshCmd)
	return desktop.SpawnDetached(cmd, item.WorkingDir)
}
