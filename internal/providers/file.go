package providers

import (
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"gofi/internal/config"
	"gofi/internal/menu"
)

// File browses the filesystem from the typed path.
type File struct {
	last  []menu.Item
	order menu.SortOrder
	data  any
}

func NewFile(order menu.SortOrder, data any) *File {
	return &File{order: order, data: data}
}

func (p *File) Elements(query *string) menu.ProviderData {
	defaultPath := "/"
	if home, err := os.UserHomeDir(); err == nil {
		defaultPath = home
	}

	search := defaultPath
	if query != nil {
		search = *query
	}
	if !strings.HasPrefix(search, "/") && !strings.HasPrefix(search, "~") && !strings.HasPrefix(search, "$") {
		search = defaultPath + "/" + search
	}

	path := config.ExpandPath(search)
	info, err := os.Stat(path)
	if err != nil {
		// Keep showing the previous listing while the user is mid-edit.
		if p.last != nil {
			return menu.ProviderData{}
		}
		return menu.ProviderData{Items: []menu.Item{}}
	}

	var items []menu.Item
	if info.IsDir() {
		// The directory itself comes first, pinned by score.
		items = append(items, menu.NewItem(search, iconForPath(path), "xdg-open "+path, nil, "", 100, p.data))

		entries, err := os.ReadDir(path)
		if err == nil {
			home, _ := os.UserHomeDir()
			for _, entry := range entries {
				full := strings.TrimSuffix(path, "/") + "/" + entry.Name()
				label := full
				if strings.HasPrefix(search, "~") && home != "" {
					label = strings.Replace(label, home, "~", 1)
				}
				if entry.IsDir() {
					label += "/"
				}
				items = append(items, menu.NewItem(label, iconForPath(full), "xdg-open "+label, nil, "", 0, p.data))
			}
		}
	} else {
		items = append(items, menu.NewItem(search, iconForPath(path), "xdg-open "+search, nil, "", 0, p.data))
	}

	menu.ApplySort(items, p.order)
	p.last = items
	return menu.ProviderData{Items: menu.CloneItems(items)}
}

func (p *File) SubElements(menu.Item) menu.ProviderData {
	if p.last == nil {
		return menu.ProviderData{}
	}
	return menu.ProviderData{Items: menu.CloneItems(p.last)}
}

// iconForPath picks a freedesktop icon name from the file type, falling
// back to MIME sniffing for regular files.
func iconForPath(path string) string {
	info, err := os.Lstat(path)
	if err != nil {
		return "system-lock-screen"
	}
	mode := info.Mode()
	switch {
	case mode&os.ModeSymlink != 0:
		return "edit-redo"
	case mode&os.ModeCharDevice != 0:
		return "input-keyboard"
	case mode&os.ModeDevice != 0:
		return "drive-harddisk"
	case mode&os.ModeSocket != 0:
		return "network-transmit-receive"
	case mode&os.ModeNamedPipe != 0:
		return "rotation-allowed"
	case mode.IsDir():
		return "inode-directory"
	}

	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return "image-not-found"
	}
	typ := mime.String()
	switch {
	case strings.HasPrefix(typ, "image"):
		return "image-x-generic"
	case strings.HasPrefix(typ, "inode"):
		return strings.ReplaceAll(typ, "/", "-")
	case strings.HasPrefix(typ, "text"):
		switch {
		case strings.Contains(typ, "python"):
			return "text-x-script"
		case strings.Contains(typ, "html"):
			return "text-html"
		default:
			return "text-x-generic"
		}
	case strings.HasPrefix(typ, "application"):
		switch {
		case strings.Contains(typ, "octet"):
			return "application-x-executable"
		case strings.Contains(typ, "tar"), strings.Contains(typ, "zip"),
			strings.Contains(typ, "7z"), strings.Contains(typ, "xz"),
			strings.Contains(typ, "lz"):
			return "package-x-generic"
		default:
			return "text-html"
		}
	}
	return "application-x-generic"
}
