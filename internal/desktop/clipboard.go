package desktop

import (
	"github.com/atotto/clipboard"
	"github.com/godbus/dbus/v5"

	"gofi/internal/logging/events"
	"gofi/internal/menu"
)

// notify sends a desktop notification over the session bus. Failures are
// ignored; a missing notification daemon must not break the copy.
func notify(summary, body string) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return
	}
	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	obj.Call("org.freedesktop.Notifications.Notify", 0,
		"gofi", uint32(0), "", summary, body,
		[]string{}, map[string]dbus.Variant{}, int32(5000))
}

// CopyToClipboard places text on the clipboard and notifies the user.
func CopyToClipboard(text, notifyBody string) error {
	if err := clipboard.WriteAll(text); err != nil {
		notify("Failed to copy to clipboard", "")
		return &menu.ClipboardError{Detail: err.Error()}
	}
	events.Action.Clipboard(len(text))
	notify("Copied to clipboard", notifyBody)
	return nil
}
