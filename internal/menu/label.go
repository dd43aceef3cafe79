package menu

import "strings"

// ParseLabel splits a label into its inline directives. Labels may carry
// "img:<name>" and "text:<text>" tags separated by colons; bare labels come
// back verbatim as text with no image.
func ParseLabel(label string) (img, text string) {
	parts := strings.Split(label, ":")
	haveText := false

	for i := 0; i < len(parts); {
		switch parts[i] {
		case "img":
			if i+1 < len(parts) {
				img = parts[i+1]
				i += 2
			} else {
				i++
			}
		case "text":
			i++
			var textParts []string
			for i < len(parts) && parts[i] != "img" && parts[i] != "text" {
				textParts = append(textParts, parts[i])
				i++
			}
			text = strings.TrimSpace(strings.Join(textParts, ":"))
			haveText = true
		default:
			if haveText {
				text = text + ":" + parts[i]
			} else {
				text = parts[i]
				haveText = true
			}
			i++
		}
	}
	return img, text
}
