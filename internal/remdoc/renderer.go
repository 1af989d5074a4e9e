package remdoc

import (
	"fmt"
	"strings"
)

// RenderMarkdown renders a Document as Markdown.
func RenderMarkdown(doc *Document) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", doc.Title)
	fmt.Fprintf(&sb, "_Generated %s_\n\n", doc.GeneratedAt.Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&sb, "%d reminders (%d active, %d inactive)\n\n", doc.Metadata.Total, doc.Metadata.Active, doc.Metadata.Inactive)

	for _, rd := range doc.Reminders {
		status := "inactive"
		if rd.Active {
			status = "active"
		}
		fmt.Fprintf(&sb, "## %s (#%d, %s)\n\n", rd.Description, rd.ID, status)
		fmt.Fprintf(&sb, "%s\n\n", rd.Humanized)
		if rd.NextFire != nil {
			fmt.Fprintf(&sb, "- Next fire: %s\n", rd.NextFire.Format("2006-01-02 15:04 MST"))
		}
		if rd.Nagging {
			sb.WriteString("- Currently nagging for acknowledgement\n")
		}
		for _, w := range rd.Warnings {
			fmt.Fprintf(&sb, "- ⚠ %s\n", w)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
