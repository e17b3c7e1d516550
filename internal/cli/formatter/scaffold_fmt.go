package formatter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/taskforge/internal/config"
	"github.com/alexanderramin/taskforge/internal/scaffold"
)

// FormatScaffoldSummary renders the post-run report: where the workspace was
// created and which directories and files were written. With color disabled
// the output is plain text suitable for piping.
func FormatScaffoldSummary(res *scaffold.Result, cfg config.Config, color bool) string {
	var b strings.Builder

	if color {
		b.WriteString(Header("workspace created"))
		b.WriteString("\n")
	} else {
		b.WriteString("Workspace created\n")
	}

	writeField(&b, "Project", cfg.ProjectName, color)
	writeField(&b, "Complexity unit", string(cfg.ComplexityUnit), color)
	writeField(&b, "Path", res.BasePath, color)
	b.WriteString("\n")

	for _, dir := range res.Dirs {
		writeEntry(&b, dir+string(filepath.Separator), color)
	}
	for _, file := range res.Files {
		writeEntry(&b, file, color)
	}

	b.WriteString("\n")
	hint := fmt.Sprintf("Next: review %s and add your first task under %s.",
		filepath.Join("tasks", "README.md"), filepath.Join("tasks", "backlog"))
	if color {
		b.WriteString(Dim(hint))
	} else {
		b.WriteString(hint)
	}
	b.WriteString("\n")

	return b.String()
}

// FormatConfigInspect renders the parsed workspace configuration.
func FormatConfigInspect(cfg config.Config, color bool) string {
	var b strings.Builder

	if color {
		b.WriteString(Header(cfg.ProjectName))
		b.WriteString("\n")
	} else {
		b.WriteString(cfg.ProjectName + "\n")
	}

	writeField(&b, "Complexity unit", string(cfg.ComplexityUnit), color)
	writeField(&b, "Complexity scale", cfg.ComplexityScale, color)
	writeField(&b, "Statuses", strings.Join(cfg.Statuses, ", "), color)
	writeField(&b, "Priority levels", strings.Join(cfg.PriorityLevels, ", "), color)
	writeField(&b, "Approval gates", fmt.Sprintf("%t", cfg.ApprovalGatesEnabled), color)
	if cfg.ExternalTracker != nil {
		writeField(&b, "External tracker", *cfg.ExternalTracker, color)
	}

	if len(cfg.Modules) == 0 {
		writeField(&b, "Modules", "none", color)
		return b.String()
	}

	b.WriteString("\nModules:\n")
	for _, m := range cfg.Modules {
		owner := "unassigned"
		if m.Owner != nil {
			owner = *m.Owner
		}
		line := fmt.Sprintf("  %s  %s  (%s)", m.Name, m.Path, owner)
		if color {
			b.WriteString(StyleFg.Render(line))
			b.WriteString("\n")
		} else {
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}

func writeField(b *strings.Builder, label, value string, color bool) {
	if color {
		fmt.Fprintf(b, "%s %s\n", Dim(label+":"), value)
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}

func writeEntry(b *strings.Builder, path string, color bool) {
	if color {
		fmt.Fprintf(b, "  %s %s\n", StyleGreen.Render("✓"), path)
		return
	}
	fmt.Fprintf(b, "  created %s\n", path)
}
