// Package viz renders status reports and mode images for the terminal.
package viz

import (
	"fmt"
	"strings"

	"github.com/aosim/zaberration/internal/aberration"
)

// RenderReport formats the initialization report as a bordered block.
func RenderReport(r aberration.Report) string {
	var b strings.Builder
	b.WriteString(Title.Render("CUSTOM ZERNIKE ABERRATIONS"))
	b.WriteString("\n")

	if !r.Enabled {
		b.WriteString(line("status", StatusDisabled.Render("disabled")))
		return Panel.Render(strings.TrimRight(b.String(), "\n"))
	}

	b.WriteString(line("status", StatusEnabled.Render("enabled")))
	b.WriteString(line("source file", Value.Render(r.SourceFile)))
	b.WriteString(line("number of modes", Value.Render(fmt.Sprintf("%d", r.Modes))))
	b.WriteString(line("inclusion", Value.Render(r.Inclusion)))
	b.WriteString(line("telescope diameter", Value.Render(r.Diameter)))
	b.WriteString(line("series step", Value.Render(fmt.Sprintf("%g s", r.Step))))
	b.WriteString(line("decimation", Value.Render(fmt.Sprintf("%d", r.Decimation))))
	b.WriteString(line("samples", Value.Render(fmt.Sprintf("%d", r.Samples))))
	return Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func line(label, value string) string {
	return fmt.Sprintf("%s %s\n", Label.Render(fmt.Sprintf("%-19s", label+":")), value)
}
