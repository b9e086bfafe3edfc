package suite

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
)

// FormatReport formats suite results for display
func FormatReport(r *Report) string {
	var b strings.Builder
	b.WriteString(color.Cyan.Sprintf("=== %s ===", r.Path))
	b.WriteString("\n")
	for _, res := range r.Results {
		if res.Passed {
			b.WriteString(color.Green.Sprint("PASS "))
			b.WriteString(fmt.Sprintf("%s\n", res.Name))
			continue
		}
		b.WriteString(color.Red.Sprint("FAIL "))
		b.WriteString(fmt.Sprintf("%s\n", res.Name))
		b.WriteString(color.Bold.Sprint("  want: "))
		b.WriteString(fmt.Sprintf("%s\n", res.Want))
		b.WriteString(color.Bold.Sprint("  got:  "))
		b.WriteString(color.Red.Sprintf("%s\n", res.Got))
	}
	b.WriteString("\n")
	failed := r.Failed()
	b.WriteString(color.Bold.Sprint("Cases failed: "))
	if failed > 0 {
		b.WriteString(color.Red.Sprintf("%d", failed))
	} else {
		b.WriteString(color.Green.Sprintf("%d", failed))
	}
	b.WriteString(fmt.Sprintf(" of %d\n", len(r.Results)))
	return b.String()
}
