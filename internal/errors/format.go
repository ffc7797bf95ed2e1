package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// FormatError renders err for the console: a colored category header, the
// message and any remediation steps. Non-*Error values get a generic header.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	red := color.New(color.FgRed, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	var b strings.Builder
	e := As(err)
	if e == nil {
		fmt.Fprintf(&b, "%s %s\n", red(Unknown.String()+":"), err.Error())
		return b.String()
	}

	fmt.Fprintf(&b, "%s %s\n", red(e.Kind.String()+":"), err.Error())
	for _, step := range e.Remediation {
		fmt.Fprintf(&b, "  %s %s\n", dim("→"), step)
	}
	return b.String()
}

// PrintError writes FormatError(err) to w.
func PrintError(w io.Writer, err error) {
	fmt.Fprint(w, FormatError(err))
}
