// Package menu renders the numbered branch menu and validates the
// user's selection.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/raphi011/switchback/internal/ui/styles"
)

// Render writes one line per branch, showing the checkout command that
// would run:
//
//	[1] git checkout feature-b
//
// requested is the display count the user asked for; up to 9 entries
// the index is unpadded, above that it is right-aligned to two digits.
func Render(w io.Writer, branches []string, requested int, th styles.Theme) {
	format := "[%d]"
	if requested > 9 {
		format = "[%2d]"
	}
	warn := th.WarningStyle()
	for i, branch := range branches {
		index := warn.Render(fmt.Sprintf(format, i+1))
		fmt.Fprintf(w, "%s git checkout %s\n", index, branch)
	}
}

// Prompt asks for a selection and reads one line from r. The response
// is validated against the number of displayed branches; see Parse.
func Prompt(w io.Writer, r io.Reader, count int, th styles.Theme) (Selection, error) {
	prompt := fmt.Sprintf("Choose a branch [1-%d], or q to quit: ", count)
	fmt.Fprint(w, th.AccentStyle().Render(prompt))

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return Selection{}, err
	}
	return Parse(strings.TrimSpace(line), count)
}
