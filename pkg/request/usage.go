package request

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// 📝 FprintUsage writes the invocation help to w. The heading is
// bolded when color output is enabled; piped output stays plain.
func FprintUsage(w io.Writer) {
	heading := color.New(color.Bold)
	fmt.Fprintln(w)
	heading.Fprintln(w, "usage: (action is one of: copy, move, delete)")
	fmt.Fprintln(w, "  fileops <action> --from <sourcePath> [sourcePath]* --to <directoryPath>")
	fmt.Fprintln(w, "  fileops <action> --from <sourcePath> [sourcePath]* --to <destPath> [destPath]*")
}
