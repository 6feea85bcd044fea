package utils

import (
	"io"

	"github.com/juju/ansiterm"
)

// same layout as tabby.New, which always writes to os.Stdout
func newTabWriter(w io.Writer) *ansiterm.TabWriter {
	return ansiterm.NewTabWriter(w, 0, 0, 2, ' ', 0)
}
