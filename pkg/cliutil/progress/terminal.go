package progress

import (
	"fmt"
	"io"
)

func moveCursorToNextLine(w io.Writer) error {
	_, err := fmt.Fprint(w, "\n")
	return err
}
