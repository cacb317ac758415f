package cli

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
)

func TestVisualizeCommandFlags(t *testing.T) {
	c := New(&bytes.Buffer{}, log.InfoLevel)
	cmd := c.visualizeCommand()

	for _, name := range []string{"ord", "output", "show-crossings"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Fatalf("visualizeCommand is missing the --%s flag", name)
		}
	}
	if cmd.Args == nil {
		t.Fatal("visualizeCommand should require exactly one positional argument")
	}
}
