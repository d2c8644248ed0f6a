package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/ukechords/pkg/errors"
)

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.New(errors.ErrCodeInvalidConfig, "display.width: must not be negative"))

	out := buf.String()
	if !strings.Contains(out, "display.width: must not be negative") {
		t.Errorf("output = %q", out)
	}
	if strings.Contains(out, string(errors.ErrCodeInvalidConfig)) {
		t.Errorf("error code should not be shown: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("non-fatal errors print one line, got %q", out)
	}
}

func TestPrintErrorFatalHint(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.New(errors.ErrCodeFileNotFound, "definitions file chords.txt"))

	if !strings.Contains(buf.String(), "--definitions") {
		t.Errorf("missing hint: %q", buf.String())
	}
}
