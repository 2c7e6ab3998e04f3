package export

import (
	"fmt"
	"os"

	"github.com/gorewood/habitmd/internal/output"
)

// WriteFile writes content to path exactly as given, replacing any
// existing file.
func WriteFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { //nolint:gosec // rendered tables are meant to be shared
		return output.NewSystemErrorWithCause(fmt.Sprintf("failed to write file %s: %v", path, err), err)
	}
	return nil
}
