package readme

import (
	"fmt"
	"os"
)

// Write fully overwrites path with the rendered document. No partial
// write recovery is attempted, re-running the tool regenerates the
// whole file anyway.
func Write(path, content string) error {
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
