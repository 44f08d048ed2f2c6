package export

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// CopyText writes text to the system clipboard. A failure is surfaced to the
// caller and never affects calendar state.
func CopyText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard write failed: %w", err)
	}
	return nil
}
