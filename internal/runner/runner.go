// Package runner loads the configured source, filters it and prints matching lines
package runner

import (
	"bufio"
	"fmt"
	"io"

	"github.com/UnendingLoop/MiniGrep/internal/matcher"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/reader"
)

// Run writes every matching line to out. Nothing is written if the source can't be loaded.
func Run(cfg *model.Config, out io.Writer) error {
	content, err := reader.ReadInput(cfg.Source)
	if err != nil {
		return err
	}

	result := matcher.Select(cfg.CaseSensitive)(cfg.Query, content)

	// печатаем результат
	w := bufio.NewWriter(out)
	for _, line := range result {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return w.Flush()
}
