// Package processor runs a received search task and returns the result to transport-layer
package processor

import (
	"context"

	"github.com/UnendingLoop/MiniGrep/internal/matcher"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/cespare/xxhash/v2"
)

type Processor struct{}

func (p Processor) ProcessTask(ctx context.Context, task *model.SearchTask) *model.SearchResult {
	result := model.SearchResult{
		TaskID: task.TaskID,
		Output: getMatchingLines(ctx, task),
	}

	// считаем общий хеш
	result.HashSumm = hasher(ctx, result.Output)

	return &result
}

func getMatchingLines(ctx context.Context, task *model.SearchTask) []string {
	match := matcher.LineMatcher(task.Query, task.CaseSensitive)
	result := []string{}

	// ищем построчно, чтобы успеть отреагировать на отмену контекста
	for _, line := range matcher.Lines(task.Input) {
		select {
		case <-ctx.Done():
			return []string{}
		default:
			if match(line) {
				result = append(result, line)
			}
		}
	}

	return result
}

// hasher digests output lines, each terminated by "\n"
func hasher(ctx context.Context, output []string) uint64 {
	digest := xxhash.New()
	for _, line := range output {
		if ctx.Err() != nil {
			return 0
		}
		_, _ = digest.WriteString(line)
		_, _ = digest.WriteString("\n")
	}
	return digest.Sum64()
}
