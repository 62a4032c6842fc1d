package batch

import (
	"context"
	"runtime"
	"sync"

	"fjacquet/gastos-bot/internal/logging"
)

// SequentialThreshold is the message count under which ProcessAll does not
// start workers.
const SequentialThreshold = 100

// ProcessAll processes messages and returns the outcomes in input order. Large
// inputs are spread across workers; workers <= 0 selects runtime.NumCPU().
// When ctx is cancelled the messages not yet started are skipped and their
// outcomes are left zero-valued, and ctx.Err() is returned.
func (p *Processor) ProcessAll(ctx context.Context, messages []string, workers int) ([]Outcome, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if len(messages) < SequentialThreshold || workers == 1 {
		return p.processSequential(ctx, messages)
	}
	return p.processConcurrent(ctx, messages, workers)
}

func (p *Processor) processSequential(ctx context.Context, messages []string) ([]Outcome, error) {
	outcomes := make([]Outcome, len(messages))
	for i, msg := range messages {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		outcomes[i] = p.Process(ctx, msg)
	}
	return outcomes, nil
}

// indexedMessage keeps the input position of a message across workers.
type indexedMessage struct {
	index   int
	message string
}

func (p *Processor) processConcurrent(ctx context.Context, messages []string, workers int) ([]Outcome, error) {
	outcomes := make([]Outcome, len(messages))
	work := make(chan indexedMessage, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range work {
				// Each index is written by exactly one worker.
				outcomes[item.index] = p.Process(ctx, item.message)
			}
		}()
	}

feed:
	for i, msg := range messages {
		select {
		case work <- indexedMessage{index: i, message: msg}:
		case <-ctx.Done():
			break feed
		}
	}
	close(work)
	wg.Wait()

	p.logger.Debug("Concurrent processing completed",
		logging.Field{Key: logging.FieldCount, Value: len(messages)},
		logging.Field{Key: "workers", Value: workers})

	return outcomes, ctx.Err()
}
