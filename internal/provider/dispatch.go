package provider

import (
	"context"
	"sync"
)

// Dispatch runs both tasks concurrently against the same article and joins
// before returning. Each goroutine writes its own slot of the Pair, so no
// lock is needed; the Left/Right positions are fixed by task identity, not
// by completion order. A failure in one task never cancels or delays the
// other — each slot independently carries either generated text or a
// normalized error message.
func Dispatch(ctx context.Context, c Completer, key, model, article, leftSystem, rightSystem string) Pair {
	left := TaskRequest{Model: model, System: leftSystem, User: article}
	right := TaskRequest{Model: model, System: rightSystem, User: article}

	var pair Pair
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		pair.Left = c.Complete(ctx, key, left)
	}()
	go func() {
		defer wg.Done()
		pair.Right = c.Complete(ctx, key, right)
	}()
	wg.Wait()

	return pair
}
