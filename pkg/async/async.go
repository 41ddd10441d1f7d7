package async

import "context"

// Future holds the eventual result of a function started by Async or Map.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await blocks until the function has returned.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// Done is closed once the result is available.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// Async runs fn(ctx, param) in its own goroutine.
// If ctx is already canceled, fn is not called and the Future completes
// with the context error.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	return start(ctx, param, fn, nil)
}

// Map runs fn for every item with at most limit calls in flight and returns
// one Future per item, in item order. A limit of zero or less runs all
// items at once.
func Map[T any, U any](ctx context.Context, items []T, limit int, fn func(context.Context, T) (U, error)) []*Future[U] {
	var sem chan struct{}
	if limit > 0 {
		sem = make(chan struct{}, limit)
	}

	futures := make([]*Future[U], len(items))
	for i, item := range items {
		futures[i] = start(ctx, item, fn, sem)
	}
	return futures
}

// WaitAll awaits every future and returns their results in order together
// with the first error, by position.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))

	var first error
	for i, f := range futures {
		res, err := f.Await()
		results[i] = res
		if err != nil && first == nil {
			first = err
		}
	}
	return results, first
}

func start[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error), sem chan struct{}) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if sem != nil {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				f.err = ctx.Err()
				return
			}
		}

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}

		f.result, f.err = fn(ctx, param)
	}()

	return f
}
