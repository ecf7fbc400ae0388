package sha2sum

import "context"

// FileContext is File with cancellation. The stat-read-hash sequence runs
// on its own goroutine; if ctx is cancelled first, FileContext returns
// ctx.Err() and the in-flight result is discarded — a cancelled call never
// yields a digest. The result channel is buffered so the abandoned
// goroutine does not leak.
func FileContext(ctx context.Context, path string, alg Algorithm) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		sum string
		err error
	}
	ch := make(chan result, 1)
	go func() {
		sum, err := File(path, alg)
		ch <- result{sum: sum, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.sum, r.err
	}
}

// SHA224FileContext computes the SHA-224 digest of the file at path.
func SHA224FileContext(ctx context.Context, path string) (string, error) {
	return FileContext(ctx, path, SHA224)
}

// SHA256FileContext computes the SHA-256 digest of the file at path.
func SHA256FileContext(ctx context.Context, path string) (string, error) {
	return FileContext(ctx, path, SHA256)
}

// SHA384FileContext computes the SHA-384 digest of the file at path.
func SHA384FileContext(ctx context.Context, path string) (string, error) {
	return FileContext(ctx, path, SHA384)
}

// SHA512FileContext computes the SHA-512 digest of the file at path.
func SHA512FileContext(ctx context.Context, path string) (string, error) {
	return FileContext(ctx, path, SHA512)
}
