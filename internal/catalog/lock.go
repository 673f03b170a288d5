package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process holds the catalog lock past the
// caller's deadline.
var ErrLocked = errors.New("catalog is locked by another process")

const lockRetryDelay = 50 * time.Millisecond

// LockPath returns the advisory lock file used for the database at dbPath.
func LockPath(dbPath string) string {
	return dbPath + ".lock"
}

// WithLock runs fn while holding an exclusive lock next to dbPath. It waits
// until ctx is done for a competing holder to release the lock.
func WithLock(ctx context.Context, dbPath string, fn func() error) error {
	ctx = ensureContext(ctx)
	lockPath := LockPath(dbPath)
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return fmt.Errorf("create lock directory: %w", err)
	}

	lock := flock.New(lockPath)
	ok, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return fmt.Errorf("%w: %s", ErrLocked, lockPath)
		}
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrLocked, lockPath)
	}
	defer func() { _ = lock.Unlock() }()

	return fn()
}
