package snapshot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/hupe1980/prioq"
	"github.com/hupe1980/prioq/blobstore"
)

// Save writes a snapshot of q to the named blob. The blob is replaced
// atomically by the store, so a reader never observes a torn snapshot.
func Save[K comparable](ctx context.Context, store blobstore.Store, name string, q *prioq.Queue[K], optFns ...Option) error {
	var buf bytes.Buffer
	if err := Write(&buf, q, optFns...); err != nil {
		return err
	}

	if err := store.Put(ctx, name, buf.Bytes()); err != nil {
		return fmt.Errorf("put snapshot %q: %w", name, err)
	}

	return nil
}

// Load reads the named blob and rebuilds the queue. Returns
// blobstore.ErrNotFound if the blob does not exist.
func Load[K comparable](ctx context.Context, store blobstore.Store, name string, optFns ...prioq.Option) (*prioq.Queue[K], error) {
	data, err := store.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get snapshot %q: %w", name, err)
	}

	return Read[K](bytes.NewReader(data), optFns...)
}
