package memory

import (
	"context"
	"sync"

	"example.com/vibe-storefront/app/internal/infra/persistence/localstore"
)

// KV is an in-process key-value backend. State is lost when the process exits.
type KV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewKV() *KV {
	return &KV{data: make(map[string][]byte)}
}

func (k *KV) Get(ctx context.Context, key string) ([]byte, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	v, ok := k.data[key]
	if !ok {
		return nil, localstore.ErrKeyNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (k *KV) Put(ctx context.Context, key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)
	k.mu.Lock()
	k.data[key] = v
	k.mu.Unlock()
	return nil
}
