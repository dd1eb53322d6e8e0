package persistence

import (
	"fmt"
	"time"

	"github.com/GriffinCanCode/AgentOS/vfs/internal/namespace"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/shared/id"
)

// DefaultKey is the store key the state blob lives under.
const DefaultKey = "vfs.state"

// SaveObserver is told about every save attempt.
type SaveObserver func(duration time.Duration, size int, err error)

// Adapter implements namespace.Persister on top of a Store.
type Adapter struct {
	store       Store
	key         string
	codec       Codec
	compression Compression
	observer    SaveObserver
}

// AdapterOption configures an Adapter.
type AdapterOption func(*Adapter)

// WithKey overrides DefaultKey.
func WithKey(key string) AdapterOption {
	return func(a *Adapter) {
		if key != "" {
			a.key = key
		}
	}
}

// WithCodec overrides the JSON codec.
func WithCodec(c Codec) AdapterOption {
	return func(a *Adapter) {
		if c != nil {
			a.codec = c
		}
	}
}

// WithCompression compresses blobs on save.
func WithCompression(c Compression) AdapterOption {
	return func(a *Adapter) { a.compression = c }
}

// WithSaveObserver registers a callback for save metrics.
func WithSaveObserver(fn SaveObserver) AdapterOption {
	return func(a *Adapter) { a.observer = fn }
}

// NewAdapter creates an adapter over store.
func NewAdapter(store Store, opts ...AdapterOption) *Adapter {
	a := &Adapter{
		store:       store,
		key:         DefaultKey,
		codec:       JSONCodec{},
		compression: CompressionNone,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Key returns the store key in use.
func (a *Adapter) Key() string {
	return a.key
}

// Save serializes the full tree and cursor and writes them under the key.
func (a *Adapter) Save(state namespace.State) (err error) {
	start := time.Now()
	size := 0
	defer func() {
		if a.observer != nil {
			a.observer(time.Since(start), size, err)
		}
	}()

	data, err := a.Encode(state)
	if err != nil {
		return err
	}
	size = len(data)

	if err := a.store.Set(a.key, data); err != nil {
		return fmt.Errorf("failed to store state: %w", err)
	}
	return nil
}

// Load reads the blob back. It returns (nil, nil) when no state has been saved.
func (a *Adapter) Load() (*namespace.State, error) {
	data, ok, err := a.store.Get(a.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read state: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return a.Decode(data)
}

// Encode produces the stored bytes for state without writing them.
func (a *Adapter) Encode(state namespace.State) ([]byte, error) {
	if state.Root == nil {
		return nil, fmt.Errorf("state has no root")
	}

	w := encodeState(state, string(id.NewSnapshotID()))
	data, err := a.codec.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("failed to encode state: %w", err)
	}

	data, err = a.compression.compress(data)
	if err != nil {
		return nil, fmt.Errorf("failed to compress state: %w", err)
	}
	return data, nil
}

// Decode parses bytes produced by Encode.
func (a *Adapter) Decode(data []byte) (*namespace.State, error) {
	raw, err := decompress(data)
	if err != nil {
		return nil, fmt.Errorf("corrupt state: %w", err)
	}

	var w wireState
	if err := a.codec.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("corrupt state: %w", err)
	}

	state, err := decodeState(&w)
	if err != nil {
		return nil, fmt.Errorf("corrupt state: %w", err)
	}
	return state, nil
}

// Export renders state with an arbitrary codec, uncompressed. Used for dumps.
func Export(state namespace.State, codec Codec) ([]byte, error) {
	return codec.Marshal(encodeState(state, string(id.NewSnapshotID())))
}
