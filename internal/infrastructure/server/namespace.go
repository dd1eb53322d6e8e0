package server

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	apihttp "github.com/GriffinCanCode/AgentOS/vfs/internal/api/http"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/infrastructure/config"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/infrastructure/monitoring"
	ns "github.com/GriffinCanCode/AgentOS/vfs/internal/namespace"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/persistence"
	nsprovider "github.com/GriffinCanCode/AgentOS/vfs/internal/providers/namespace"
)

// Namespace bundles a restored engine with the provider and store behind it.
type Namespace struct {
	Provider *nsprovider.Provider
	Storage  apihttp.StorageInfo
	store    persistence.Store
}

// OpenNamespace opens the configured store and restores the engine from it.
// metrics may be nil.
func OpenNamespace(cfg *config.Config, logger *zap.Logger, metrics *monitoring.Metrics) (*Namespace, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	codec, err := persistence.CodecByName(cfg.Persistence.Codec)
	if err != nil {
		return nil, err
	}
	compression, err := persistence.ParseCompression(cfg.Persistence.Compression)
	if err != nil {
		return nil, err
	}
	mode, err := ns.ParsePatternMode(cfg.Namespace.PatternMode)
	if err != nil {
		return nil, err
	}

	store, err := openStore(cfg.Persistence, logger)
	if err != nil {
		return nil, err
	}

	adapterOpts := []persistence.AdapterOption{
		persistence.WithKey(cfg.Persistence.Key),
		persistence.WithCodec(codec),
		persistence.WithCompression(compression),
	}
	if metrics != nil {
		adapterOpts = append(adapterOpts, persistence.WithSaveObserver(metrics.RecordSave))
	}
	adapter := persistence.NewAdapter(store, adapterOpts...)

	engine := ns.New(
		ns.WithPersister(adapter),
		ns.WithHome(cfg.Namespace.Home),
		ns.WithPatternMode(mode),
		ns.WithLogger(logger.Named("namespace")),
	)

	logger.Info("Namespace ready",
		zap.String("store", cfg.Persistence.Store),
		zap.String("key", adapter.Key()),
		zap.String("codec", codec.Name()),
		zap.String("compression", string(compression)),
		zap.String("cwd", engine.GetCurrentDirectory()),
	)

	return &Namespace{
		Provider: nsprovider.NewProvider(engine,
			nsprovider.WithMetrics(metrics),
			nsprovider.WithLogger(logger.Named("provider")),
		),
		Storage: apihttp.StorageInfo{
			Backend:     cfg.Persistence.Store,
			Key:         adapter.Key(),
			Codec:       codec.Name(),
			Compression: string(compression),
		},
		store: store,
	}, nil
}

// Close releases the store.
func (n *Namespace) Close() error {
	if c, ok := n.store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func openStore(cfg config.PersistenceConfig, logger *zap.Logger) (persistence.Store, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return persistence.NewMemoryStore(), nil
	case config.StoreFile:
		store, err := persistence.NewFileStore(cfg.Path)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.StoreBadger:
		store, err := persistence.OpenBadgerStore(cfg.Path, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store: %q", cfg.Store)
	}
}
