package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"spritegen/internal/cache"
	"spritegen/internal/server"
	sgerrors "spritegen/pkg/errors"
)

const (
	cacheNone  = "none"
	cacheFile  = "file"
	cacheRedis = "redis"

	shutdownTimeout = 5 * time.Second
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string
	cache     string
	cacheDir  string
	redisAddr string
	redisPass string
	redisDB   int
	maxScale  int
	ttl       time.Duration
}

func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: ":8080", cache: cacheNone, redisAddr: "localhost:6379", maxScale: 32, ttl: 24 * time.Hour}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve sprites over HTTP",
		Long: `Serve sprites over HTTP.

  GET  /presets
  GET  /sprites/{name}.png?seed=&scale=&<option>=
  GET  /sprites/{name}.txt?seed=
  POST /sprites   {"width","height","cells","mirror_x","mirror_y","seed","scale","options"}

Seeded requests are cached in the configured backend.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.cache, "cache", opts.cache, "cache backend: none, file or redis")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "file cache directory (default: XDG cache dir)")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", opts.redisAddr, "redis address")
	cmd.Flags().StringVar(&opts.redisPass, "redis-password", "", "redis password")
	cmd.Flags().IntVar(&opts.redisDB, "redis-db", 0, "redis database")
	cmd.Flags().IntVar(&opts.maxScale, "max-scale", opts.maxScale, "largest accepted scale")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", opts.ttl, "cache entry lifetime")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	base, err := c.renderOptions()
	if err != nil {
		return err
	}
	store, err := c.newCache(ctx, opts)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := server.New(c.Logger,
		server.WithCache(store),
		server.WithBaseOptions(base),
		server.WithMaxScale(opts.maxScale),
		server.WithTTL(opts.ttl),
	)
	httpServer := &http.Server{
		Addr:              opts.addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", opts.addr, "cache", opts.cache)
		errc <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

func (c *CLI) newCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	switch opts.cache {
	case cacheNone, "":
		return cache.NewNullCache(), nil
	case cacheFile:
		dir := opts.cacheDir
		if dir == "" {
			var err error
			if dir, err = cacheDir(); err != nil {
				return nil, err
			}
		}
		c.Logger.Debug("file cache", "dir", dir)
		return cache.NewFileCache(dir)
	case cacheRedis:
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		rc, err := cache.NewRedisCache(pingCtx, cache.RedisConfig{
			Addr:     opts.redisAddr,
			Password: opts.redisPass,
			DB:       opts.redisDB,
		})
		if err != nil {
			return nil, sgerrors.Wrap(sgerrors.ErrCodeInternal, err, "connect to redis at %s", opts.redisAddr)
		}
		return rc, nil
	default:
		return nil, sgerrors.New(sgerrors.ErrCodeInvalidInput, "unknown cache backend %q (want none, file or redis)", opts.cache)
	}
}
