package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pinwall/pinwall/pkg/cache"
	"github.com/pinwall/pinwall/pkg/pipeline"
	"github.com/pinwall/pinwall/pkg/server"
	"github.com/pinwall/pinwall/pkg/store"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string
	redisURL string // when set, arrangements are cached in Redis
	mongoURI string // when set, boards live in MongoDB instead of files
	mongoDB  string
	storeDir string // file store directory when Mongo is not used
	noCache  bool
}

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:     c.Config.Server.Addr,
		redisURL: c.Config.Server.RedisURL,
		mongoURI: c.Config.Server.MongoURI,
		mongoDB:  c.Config.Server.MongoDB,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the arrangement HTTP API",
		Long: `Serve starts an HTTP server exposing the arrangement pipeline and the
board store. Boards are kept in a local directory by default; pass --mongo
to use MongoDB and --redis to cache arrangements in Redis.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisURL, "redis", opts.redisURL, "Redis URL for the arrangement cache (e.g. redis://localhost:6379/0)")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo", opts.mongoURI, "MongoDB URI for the board store (e.g. mongodb://localhost:27017)")
	cmd.Flags().StringVar(&opts.mongoDB, "db", opts.mongoDB, "MongoDB database name")
	cmd.Flags().StringVar(&opts.storeDir, "store-dir", "", "board directory for the file store (default: config dir)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the arrangement cache")

	return cmd
}

// runServe wires up the cache and store backends and blocks serving requests
// until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	cc, err := c.serveCache(ctx, opts)
	if err != nil {
		return err
	}

	st, err := c.serveStore(ctx, opts)
	if err != nil {
		return err
	}
	defer st.Close()

	runner := pipeline.NewRunner(cc, nil, c.Logger)
	defer runner.Close()

	srv := server.New(server.Config{
		Addr:   opts.addr,
		Runner: runner,
		Store:  st,
		Logger: c.Logger,
	})

	c.Logger.Info("serving", "addr", opts.addr)
	return srv.ListenAndServe(ctx)
}

// serveCache picks the cache backend: Redis, file, or none.
func (c *CLI) serveCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redisURL != "" {
		rc, err := cache.NewRedisCache(ctx, opts.redisURL)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		c.Logger.Info("using redis cache", "url", opts.redisURL)
		return rc, nil
	}
	return newCache(false)
}

// serveStore picks the store backend: Mongo or file.
func (c *CLI) serveStore(ctx context.Context, opts *serveOpts) (store.Store, error) {
	if opts.mongoURI != "" {
		ms, err := store.NewMongoStore(ctx, opts.mongoURI, opts.mongoDB)
		if err != nil {
			return nil, fmt.Errorf("connect mongodb: %w", err)
		}
		c.Logger.Info("using mongodb store", "db", opts.mongoDB)
		return ms, nil
	}
	if opts.storeDir != "" {
		return store.NewFileStore(opts.storeDir)
	}
	return newStore()
}
