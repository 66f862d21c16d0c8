package circulation

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"librarydesk/internal/config"
	"librarydesk/internal/platform/postgres"
)

// OpenRepository builds the repository selected by cfg.Backend. The returned
// close function releases whatever the backend holds and is never nil.
func OpenRepository(ctx context.Context, cfg config.LibraryConfig, logger *zap.Logger) (Repository, func(), error) {
	switch cfg.Backend {
	case config.BackendFile, "":
		logger.Debug("using file backend",
			zap.String("books_file", cfg.BooksFile),
			zap.String("members_file", cfg.MembersFile))
		return NewFileRepo(cfg.BooksFile, cfg.MembersFile), func() {}, nil
	case config.BackendPostgres:
		pool, err := postgres.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, func() {}, err
		}
		logger.Debug("using postgres backend", zap.String("dsn", postgres.RedactDSN(cfg.DatabaseDSN)))
		return NewPostgresRepo(pool, cfg.QueryTimeout()), pool.Close, nil
	default:
		return nil, func() {}, fmt.Errorf("unknown library backend %q", cfg.Backend)
	}
}
