package diagnostic

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"ridedeck/internal/infra"
)

var ErrUnsupportedScheme = errors.New("unsupported database url scheme")

// Open picks a backend from the URL scheme. An empty URL yields NoopDatabase.
// None of the backends dial here; connection problems surface on ListCollections.
func Open(ctx context.Context, rawURL, name string) (Database, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return NoopDatabase{}, nil
	}

	scheme := schemeOf(rawURL)
	switch scheme {
	case "postgres", "postgresql":
		pool, err := infra.NewDB(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		return NewPostgresDatabase(pool), nil
	case "redis", "rediss":
		client, err := infra.NewRedis(rawURL)
		if err != nil {
			return nil, err
		}
		return NewRedisDatabase(client), nil
	case "mongodb", "mongodb+srv":
		client, err := infra.NewMongo(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		return NewMongoDatabase(client, name), nil
	case "sqlite", "file":
		db, err := infra.NewSQLite(sqliteDSN(rawURL))
		if err != nil {
			return nil, err
		}
		return NewSQLiteDatabase(db), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}
}

func schemeOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" {
		scheme, _, _ := strings.Cut(rawURL, ":")
		return strings.ToLower(scheme)
	}
	return strings.ToLower(u.Scheme)
}

// sqliteDSN turns sqlite:///abs/path.db or sqlite://rel.db into a driver path;
// file: URIs are passed through untouched.
func sqliteDSN(rawURL string) string {
	if strings.HasPrefix(strings.ToLower(rawURL), "sqlite://") {
		return rawURL[len("sqlite://"):]
	}
	return rawURL
}
