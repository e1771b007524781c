// README: Database backends: Postgres, Redis, MongoDB and SQLite collection listing.
package diagnostic

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotConfigured        = errors.New("database not configured")
	ErrDatabaseNameRequired = errors.New("database name not set")
)

// PostgresDatabase lists the tables of the connection's current schema.
type PostgresDatabase struct {
	pool *pgxpool.Pool
}

func NewPostgresDatabase(pool *pgxpool.Pool) *PostgresDatabase {
	return &PostgresDatabase{pool: pool}
}

func (d *PostgresDatabase) IsAvailable() bool { return d.pool != nil }

func (d *PostgresDatabase) ListCollections(ctx context.Context) ([]string, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = current_schema()
		ORDER BY table_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (d *PostgresDatabase) Close() error {
	if d.pool != nil {
		d.pool.Close()
	}
	return nil
}

// redisScanLimit bounds how many keys one probe inspects.
const redisScanLimit = 1000

// RedisDatabase treats the key prefix before the first ':' as a collection.
type RedisDatabase struct {
	client *redis.Client
}

func NewRedisDatabase(client *redis.Client) *RedisDatabase {
	return &RedisDatabase{client: client}
}

func (d *RedisDatabase) IsAvailable() bool { return d.client != nil }

func (d *RedisDatabase) ListCollections(ctx context.Context) ([]string, error) {
	seen := map[string]struct{}{}
	var cursor uint64
	scanned := 0
	for {
		keys, next, err := d.client.Scan(ctx, cursor, "*", 100).Result()
		if err != nil {
			return nil, err
		}
		for _, k := range keys {
			prefix, _, _ := strings.Cut(k, ":")
			seen[prefix] = struct{}{}
		}
		scanned += len(keys)
		cursor = next
		if cursor == 0 || scanned >= redisScanLimit {
			break
		}
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func (d *RedisDatabase) Close() error {
	if d.client == nil {
		return nil
	}
	return d.client.Close()
}

// MongoDatabase lists collections of the configured database.
type MongoDatabase struct {
	client *mongo.Client
	name   string
}

func NewMongoDatabase(client *mongo.Client, name string) *MongoDatabase {
	return &MongoDatabase{client: client, name: name}
}

func (d *MongoDatabase) IsAvailable() bool { return d.client != nil }

func (d *MongoDatabase) ListCollections(ctx context.Context) ([]string, error) {
	if d.name == "" {
		return nil, ErrDatabaseNameRequired
	}
	names, err := d.client.Database(d.name).ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (d *MongoDatabase) Close() error {
	if d.client == nil {
		return nil
	}
	return d.client.Disconnect(context.Background())
}

// SQLiteDatabase lists user tables from sqlite_master.
type SQLiteDatabase struct {
	db *sql.DB
}

func NewSQLiteDatabase(db *sql.DB) *SQLiteDatabase {
	return &SQLiteDatabase{db: db}
}

func (d *SQLiteDatabase) IsAvailable() bool { return d.db != nil }

func (d *SQLiteDatabase) ListCollections(ctx context.Context) ([]string, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (d *SQLiteDatabase) Close() error {
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}
