package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/shopgraph/go-recs-backend/config"
	"github.com/shopgraph/go-recs-backend/internal/etl/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGraphStore struct {
	ops     []string
	pingErr error
}

func (f *fakeGraphStore) Write(ctx context.Context, cypher string, params map[string]any) error {
	switch {
	case strings.Contains(cypher, "CREATE CONSTRAINT"), strings.Contains(cypher, "CREATE INDEX"):
		f.ops = append(f.ops, "schema")
	case strings.Contains(cypher, "DETACH DELETE"):
		f.ops = append(f.ops, "wipe")
	default:
		f.ops = append(f.ops, "load")
	}
	return nil
}

func (f *fakeGraphStore) Read(ctx context.Context, cypher string, params map[string]any) ([]map[string]any, error) {
	f.ops = append(f.ops, "verify")
	return []map[string]any{{"count": int64(0)}}, nil
}

func (f *fakeGraphStore) Ping(ctx context.Context) error  { return f.pingErr }
func (f *fakeGraphStore) Close(ctx context.Context) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		ETL: config.ETLConfig{
			ChunkSize:       500,
			ConnectAttempts: 2,
			ConnectDelay:    time.Millisecond,
		},
	}
}

func emptyTables(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`from categories`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("c1", "Books"))
	mock.ExpectQuery(`from products`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "category_id"}))
	mock.ExpectQuery(`from customers`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "join_date"}))
	mock.ExpectQuery(`from orders`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "ts"}))
	mock.ExpectQuery(`from order_items`).
		WillReturnRows(sqlmock.NewRows([]string{"order_id", "product_id", "quantity"}))
	mock.ExpectQuery(`from events`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "product_id", "event_type", "ts"}))
}

func TestRunPhaseOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	emptyTables(mock)

	store := &fakeGraphStore{}
	p := NewPipeline(Deps{
		Config:    testConfig(),
		Log:       zerolog.Nop(),
		OpenSQL:   func(cfg *config.PostgresConfig) (*sql.DB, error) { return db, nil },
		OpenGraph: func(cfg *config.Neo4jConfig) (GraphStore, error) { return store, nil },
	})

	require.NoError(t, p.Run(context.Background()))

	// schema first, then exactly one wipe, then loads, then verification
	firstWipe := -1
	lastSchema := -1
	firstLoad := len(store.ops)
	firstVerify := -1
	for i, op := range store.ops {
		switch op {
		case "schema":
			lastSchema = i
		case "wipe":
			if firstWipe == -1 {
				firstWipe = i
			}
		case "load":
			if i < firstLoad {
				firstLoad = i
			}
		case "verify":
			if firstVerify == -1 {
				firstVerify = i
			}
		}
	}

	require.NotEqual(t, -1, firstWipe)
	assert.Less(t, lastSchema, firstWipe, "schema bootstrap precedes wipe")
	assert.Less(t, firstWipe, firstLoad, "wipe precedes loads")
	assert.Less(t, firstLoad, firstVerify, "loads precede verification")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunAbortsWhenGraphUnavailable(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)

	store := &fakeGraphStore{pingErr: errors.New("refused")}
	p := NewPipeline(Deps{
		Config:    testConfig(),
		Log:       zerolog.Nop(),
		OpenSQL:   func(cfg *config.PostgresConfig) (*sql.DB, error) { return db, nil },
		OpenGraph: func(cfg *config.Neo4jConfig) (GraphStore, error) { return store, nil },
	})

	err = p.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConnectionUnavailable)
	assert.Empty(t, store.ops, "no writes reach an unreachable store")
}

func TestRunAbortsWhenPostgresUnavailable(t *testing.T) {
	p := NewPipeline(Deps{
		Config:  testConfig(),
		Log:     zerolog.Nop(),
		OpenSQL: func(cfg *config.PostgresConfig) (*sql.DB, error) { return nil, errors.New("refused") },
		OpenGraph: func(cfg *config.Neo4jConfig) (GraphStore, error) {
			t.Fatal("graph must not be opened when postgres never comes up")
			return nil, nil
		},
	})

	err := p.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConnectionUnavailable)
}
