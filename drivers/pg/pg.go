package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tempnet-io/tempnet"
	"github.com/tempnet-io/tempnet/temporal"
)

const (
	DriverName = "pg"

	// defaultEventQuery expects one row per contact event. Times are read as 64 bit integers so that both epoch
	// seconds and abstract event clocks survive the trip.
	defaultEventQuery = "select event_time, node_a, node_b from contact_events order by event_time"

	poolInitConnectionTimeout = time.Second * 10
)

func NewPool(connectionString string) (*pgxpool.Pool, error) {
	poolCtx, done := context.WithTimeout(context.Background(), poolInitConnectionTimeout)
	defer done()

	poolCfg, err := pgxpool.ParseConfig(connectionString)
	if err != nil {
		return nil, err
	}

	// TODO: Min and Max connections for the pool should be configurable
	poolCfg.MinConns = 2
	poolCfg.MaxConns = 10

	return pgxpool.NewWithConfig(poolCtx, poolCfg)
}

type source struct {
	pool       *pgxpool.Pool
	eventQuery string
}

func (s *source) FetchLog(ctx context.Context) (*temporal.ContactLog, *temporal.NodeIndex, error) {
	var (
		log   = temporal.NewContactLog()
		index = temporal.NewNodeIndex()
	)

	rows, err := s.pool.Query(ctx, s.eventQuery)
	if err != nil {
		return nil, nil, fmt.Errorf("event query failed: %w", err)
	}

	defer rows.Close()

	for rows.Next() {
		var (
			eventTime    int64
			nodeA, nodeB string
		)

		if err := rows.Scan(&eventTime, &nodeA, &nodeB); err != nil {
			return nil, nil, fmt.Errorf("event row scan failed: %w", err)
		}

		log.Add(eventTime, index.ID(nodeA), index.ID(nodeB))
	}

	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	// Downstream sweeps require sorted input, so ordering is enforced here regardless of the query text
	log.Sort()

	return log, index, nil
}

func (s *source) Close(_ context.Context) error {
	s.pool.Close()
	return nil
}

func init() {
	tempnet.Register(DriverName, func(ctx context.Context, cfg tempnet.Config) (tempnet.Source, error) {
		var (
			pool *pgxpool.Pool
			err  error
		)

		if existingPool, hasPool := cfg.DriverConfig.(*pgxpool.Pool); hasPool {
			pool = existingPool
		} else if pool, err = NewPool(cfg.ConnectionString); err != nil {
			return nil, err
		}

		eventQuery := cfg.Query

		if eventQuery == "" {
			eventQuery = defaultEventQuery
		}

		return &source{
			pool:       pool,
			eventQuery: eventQuery,
		}, nil
	})
}
