package neo4j

import (
	"context"
	"fmt"
	"net/url"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/tempnet-io/tempnet"
	"github.com/tempnet-io/tempnet/temporal"
)

const (
	DriverName = "neo4j"

	// defaultEventQuery expects one record per contact event with an integer time and two node labels, ascending
	// by time.
	defaultEventQuery = "match (a)-[c:CONTACT]-(b) where elementId(a) < elementId(b) return c.time as event_time, a.name as node_a, b.name as node_b order by c.time"
)

type source struct {
	driver     neo4j.DriverWithContext
	eventQuery string
}

func newSource(_ context.Context, cfg tempnet.Config) (tempnet.Source, error) {
	if connectionURL, err := url.Parse(cfg.ConnectionString); err != nil {
		return nil, err
	} else if connectionURL.Scheme != DriverName {
		return nil, fmt.Errorf("expected connection URL scheme %s for Neo4J but got %s", DriverName, connectionURL.Scheme)
	} else if password, isSet := connectionURL.User.Password(); !isSet {
		return nil, fmt.Errorf("no password provided in connection URL")
	} else {
		boltURL := fmt.Sprintf("bolt://%s:%s", connectionURL.Hostname(), connectionURL.Port())

		if internalDriver, err := neo4j.NewDriverWithContext(boltURL, neo4j.BasicAuth(connectionURL.User.Username(), password, "")); err != nil {
			return nil, fmt.Errorf("unable to connect to Neo4J: %w", err)
		} else {
			eventQuery := cfg.Query

			if eventQuery == "" {
				eventQuery = defaultEventQuery
			}

			return &source{
				driver:     internalDriver,
				eventQuery: eventQuery,
			}, nil
		}
	}
}

func (s *source) FetchLog(ctx context.Context) (*temporal.ContactLog, *temporal.NodeIndex, error) {
	var (
		log   = temporal.NewContactLog()
		index = temporal.NewNodeIndex()

		session = s.driver.NewSession(ctx, neo4j.SessionConfig{
			AccessMode: neo4j.AccessModeRead,
		})
	)

	defer session.Close(ctx)

	if _, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, s.eventQuery, nil)
		if err != nil {
			return nil, err
		}

		for result.Next(ctx) {
			record := result.Record()

			if len(record.Values) < 3 {
				return nil, fmt.Errorf("expected 3 values per event record but got %d", len(record.Values))
			}

			eventTime, typeOK := record.Values[0].(int64)
			if !typeOK {
				return nil, fmt.Errorf("expected an integer event time but got %T", record.Values[0])
			}

			log.Add(eventTime, index.ID(fmt.Sprint(record.Values[1])), index.ID(fmt.Sprint(record.Values[2])))
		}

		return nil, result.Err()
	}); err != nil {
		return nil, nil, err
	}

	// Downstream sweeps require sorted input, so ordering is enforced here regardless of the query text
	log.Sort()

	return log, index, nil
}

func (s *source) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

func init() {
	tempnet.Register(DriverName, func(ctx context.Context, cfg tempnet.Config) (tempnet.Source, error) {
		return newSource(ctx, cfg)
	})
}
