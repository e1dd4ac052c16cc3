package tempnet_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tempnet-io/tempnet"
	"github.com/tempnet-io/tempnet/temporal"
)

type fixedSource struct {
	log   *temporal.ContactLog
	index *temporal.NodeIndex
}

func (s fixedSource) FetchLog(_ context.Context) (*temporal.ContactLog, *temporal.NodeIndex, error) {
	return s.log, s.index, nil
}

func (s fixedSource) Close(_ context.Context) error {
	return nil
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := tempnet.Open(context.Background(), "this driver does not exist", tempnet.Config{})
	require.ErrorIs(t, err, tempnet.ErrDriverMissing)
}

func TestOpenRegisteredDriver(t *testing.T) {
	var (
		log   = temporal.NewContactLog()
		index = temporal.NewNodeIndex()
	)

	log.Add(0, index.ID("a"), index.ID("b"))

	tempnet.Register("fixed", func(ctx context.Context, cfg tempnet.Config) (tempnet.Source, error) {
		return fixedSource{log: log, index: index}, nil
	})

	source, err := tempnet.Open(context.Background(), "fixed", tempnet.Config{})
	require.NoError(t, err)

	fetched, fetchedIndex, err := source.FetchLog(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, fetched.NumEvents())

	firstLabel, exists := fetchedIndex.Label(0)
	require.True(t, exists)
	require.Equal(t, "a", firstLabel)

	require.NoError(t, source.Close(context.Background()))
}
