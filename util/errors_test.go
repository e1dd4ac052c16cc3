package util_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tempnet-io/tempnet/util"
)

func TestErrorCollector(t *testing.T) {
	collector := util.NewErrorCollector()

	require.Nil(t, collector.Combined())

	var (
		first  = errors.New("first")
		second = errors.New("second")
	)

	collector.Add(first)
	collector.Add(second)

	combined := collector.Combined()

	require.ErrorIs(t, combined, first)
	require.ErrorIs(t, combined, second)
}
