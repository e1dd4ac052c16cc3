package netio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tempnet-io/tempnet/netio"
	"github.com/tempnet-io/tempnet/temporal"
)

func TestFiletype(t *testing.T) {
	require.Equal(t, "edg", netio.Filetype("mynet.edg"))
	require.Equal(t, "mat", netio.Filetype("mynet.old.mat"))
	require.Equal(t, "evt", netio.Filetype("contacts.evt"))
}

func TestLoadEdgeList(t *testing.T) {
	input := strings.NewReader(strings.Join([]string{
		"alice bob 1",
		"bob carol 2",
		"alice bob 1",
		"dave dave 9",
		"short line",
	}, "\n"))

	graph, index, err := netio.LoadEdgeList(input, false)
	require.NoError(t, err)

	// Repeated listings sum; self-loops and short lines are skipped
	require.Equal(t, uint64(3), graph.NumNodes())
	require.Equal(t, 2.0, graph.Weight(index.ID("alice"), index.ID("bob")))
	require.Equal(t, 2.0, graph.Weight(index.ID("bob"), index.ID("carol")))
}

func TestLoadEdgeListMutual(t *testing.T) {
	input := strings.NewReader(strings.Join([]string{
		"a b 2",
		"c d 5",
		"b a 4",
	}, "\n"))

	graph, index, err := netio.LoadEdgeList(input, true)
	require.NoError(t, err)

	// Only the mutually listed pair produces an edge, with the average weight
	require.Equal(t, 3.0, graph.Weight(index.ID("a"), index.ID("b")))
	require.False(t, graph.HasEdge(index.ID("c"), index.ID("d")))
}

func TestEdgeListRoundTrip(t *testing.T) {
	var (
		input = strings.NewReader("a b 1.5\nb c 2\n")
		out   bytes.Buffer
	)

	graph, index, err := netio.LoadEdgeList(input, false)
	require.NoError(t, err)

	require.NoError(t, netio.WriteEdgeList(&out, graph, index, true))

	require.Equal(t, "HEAD\tTAIL\tWEIGHT\na\tb\t1.5\nb\tc\t2\n", out.String())
}

func TestGMLRoundTrip(t *testing.T) {
	var (
		input = strings.NewReader("a b 1\nb c 2.5\n")
		gml   bytes.Buffer
	)

	graph, index, err := netio.LoadEdgeList(input, false)
	require.NoError(t, err)

	require.NoError(t, netio.WriteGML(&gml, graph, index))

	reloaded, _, err := netio.LoadGML(bytes.NewReader(gml.Bytes()))
	require.NoError(t, err)

	require.Equal(t, graph.NumNodes(), reloaded.NumNodes())
	require.Equal(t, graph.NumEdges(), reloaded.NumEdges())
}

func TestLoadGMLWeightsAndDefaults(t *testing.T) {
	input := strings.NewReader(strings.Join([]string{
		"graph [",
		"directed 0",
		"edge [",
		"source 1",
		"target 2",
		"value 2.5",
		"]",
		"edge [",
		"source 2",
		"target 3",
		"]",
		"]",
	}, "\n"))

	graph, index, err := netio.LoadGML(input)
	require.NoError(t, err)

	require.Equal(t, 2.5, graph.Weight(index.ID("1"), index.ID("2")))

	// Edges without a value default to weight 1
	require.Equal(t, 1.0, graph.Weight(index.ID("2"), index.ID("3")))
}

func TestLoadGMLRejectsDirected(t *testing.T) {
	input := strings.NewReader("graph [\ndirected 1\n]\n")

	_, _, err := netio.LoadGML(input)
	require.ErrorIs(t, err, netio.ErrDirectedUnsupported)
}

func TestMatrixRoundTrip(t *testing.T) {
	input := strings.NewReader(strings.Join([]string{
		"0 1 0",
		"1 0 2.5",
		"0 2.5 0",
	}, "\n"))

	graph, _, err := netio.LoadMatrix(input)
	require.NoError(t, err)

	require.Equal(t, uint64(3), graph.NumNodes())
	require.Equal(t, 1.0, graph.Weight(0, 1))
	require.Equal(t, 2.5, graph.Weight(1, 2))
	require.False(t, graph.HasEdge(0, 2))

	var out bytes.Buffer

	require.NoError(t, netio.WriteMatrix(&out, graph))
	require.Equal(t, "0 1 0\n1 0 2.5\n0 2.5 0\n", out.String())
}

func TestLoadMatrixRejectsNonSquare(t *testing.T) {
	_, _, err := netio.LoadMatrix(strings.NewReader("0 1\n1 0\n0 1\n"))
	require.ErrorIs(t, err, netio.ErrMalformedInput)

	_, _, err = netio.LoadMatrix(strings.NewReader("0 1\n1 0 1\n"))
	require.ErrorIs(t, err, netio.ErrMalformedInput)
}

func TestWritePajek(t *testing.T) {
	var (
		input = strings.NewReader("a b 1\nb c 2\n")
		out   bytes.Buffer
	)

	graph, index, err := netio.LoadEdgeList(input, false)
	require.NoError(t, err)

	require.NoError(t, netio.WritePajek(&out, graph, index))

	require.Equal(t, strings.Join([]string{
		`*Vertices 3`,
		`1 "a"`,
		`2 "b"`,
		`3 "c"`,
		`*Edges`,
		"1\t2\t1",
		"2\t3\t2",
	}, "\n")+"\n", out.String())
}

func TestLoadPajekUnsupported(t *testing.T) {
	_, _, err := netio.LoadPajek(strings.NewReader("*Vertices 0\n"))
	require.ErrorIs(t, err, netio.ErrPajekReadUnsupported)
}

func TestLoadEventList(t *testing.T) {
	input := strings.NewReader(strings.Join([]string{
		"# contact trace",
		"",
		"20 alice bob",
		"10 bob carol",
		"20 carol alice",
	}, "\n"))

	log, index, err := netio.LoadEventList(input)
	require.NoError(t, err)

	require.Equal(t, 3, log.NumEvents())
	require.Equal(t, uint64(3), log.NumNodes())

	// The log comes back time-sorted with input order preserved for ties
	require.Equal(t, temporal.Event{Time: 10, A: index.ID("bob"), B: index.ID("carol")}, log.Event(0))
	require.Equal(t, temporal.Event{Time: 20, A: index.ID("alice"), B: index.ID("bob")}, log.Event(1))
	require.Equal(t, temporal.Event{Time: 20, A: index.ID("carol"), B: index.ID("alice")}, log.Event(2))
}

func TestStreamEventsMalformed(t *testing.T) {
	var (
		index = temporal.NewNodeIndex()
		err   = netio.StreamEvents(strings.NewReader("soon alice bob\n"), index, func(event temporal.Event) bool {
			return true
		})
	)

	require.ErrorIs(t, err, netio.ErrMalformedInput)
}

func TestEventListRoundTrip(t *testing.T) {
	var (
		input = "0\ta\tb\n1\tb\tc\n"
		out   bytes.Buffer
	)

	log, index, err := netio.LoadEventList(strings.NewReader(input))
	require.NoError(t, err)

	require.NoError(t, netio.WriteEventList(&out, log, index))
	require.Equal(t, input, out.String())
}
