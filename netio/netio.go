// Package netio reads and writes contact graphs and contact logs in the file formats commonly used for network
// data: edge lists (edg), GML (gml), square adjacency matrices (mat), Pajek (net) and temporal event lists (evt).
//
// LoadGraph and WriteGraph infer the format from the filename suffix after the last dot and dispatch to the
// format-specific reader or writer, which can also be called directly against any io.Reader or io.Writer.
package netio

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tempnet-io/tempnet/container"
	"github.com/tempnet-io/tempnet/temporal"
)

const (
	FiletypeEdgeList  = "edg"
	FiletypeGML       = "gml"
	FiletypeMatrix    = "mat"
	FiletypePajek     = "net"
	FiletypeEventList = "evt"
)

var (
	// ErrUnknownFiletype is returned when a filename suffix does not match any known format.
	ErrUnknownFiletype = errors.New("unknown network file type")

	// ErrPajekReadUnsupported is returned by the Pajek reader, which is not implemented. Pajek files can be
	// written but not read back.
	ErrPajekReadUnsupported = errors.New("reading the Pajek file format is not implemented")

	// ErrDirectedUnsupported is returned when a GML input declares a directed graph.
	ErrDirectedUnsupported = errors.New("directed graphs are not supported")

	// ErrMalformedInput is returned when a reader cannot parse its input.
	ErrMalformedInput = errors.New("malformed network input")
)

// Filetype infers the type of a network file from the suffix after the last dot of its name.
func Filetype(filename string) string {
	parts := strings.Split(filename, ".")
	return parts[len(parts)-1]
}

// LoadGraph reads a static graph from the given path, inferring the format from the filename.
func LoadGraph(path string) (*container.ContactGraph, *temporal.NodeIndex, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	defer file.Close()

	switch filetype := Filetype(path); filetype {
	case FiletypeEdgeList:
		return LoadEdgeList(file, false)

	case FiletypeGML:
		return LoadGML(file)

	case FiletypeMatrix:
		return LoadMatrix(file)

	case FiletypePajek:
		return nil, nil, ErrPajekReadUnsupported

	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownFiletype, filetype)
	}
}

// WriteGraph writes a static graph to the given path, inferring the format from the filename.
func WriteGraph(path string, graph *container.ContactGraph, index *temporal.NodeIndex) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	defer file.Close()

	switch filetype := Filetype(path); filetype {
	case FiletypeEdgeList:
		return WriteEdgeList(file, graph, index, false)

	case FiletypeGML:
		return WriteGML(file, graph, index)

	case FiletypeMatrix:
		return WriteMatrix(file, graph)

	case FiletypePajek:
		return WritePajek(file, graph, index)

	default:
		return fmt.Errorf("%w: %s", ErrUnknownFiletype, filetype)
	}
}

// label resolves a node ID through the index, falling back to the numeric ID for graphs without interned labels.
func label(index *temporal.NodeIndex, node uint64) string {
	if index != nil {
		if interned, exists := index.Label(node); exists {
			return interned
		}
	}

	return fmt.Sprintf("%d", node)
}
