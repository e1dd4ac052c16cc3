package netio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tempnet-io/tempnet/temporal"
)

// StreamEvents parses whitespace-separated "time nodeA nodeB" lines and hands each event to the delegate without
// materializing the sequence. Node labels are interned through the given index. Blank lines and lines starting
// with '#' are skipped. Returning false from the delegate stops the scan.
func StreamEvents(reader io.Reader, index *temporal.NodeIndex, delegate func(event temporal.Event) bool) error {
	scanner := bufio.NewScanner(reader)

	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)

		if len(fields) < 3 {
			return fmt.Errorf("%w: line %d: expected at least 3 fields, got %d", ErrMalformedInput, lineNumber, len(fields))
		}

		time, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: line %d: event time %q: %v", ErrMalformedInput, lineNumber, fields[0], err)
		}

		event := temporal.Event{
			Time: time,
			A:    index.ID(fields[1]),
			B:    index.ID(fields[2]),
		}

		if !delegate(event) {
			return nil
		}
	}

	return scanner.Err()
}

// LoadEventList reads a temporal event list into a sorted contact log along with the label index built while
// interning its nodes.
func LoadEventList(reader io.Reader) (*temporal.ContactLog, *temporal.NodeIndex, error) {
	var (
		log   = temporal.NewContactLog()
		index = temporal.NewNodeIndex()
	)

	if err := StreamEvents(reader, index, func(event temporal.Event) bool {
		log.Add(event.Time, event.A, event.B)
		return true
	}); err != nil {
		return nil, nil, err
	}

	log.Sort()

	return log, index, nil
}

// WriteEventList writes one "time nodeA nodeB" line per event in log order.
func WriteEventList(writer io.Writer, log *temporal.ContactLog, index *temporal.NodeIndex) error {
	var (
		buffered = bufio.NewWriter(writer)
		writeErr error
	)

	log.EachEvent(func(event temporal.Event) bool {
		_, writeErr = fmt.Fprintf(buffered, "%d\t%s\t%s\n", event.Time, label(index, event.A), label(index, event.B))
		return writeErr == nil
	})

	if writeErr != nil {
		return writeErr
	}

	return buffered.Flush()
}
