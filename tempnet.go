package tempnet

import (
	"context"
	"errors"

	"github.com/tempnet-io/tempnet/temporal"
)

var (
	ErrDriverMissing = errors.New("driver missing")
)

// Source is a handle on an external store of contact events. FetchLog materializes the store's events as a
// time-sorted contact log along with the label index built while interning its nodes.
type Source interface {
	FetchLog(ctx context.Context) (*temporal.ContactLog, *temporal.NodeIndex, error)
	Close(ctx context.Context) error
}

// SourceConstructor describes a function that takes a context and a tempnet configuration struct and returns
// either a valid Source reference or the associated error that prevented instantiation.
type SourceConstructor func(ctx context.Context, cfg Config) (Source, error)

var availableDrivers = map[string]SourceConstructor{}

// Register registers an event source driver under the given driverName
func Register(driverName string, constructor SourceConstructor) {
	availableDrivers[driverName] = constructor
}

// Config is the basic configuration struct for a tempnet event source connection
type Config struct {
	ConnectionString string

	// Query overrides the driver's default event query. The query must produce one row per contact event with the
	// columns (time, node_a, node_b) in ascending time order.
	Query string

	// DriverConfig holds driver-specific configuration data that will be passed to the driver constructor. The type
	// and structure depend on the specific driver.
	DriverConfig any
}

// Open creates a new tempnet event source. This function expects the driver name, often imported to ensure that
// registration logic occurs.
func Open(ctx context.Context, driverName string, config Config) (Source, error) {
	if driverConstructor, hasDriver := availableDrivers[driverName]; !hasDriver {
		return nil, ErrDriverMissing
	} else {
		return driverConstructor(ctx, config)
	}
}
