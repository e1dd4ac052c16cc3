package commands

import (
	"flag"
	"fmt"

	"github.com/tempnet-io/tempnet"
	"github.com/tempnet-io/tempnet/netio"
)

func fetchCmd() CommandDesc {
	var (
		flags            = flag.NewFlagSet("fetch", flag.ContinueOnError)
		driverName       = flags.String("driver", "pg", "event source driver name")
		connectionString = flags.String("connection", "", "driver connection string")
		eventQuery       = flags.String("query", "", "override the driver's default event query")
	)

	return CommandDesc{
		desc:  "Fetch a contact log from an external event source and write it as an event list",
		help:  "fetch [flags]",
		flags: flags,
		Fn: func(cc *CommandContext, args []string) error {
			if err := flags.Parse(args); err != nil {
				return err
			}

			source, err := tempnet.Open(cc, *driverName, tempnet.Config{
				ConnectionString: *connectionString,
				Query:            *eventQuery,
			})
			if err != nil {
				return fmt.Errorf("opening %s source: %w", *driverName, err)
			}

			defer source.Close(cc)

			log, index, err := source.FetchLog(cc)
			if err != nil {
				return err
			}

			return netio.WriteEventList(cc.Output, log, index)
		},
	}
}
