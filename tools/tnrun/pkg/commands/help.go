package commands

import (
	"fmt"
	"sort"
)

func helpCmd() CommandDesc {
	return CommandDesc{
		desc: "List available commands",
		help: "help [command]",
		Fn: func(cc *CommandContext, args []string) error {
			if len(args) > 0 {
				if cmd, hasCmd := cmdRegistry[args[0]]; hasCmd {
					fmt.Fprintf(cc.Output, "%s\n\nusage: %s\n", cmd.desc, cmd.help)

					if cmd.flags != nil {
						cmd.flags.SetOutput(cc.Output)
						cmd.flags.PrintDefaults()
					}

					return nil
				}

				return fmt.Errorf("unknown command %s", args[0])
			}

			names := make([]string, 0, len(cmdRegistry))

			for name := range cmdRegistry {
				names = append(names, name)
			}

			sort.Strings(names)

			for _, name := range names {
				fmt.Fprintf(cc.Output, "%-12s %s\n", name, cmdRegistry[name].desc)
			}

			return nil
		},
	}
}
