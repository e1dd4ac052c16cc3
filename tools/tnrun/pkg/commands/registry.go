// Package commands holds all of the tnrun subcommands along with infrastructure types and helpers
package commands

var cmdRegistry map[string]CommandDesc = map[string]CommandDesc{
	"betweenness": betweennessCmd(),
	"convert":     convertCmd(),
	"distance":    distanceCmd(),
	"fetch":       fetchCmd(),
	"info":        infoCmd(),
	"measures":    measuresCmd(),
}

func init() {
	cmdRegistry["help"] = helpCmd()
}

func Registry() map[string]CommandDesc {
	return cmdRegistry
}
