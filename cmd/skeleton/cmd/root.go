// Package cmd implements the skeleton CLI commands.
//
// A root command dispatches to subcommands (render, watch) registered from
// their own files.
package cmd

import (
	"fmt"
	"os"

	"github.com/go-drift/skeleton/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var rootCmd = &Command{
	Name:  "skeleton",
	Short: "Render skeleton loaders for view scenes",
	Long: `skeleton renders shimmering placeholder loaders over view trees
described in YAML scene files. It is useful for previewing loader colors,
sweep timing and cutouts without running a host application.

Use "skeleton <command> --help" for more information about a command.`,
	Usage: "skeleton <command> [flags]",
}

// Commands registered with the CLI, in registration order.
var (
	commands = make(map[string]*Command)
	ordered  []*Command
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	ordered = append(ordered, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return execute(os.Args[1:])
}

func execute(args []string) error {
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Global flags come before the command name.
	var filteredArgs []string
	for _, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Printf("skeleton version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			if len(filteredArgs) == 0 {
				errors.SetHandler(&errors.LogHandler{Verbose: true})
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		default:
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

func printHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range ordered {
		fmt.Printf("  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help           Show help for a command")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println("  --verbose            Print error details and stack traces")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  skeleton render feed.yaml -o feed.png            Render the first frame")
	fmt.Println("  skeleton render feed.yaml -o feed.png -t 400ms   Render mid-sweep")
	fmt.Println("  skeleton watch feed.yaml -o feed.png --dark      Re-render on every save")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}
