package main

import (
	"fmt"
	"io"
	"os"
)

const usage = `usage: fpskit <command> [flags]

commands:
  export       write the constants table as json, yaml, toml or a browser script
  validate     check one or more constants files
  fingerprint  print the hash clients compare against the server's table
  damage       evaluate damage falloff for a shot
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		_, _ = fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "export":
		err = runExport(args[1:], stdout)
	case "validate":
		err = runValidate(args[1:], stdout)
	case "fingerprint":
		err = runFingerprint(args[1:], stdout)
	case "damage":
		err = runDamage(args[1:], stdout)
	case "help", "-h", "--help":
		_, _ = fmt.Fprint(stdout, usage)
		return 0
	default:
		_, _ = fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	if err != nil {
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}
