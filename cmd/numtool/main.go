// Command numtool is a small front-end over the cryptonum library: it
// exposes the chunked digest algorithms and a Montgomery-based modular
// exponentiation primitive from the command line, the same role
// stream-commp plays for the commP hasher it wraps.
package main

import (
	"fmt"
	"log"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usageAndExit()
	}

	cmd := os.Args[1]
	os.Args = append([]string{os.Args[0]}, os.Args[2:]...)

	switch cmd {
	case "digest":
		runDigest()
	case "modexp":
		runModExp()
	case "-h", "--help", "help":
		usageAndExit()
	default:
		log.Fatalf("unknown subcommand %q", cmd)
	}
}

func usageAndExit() {
	fmt.Fprintln(os.Stderr, `usage: numtool <subcommand> [flags]

subcommands:
  digest   hash stdin with one of the chunked digest algorithms
  modexp   compute base^exponent mod modulus over hex operands`)
	os.Exit(1)
}
