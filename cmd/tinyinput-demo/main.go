// Command tinyinput-demo exercises the library the way a small CLI would:
// typed reads, default-value substitution, a caller-side retry loop, and a
// no-echo password read.
package main

import (
	"fmt"
	"os"

	"tinyinput"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	count, err := tinyinput.Read[int]("Enter integer: ")
	if err != nil {
		return err
	}

	ratio := tinyinput.ReadOr("Enter float: ", 0.0)

	name, err := readRequired("Enter name: ")
	if err != nil {
		return err
	}

	secret, err := tinyinput.ReadPassword("Enter secret: ")
	if err != nil {
		return err
	}

	fmt.Printf("count = %d, ratio = %g, name = %s, secret bytes = %d\n",
		count, ratio, name, len(secret))
	return nil
}

// readRequired retries until a non-empty line arrives. Read itself never
// loops on failure, so required-value policy lives with the caller.
func readRequired(prompt string) (string, error) {
	for {
		value, err := tinyinput.Read[string](prompt)
		if err != nil {
			return "", err
		}
		if value != "" {
			return value, nil
		}
		fmt.Println("Value is required.")
	}
}
