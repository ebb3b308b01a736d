// Package cmd implements the CLI application to settle transaction logs.
package cmd

import (
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Commands returns the subcommands of the application, in registration order.
// A main package calls it to register them all, and Execute() on the
// user-selected one.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&processCmd{},
		&reportCmd{},
		&genCmd{},
		&topicCmd{},
	}
}

// LoadEnv loads default settings from a .env file in the working directory,
// if there is one. Real environment variables win over file entries.
func LoadEnv() {
	// A missing file is the normal case, not an error.
	_ = godotenv.Load()
}

// envInt reads an integer default from the environment, falling back to def
// when the variable is unset or malformed.
func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
