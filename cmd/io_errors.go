package cmd

import (
	"fmt"

	"github.com/xolan/waterlog/internal/service"
)

// fail prints an error block to stderr and exits with status 1
func fail(msg string, err error, hint string) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", msg)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	}
	if hint != "" {
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: %s\n", hint)
	}
	deps.Exit(1)
}

// openServices builds the service layer, reporting failures the CLI way.
// The caller must Close the result.
func openServices() (*service.Services, bool) {
	services, err := deps.Services(newLogger(deps.Stderr), debugFlag)
	if err != nil {
		fail("Failed to open waterlog data", err,
			"Check that your config file is valid and the data directory is writable")
		return nil, false
	}
	return services, true
}

func closeServices(services *service.Services) {
	if err := services.Close(); err != nil {
		services.Log.Warn().Err(err).Msg("closing storage failed")
	}
}

// failSave reports a write failure for a change that could not be persisted
func failSave(what string, err error) {
	fail(fmt.Sprintf("Failed to save %s", what), err,
		"Check that the data directory is writable, or switch storage in the config file")
}
