// Command mcpproxy boots an external MCP server binary from environment
// configuration. Hosted runtimes start containers with a bare entry point
// and pass settings through the environment; this shim translates HOST,
// PORT, and MCP_TRANSPORT into the server's command-line flags and hands
// over stdio. It performs no validation of its own: anything wrong with
// the values is reported by the server's CLI.
//
// Environment variables:
//
//	HOST           bind address          (default "0.0.0.0")
//	PORT           listen port           (default "8000")
//	MCP_TRANSPORT  transport to serve    (default "streamable-http")
//	MCP_SERVER_BIN server binary to run  (default "alpaca-mcp-server")
package main

import (
	"errors"
	"log"
	"os"
	"os/exec"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	host := getenv("HOST", "0.0.0.0")
	port := getenv("PORT", "8000")

	// Allow overrides to run stdio locally
	transport := getenv("MCP_TRANSPORT", "streamable-http")

	bin := getenv("MCP_SERVER_BIN", "alpaca-mcp-server")

	cmd := exec.Command(bin, buildArgs(transport, host, port)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		log.Fatalf("failed to run %s: %v", bin, err)
	}
}

// buildArgs assembles the fixed argument list expected by the server CLI.
func buildArgs(transport, host, port string) []string {
	return []string{
		"serve",
		"--transport", transport,
		"--host", host,
		"--port", port,
	}
}

// getenv returns the value of key, or fallback when unset or empty.
func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
