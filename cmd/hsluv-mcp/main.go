package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/hsluv-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("hsluv-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		}
	}

	// stdout carries the protocol, so logs go to stderr
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("HSLUV_MCP_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("HSLuv MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New()
	srv.SetDebug(debug)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printUsage() {
	fmt.Println("hsluv-tools-mcp - MCP server for HSLuv/HPLuv color conversion")
	fmt.Println()
	fmt.Println("Usage: hsluv-tools-mcp [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  HSLUV_MCP_LOG_LEVEL=debug    Enable debug logging")
	fmt.Println()
	fmt.Println("Color spaces: rgb, xyz, luv, lch, hsluv, hpluv (and #rrggbb hex).")
	fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
}
