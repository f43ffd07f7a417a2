package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"ourblog/app/repositories"
	"ourblog/cli"
	"ourblog/config"
	"ourblog/routes"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("ourblog version %s\n", cliVersion)
	case "serve":
		serve()
	case "db":
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cli.HandleDBCommand(os.Args[2:], cfg.DBPath)
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: ourblog <command> [options]

Commands:
  help                           Display this help message.
  version                        Show version information.
  serve                          Run the blog API service.
  db <init|clean|backup|restore> Database maintenance commands.
`
	fmt.Println(helpText)
}

// serve starts the blog API service.
func serve() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "err", err, "path", cfg.DBPath)
		os.Exit(1)
	}
	defer db.Close()

	router := routes.SetupRoutes(db)

	slog.Info("starting blog service", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		slog.Error("server error", "err", err)
		os.Exit(1)
	}
}
