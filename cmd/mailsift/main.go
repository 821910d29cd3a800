package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mailsift/mailsift/internal/api"
	"github.com/mailsift/mailsift/internal/config"
	"github.com/mailsift/mailsift/internal/db"
	"github.com/mailsift/mailsift/internal/tui"
	"github.com/mailsift/mailsift/internal/version"
)

func main() {
	// Essential command line flags only (GNU-style double dashes)
	configPathFlag := flag.String("config", "", "Path to JSON configuration file (default: ~/.config/mailsift/config.json)")
	serverFlag := flag.String("server", "", "Base URL of the mail classification server (default: http://localhost:5000)")
	setupFlag := flag.Bool("setup", false, "Create a default configuration file")
	versionFlag := flag.Bool("version", false, "Show version information and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n\n", version.GetVersionString())
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  %s                              # Run with default configuration\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --server http://mail:5000    # Point at a different server\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --setup                      # Write a default config file\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  MAILSIFT_CONFIG   Override default config file path\n")
		fmt.Fprintf(os.Stderr, "  MAILSIFT_SERVER   Override the server base URL\n")
	}

	flag.Parse()

	if *versionFlag {
		fmt.Println(version.GetDetailedVersionString())
		return
	}

	if *setupFlag {
		runSetup()
		return
	}

	configPath := getConfigPath(*configPathFlag)

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("Warning: could not load configuration: %v", err)
		cfg = config.DefaultConfig()
	}

	serverURL := getServerURL(*serverFlag, cfg.ServerURL)
	if serverURL == "" {
		log.Fatal("A server URL is required. Provide it via --server, MAILSIFT_SERVER or the config file.")
	}
	cfg.ServerURL = serverURL

	client := api.NewClient(serverURL, cfg.GetTimeout())

	// Optional: open local store for content cache and search history
	ctx := context.Background()
	var store *db.Store
	if cfg.CacheEnabled {
		dbPath := cfg.CachePath
		if dbPath == "" {
			dbPath = filepath.Join(config.DefaultCacheDir(), "mailsift.sqlite3")
		}
		if st, err := db.Open(ctx, expandPath(dbPath)); err == nil {
			store = st
		} else {
			log.Printf("Warning: could not open cache store: %v", err)
		}
	}

	app := tui.NewApp(client, cfg)
	if store != nil {
		app.RegisterDBStore(store)
	}
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

// getConfigPath returns the configuration file path using the following priority:
// 1. CLI flag
// 2. Environment variable MAILSIFT_CONFIG
// 3. Default path ~/.config/mailsift/config.json
func getConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envPath := os.Getenv("MAILSIFT_CONFIG"); envPath != "" {
		return expandPath(envPath)
	}
	return config.DefaultConfigPath()
}

// getServerURL returns the server base URL using the following priority:
// 1. CLI flag
// 2. Environment variable MAILSIFT_SERVER
// 3. Config file setting
func getServerURL(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("MAILSIFT_SERVER"); env != "" {
		return env
	}
	return configValue
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

func runSetup() {
	fmt.Println("📧 mailsift setup")
	fmt.Println("=================")
	fmt.Println()

	configPath := config.DefaultConfigPath()
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("✅ Configuration file already exists: %s\n", configPath)
		return
	}

	fmt.Print("📄 Create default configuration file? [Y/n]: ")
	var response string
	_, _ = fmt.Scanln(&response)
	response = strings.ToLower(response)
	if response != "" && response != "y" && response != "yes" {
		return
	}

	cfg := config.DefaultConfig()
	if err := cfg.SaveConfig(configPath); err != nil {
		fmt.Printf("❌ Failed to create config file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Created configuration file: %s\n", configPath)
	fmt.Println()
	fmt.Println("Edit the file to point server_url at your classification server, then run:")
	fmt.Printf("   %s\n", os.Args[0])
}
