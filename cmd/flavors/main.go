// Forgotten Flavors — a terminal browser for historical recipes.
//
// Usage:
//
//	flavors [-recipes path-or-url] [-verbose] [-quiet]
package main

import (
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"forgottenflavors/internal/cart"
	"forgottenflavors/internal/display"
	"forgottenflavors/internal/domain"
	"forgottenflavors/internal/engine"
	"forgottenflavors/internal/logger"
	"forgottenflavors/internal/source"
	"forgottenflavors/internal/variation"
)

// EnvRecipes overrides the default recipe location when the -recipes
// flag is not given.
const EnvRecipes = "FLAVORS_RECIPES"

func main() {
	_ = godotenv.Load()

	recipes := flag.String("recipes", "", "recipe catalog: a JSON file path or an http(s) URL")
	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".flavors-logs/flavors.log", "file to write logs to (use \"stderr\" to log to console)")
	flag.Parse()

	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so they don't bleed into the
	// full-screen UI.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		dir := filepath.Dir(*logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// Redirect Go's default log package to the same output so
	// third-party libs can't scribble on the terminal.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	location := *recipes
	if location == "" {
		location = os.Getenv(EnvRecipes)
	}
	if location == "" {
		location = "recipes.json"
	}

	var src domain.RecipeSource
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		src = source.NewHTTP(location, log)
	} else {
		src = source.NewFile(location, log)
	}

	eng := engine.New(cart.NewStore(log), variation.NewStore(log), log)
	ui := display.New(eng, src, log)

	fmt.Println(display.RenderBanner())

	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
