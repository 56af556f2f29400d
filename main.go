package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/trebletui/treble/internal/app"
	"github.com/trebletui/treble/internal/config"
	"github.com/trebletui/treble/internal/socket"
)

func main() {
	logFile, err := os.Create("treble.log")
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	debug := flag.Bool("debug", false, "Enable debug mode (shows key events in status)")
	search := flag.String("search", "", "Apply a filter query in a running treble instance")
	reload := flag.Bool("reload", false, "Reload the library in a running treble instance")
	base := flag.String("base", "", "Base directory to strip from record paths")
	mode := flag.String("mode", "", "Tree layout: tags or path")
	flag.Parse()

	// Remote commands talk to a running instance and exit
	if *search != "" || *reload {
		if err := sendRemote(*search, *reload); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Command line overrides config
	if args := flag.Args(); len(args) > 0 {
		cfg.Library = args[0]
	}
	if *base != "" {
		cfg.BasePath = *base
	}
	if *mode != "" {
		cfg.Mode = *mode
	}

	if cfg.Library == "" {
		fmt.Fprintln(os.Stderr, "Usage: treble [flags] <library.json|playlist.m3u>")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *debug {
		application.SetDebugMode(true)
	}

	if err := application.StartServer(); err != nil {
		// The browser still works without remote control
		log.Printf("Socket server unavailable: %v", err)
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Runtime error: %v\n", err)
		os.Exit(1)
	}
}

// sendRemote sends a search or reload command to a running treble instance
func sendRemote(query string, reload bool) error {
	socketPath, pid, err := socket.FindRunningInstance()
	if err != nil {
		return fmt.Errorf("no running treble instance found: %w", err)
	}

	log.Printf("Found running instance at PID %d: %s", pid, socketPath)

	client, err := socket.NewClient(socketPath)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	var response *socket.Response
	if reload {
		response, err = client.SendReload()
	} else {
		response, err = client.SendSearch(query)
	}
	if err != nil {
		return fmt.Errorf("failed to send command: %w", err)
	}

	if !response.Success {
		return fmt.Errorf("server error: %s", response.Message)
	}

	return nil
}
