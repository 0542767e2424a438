package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/doismellburning/chess/internal/cli"
	"github.com/doismellburning/chess/internal/service"
	"github.com/doismellburning/chess/internal/storage"
	clitransport "github.com/doismellburning/chess/internal/transport/cli"
)

func main() {
	dbPath := flag.String("db", "", "sqlite database for game history (empty disables persistence)")
	flag.Parse()

	var store *storage.Store
	if *dbPath != "" {
		var err error
		store, err = storage.NewStore(*dbPath, false)
		if err != nil {
			fmt.Printf("Failed to open storage: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	svc, err := service.New(store)
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}

	view, err := cli.New(os.Stdout)
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer view.Close()

	handler := clitransport.New(svc, view)

	view.ShowWelcome()
	handler.Run()
}
