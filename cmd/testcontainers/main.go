package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/localnerve/routinesdb/internal/testutil"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	var dbType string
	flag.StringVar(&dbType, "t", "mariadb", "database type, mariadb or postgres")
	flag.Parse()

	usage := `
Run a routinesdb database testcontainer with the environment variables from the .env file.

Usage:

testcontainers [-h] [-f ENV_FILE_PATH] [-t DB_TYPE]

ENV_FILE_PATH: path to the .env file
DB_TYPE: mariadb (default) or postgres

example
  testcontainers -f /path/to/something/.env -t postgres
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if dbType != "mariadb" && dbType != "postgres" {
		log.Fatalf("Unsupported database type %q\n", dbType)
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	} else {
		log.Printf("No environment file specified, using current environment variables\n")
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	started := make(chan *testutil.TestContainers, 1)
	go func() {
		testContainers, err := testutil.CreateDatabaseContainer(nil, dbType)
		if err != nil {
			log.Fatalf("Failed to create test container: %v\n", err)
		}
		started <- testContainers
	}()

	var testContainers *testutil.TestContainers
	select {
	case testContainers = <-started:
		log.Printf("Container ready, press Ctrl+C to stop\n")
		sig := <-sigs
		log.Printf("\nReceived signal: %v, terminating test container...\n", sig)
	case sig := <-sigs:
		log.Printf("\nReceived signal: %v before the container was ready\n", sig)
		testContainers = <-started
	}

	testContainers.Terminate(nil)
}
