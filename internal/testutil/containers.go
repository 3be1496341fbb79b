// This file starts a disposable database in a container for integration tests
// and for the standalone cmd/testcontainers executable. Settings come from the
// environment (optionally loaded from a .env file), with defaults for local runs.

package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/localnerve/routinesdb/data"
	"github.com/localnerve/routinesdb/internal/config"
	"github.com/localnerve/routinesdb/internal/database"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestContainers holds the running containers and the configuration that reaches them
type TestContainers struct {
	Network     *testcontainers.DockerNetwork
	DBContainer testcontainers.Container
	Config      *config.Config
}

// Terminate stops every container that was started
func (tc *TestContainers) Terminate(t *testing.T) {
	ctx := context.Background()
	if tc.DBContainer != nil {
		if err := tc.DBContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate database: %v", err)
		}
	}
	if tc.Network != nil {
		if err := tc.Network.Remove(ctx); err != nil {
			logMessage(t, "Failed to remove network: %v", err)
		}
	}
}

type containerSettings struct {
	dbType       string
	image        string
	port         string
	database     string
	user         string
	password     string
	rootPassword string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func settingsFor(dbType string) containerSettings {
	s := containerSettings{
		dbType:       dbType,
		database:     getenv("DB_DATABASE", "routines"),
		user:         getenv("DB_USER", "routines"),
		password:     getenv("DB_PASSWORD", "routines-secret"),
		rootPassword: getenv("DB_ROOT_PASSWORD", "root-secret"),
	}
	switch dbType {
	case "postgres":
		s.image = getenv("DB_IMAGE", "postgres:17-alpine")
		s.port = "5432"
	default:
		s.image = getenv("DB_IMAGE", "mariadb:11")
		s.port = "3306"
	}
	return s
}

// CreateDatabaseContainer starts a MariaDB or Postgres container, applies the
// embedded schema and returns a configuration pointing at it.
func CreateDatabaseContainer(t *testing.T, dbType string) (*TestContainers, error) {
	ctx := context.Background()
	testContainers := &TestContainers{}
	settings := settingsFor(dbType)
	debugContainer := os.Getenv("DEBUG_CONTAINER")

	// Create a network
	nw, err := network.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create network: %w", err)
	}
	testContainers.Network = nw

	local, err := imageExists(ctx, settings.image)
	if err != nil {
		logMessage(t, "Could not inspect local images: %v", err)
	} else if local {
		logMessage(t, "Image %s exists, reusing...", settings.image)
	} else {
		logMessage(t, "Image %s not present, pulling...", settings.image)
	}

	tcpDbPort, err := nat.NewPort("tcp", settings.port)
	if err != nil {
		testContainers.Terminate(t)
		return nil, fmt.Errorf("failed to create DB port: %w", err)
	}

	// Pin the host port when debugging so external tools can attach
	hostConfigModifier := func(hostConfig *container.HostConfig) {
		if debugContainer == "true" {
			hostConfig.PortBindings = nat.PortMap{
				tcpDbPort: []nat.PortBinding{
					{HostIP: "127.0.0.1", HostPort: settings.port},
				},
			}
		}
	}

	var waitStrategy wait.Strategy = wait.ForListeningPort(tcpDbPort).WithStartupTimeout(90 * time.Second)
	if dbType == "postgres" {
		waitStrategy = wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(90 * time.Second)
	}

	dbNetworkAlias := "db-" + uuid.NewString()[:8]
	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:              settings.image,
			ExposedPorts:       []string{string(tcpDbPort)},
			Env:                getDBInitEnvMap(settings),
			HostConfigModifier: hostConfigModifier,
			WaitingFor:         waitStrategy,
			Networks:           []string{nw.Name},
			NetworkAliases: map[string][]string{
				nw.Name: {dbNetworkAlias},
			},
		},
		Started: true,
	})
	if err != nil {
		testContainers.Terminate(t)
		return nil, fmt.Errorf("failed to start database: %w", err)
	}
	testContainers.DBContainer = dbContainer

	dbHost, err := dbContainer.Host(ctx)
	if err != nil {
		testContainers.Terminate(t)
		return nil, err
	}
	dbPort, err := dbContainer.MappedPort(ctx, tcpDbPort)
	if err != nil {
		testContainers.Terminate(t)
		return nil, err
	}

	cfg, err := config.LoadFrom(map[string]string{
		"DB_TYPE":     dbType,
		"DB_HOST":     dbHost,
		"DB_PORT":     dbPort.Port(),
		"DB_DATABASE": settings.database,
		"DB_USER":     settings.user,
		"DB_PASSWORD": settings.password,
		"BCRYPT_COST": "4",
	})
	if err != nil {
		testContainers.Terminate(t)
		return nil, err
	}
	testContainers.Config = cfg

	switch dbType {
	case "postgres":
		err = performPostgresDBInit(cfg)
	default:
		err = performMySqlDBInit(settings, dbHost, dbPort)
	}
	if err != nil {
		testContainers.Terminate(t)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	logMessage(t, "DB_HOST=%s DB_PORT=%s DB_DATABASE=%s", dbHost, dbPort.Port(), settings.database)
	logMessage(t, "%s testcontainer started successfully", dbType)
	return testContainers, nil
}

func getDBInitEnvMap(s containerSettings) map[string]string {
	switch s.dbType {
	case "postgres":
		return map[string]string{
			"POSTGRES_PASSWORD": s.password,
			"POSTGRES_USER":     s.user,
			"POSTGRES_DB":       s.database,
		}
	default:
		return map[string]string{
			"MARIADB_ROOT_PASSWORD": s.rootPassword,
		}
	}
}

func (s containerSettings) expand(script string) string {
	return strings.NewReplacer(
		"${DB_DATABASE}", s.database,
		"${DB_USER}", s.user,
		"${DB_PASSWORD}", s.password,
	).Replace(script)
}

func performMySqlDBInit(s containerSettings, dbHost string, dbPort nat.Port) error {
	db, err := sql.Open("mysql", fmt.Sprintf("root:%s@tcp(%s:%s)/", s.rootPassword, dbHost, dbPort.Port()))
	if err != nil {
		return fmt.Errorf("failed to connect to MariaDB for setup: %w", err)
	}
	defer db.Close()

	// Wait for connection to be really ready
	for i := 0; i < 30; i++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		return fmt.Errorf("MariaDB not ready after 30 seconds: %w", err)
	}

	if err := executeSQL(db.Exec, s.expand(data.InitdbMariaDBTables)); err != nil {
		return fmt.Errorf("tables init sql: %w", err)
	}
	if err := executeSQL(db.Exec, s.expand(data.InitdbMariaDBPrivileges)); err != nil {
		return fmt.Errorf("privileges init sql: %w", err)
	}
	return nil
}

func performPostgresDBInit(cfg *config.Config) error {
	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	return executeSQL(func(query string, args ...any) (sql.Result, error) {
		return nil, db.Exec(query, args...).Error
	}, data.InitdbPostgresTables)
}

// executeSQL runs each statement of a script, skipping "--" comments
func executeSQL(exec func(query string, args ...any) (sql.Result, error), script string) error {
	lines := strings.Split(script, "\n")

	var ncls []string
	for _, l := range lines {
		ncls = append(ncls, excludeComment(l))
	}

	for _, q := range strings.Split(strings.Join(ncls, "\n"), ";") {
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}
		if _, err := exec(q); err != nil {
			return fmt.Errorf("%s : when executing > %s", err.Error(), q)
		}
	}
	return nil
}

// excludeComment strips a trailing "--" comment that is not inside quotes
func excludeComment(line string) string {
	var quote rune
	for i, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"' || r == '`':
			quote = r
		case r == '-' && strings.HasPrefix(line[i:], "--"):
			return line[:i]
		}
	}
	return line
}

func imageExists(ctx context.Context, imageName string) (bool, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false, err
	}
	defer cli.Close()

	images, err := cli.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return false, err
	}

	for _, image := range images {
		for _, tag := range image.RepoTags {
			if tag == imageName {
				return true, nil
			}
		}
	}

	return false, nil
}

func logMessage(t *testing.T, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
