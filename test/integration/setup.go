package integration

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/vncsmyrnk/pollbot/internal/adapters/discord"
	handler "github.com/vncsmyrnk/pollbot/internal/adapters/handler/http"
	pgrepo "github.com/vncsmyrnk/pollbot/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/pollbot/internal/core/domain"
	"github.com/vncsmyrnk/pollbot/internal/core/ports"
	"github.com/vncsmyrnk/pollbot/internal/core/services"
)

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	dbName := "testdb"
	user := "user"
	password := "password"

	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func applyMigrations(db *sql.DB) error {
	dirPath := "../../internal/adapters/repository/postgres/migrations"

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}

		fullPath := filepath.Join(dirPath, entry.Name())
		content, err := os.ReadFile(fullPath)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		_, err = db.Exec(string(content))
		if err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

// fakeMessenger stands in for the chat platform's message API: it
// invents message ids the way the platform would.
type fakeMessenger struct {
	mu        sync.Mutex
	published map[string]*domain.Poll
}

func newFakeMessenger() *fakeMessenger {
	return &fakeMessenger{published: make(map[string]*domain.Poll)}
}

func (m *fakeMessenger) PublishPoll(_ context.Context, channelID string, poll *domain.Poll) (string, error) {
	messageID := uuid.NewString()
	m.mu.Lock()
	m.published[messageID] = poll
	m.mu.Unlock()
	return messageID, nil
}

type testApp struct {
	DB        *sql.DB
	Store     ports.PollStore
	Server    *httptest.Server
	Client    *http.Client
	Messenger *fakeMessenger

	privateKey ed25519.PrivateKey
	container  testcontainers.Container
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()

	ctx := context.Background()
	container, connStr, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	require.NoError(t, applyMigrations(db))

	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	store := pgrepo.NewRecordRepository(db)
	messenger := newFakeMessenger()
	pollService := services.NewPollService(store, messenger)
	interactionService := services.NewInteractionService(store)

	mux := handler.NewHandler(
		handler.NewInteractionHandler(pollService, interactionService),
		handler.NewPollHandler(pollService),
		discord.VerifyMiddleware(publicKey),
	)
	server := httptest.NewServer(mux)

	return &testApp{
		DB:         db,
		Store:      store,
		Server:     server,
		Client:     server.Client(),
		Messenger:  messenger,
		privateKey: privateKey,
		container:  container,
	}
}

func (app *testApp) Teardown(t *testing.T) {
	t.Helper()

	app.Server.Close()
	require.NoError(t, app.DB.Close())
	require.NoError(t, app.container.Terminate(context.Background()))
}

// signedInteractionRequest signs body the way the platform signs
// webhook deliveries.
func (app *testApp) signedInteractionRequest(t *testing.T, body []byte) *http.Request {
	t.Helper()

	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	signature := ed25519.Sign(app.privateKey, append([]byte(timestamp), body...))

	req, err := http.NewRequest(http.MethodPost, app.Server.URL+"/interactions", strings.NewReader(string(body)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Signature-Ed25519", fmt.Sprintf("%x", signature))
	req.Header.Set("X-Signature-Timestamp", timestamp)
	return req
}
