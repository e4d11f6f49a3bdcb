package testutils

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"
)

// TestMain guarantees the shared Postgres container is removed even
// when `go test ./...` is interrupted with Ctrl+C.
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Interrupted, cleaning up Docker containers...")
		CleanupSharedContainer()
		os.Exit(1)
	}()

	log.Println("🧪 Starting test suite with Docker cleanup enabled...")
	code := m.Run()

	log.Println("✅ Tests completed, cleaning up Docker containers...")
	CleanupSharedContainer()

	os.Exit(code)
}
