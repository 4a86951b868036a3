package cli

import (
	"testing"

	"github.com/atripati/altetudegear/store"
)

func TestExecuteUnknownCommand(t *testing.T) {
	defer resetCLI()
	catalog = store.New(store.DefaultBase(), store.NewMemoryStorage())

	if _, err := run("no-such-command"); err == nil {
		t.Fatalf("expected error for unknown command")
	}
}
