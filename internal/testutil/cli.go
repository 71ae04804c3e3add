// Package testutil sets up apps and runs commands for tests.
package testutil

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/lanes/internal/app"
	"github.com/thenoetrevino/lanes/internal/cli"
	"github.com/thenoetrevino/lanes/internal/config"
	"github.com/thenoetrevino/lanes/internal/models"
	"github.com/thenoetrevino/lanes/internal/storage"
)

// SetupCLITest boots an app over an in-memory gateway seeded with cards
func SetupCLITest(t *testing.T, cards []models.Card) (*app.App, *storage.Memory) {
	t.Helper()

	gw := storage.NewMemory()
	if cards != nil {
		if err := gw.Save(context.Background(), cards); err != nil {
			t.Fatalf("Failed to seed gateway: %v", err)
		}
	}

	testApp, err := app.New(context.Background(), config.Default(), app.WithGateway(gw))
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	t.Cleanup(func() { _ = testApp.Close() })

	return testApp, gw
}

// ExecuteCLICommand runs cmd against testApp and returns what it wrote to stdout and stderr
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(cli.WithApp(context.Background(), testApp))
	return stdout.String(), stderr.String(), err
}
