package backup

import (
	"os"

	"github.com/slotify/cli/pkg/auth"
	"github.com/slotify/cli/pkg/client"
	"github.com/slotify/cli/pkg/logging"
	"github.com/spf13/cobra"
)

func importArchive(cmd *cobra.Command, args []string) {
	cfg := resolveConfig(cmd)

	source := auth.ExpandHome(flagString(cmd, "json-file"))
	info, err := os.Stat(source)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Log.Fatalf("✗ file not found: %s", source)
		}
		logging.Log.Fatalf("✗ %s", err)
	}
	if info.IsDir() {
		logging.Log.Fatalf("✗ not a regular file: %s", source)
	}

	token, err := auth.LoadToken(cfg.TokenFile)
	if err != nil {
		logging.Log.Fatalf("✗ %s", err)
	}
	logging.Log.Infof("✔ loaded token from `%s`", auth.ExpandHome(cfg.TokenFile))

	ac := client.GetClient(cfg.BaseURL, token, cfg.Timeout)

	logging.Log.Infof("→ initiating import with `%s`", source)
	result, err := ac.Import(source)
	if err != nil {
		logging.Log.Fatalf("✗ import failed: %s", err)
	}

	if result.Message != "" {
		logging.Log.Infof("✔ import successful: %s", result.Message)
	} else {
		logging.Log.Info("✔ import successful")
	}
}
