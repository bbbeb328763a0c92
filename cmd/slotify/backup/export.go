package backup

import (
	"os"
	"path/filepath"
	"time"

	"github.com/slotify/cli/pkg/auth"
	"github.com/slotify/cli/pkg/cli"
	"github.com/slotify/cli/pkg/client"
	"github.com/slotify/cli/pkg/data"
	"github.com/slotify/cli/pkg/logging"
	"github.com/spf13/cobra"
)

func export(cmd *cobra.Command, args []string) {
	cfg := resolveConfig(cmd)

	token, err := auth.LoadToken(cfg.TokenFile)
	if err != nil {
		logging.Log.Fatalf("✗ %s", err)
	}
	logging.Log.Infof("✔ loaded token from `%s`", auth.ExpandHome(cfg.TokenFile))

	ac := client.GetClient(cfg.BaseURL, token, cfg.Timeout)

	logging.Log.Info("→ initiating export")
	body, contentType, err := ac.Export()
	if err != nil {
		logging.Log.Fatalf("✗ export failed: %s", err)
	}

	outputDir := auth.ExpandHome(cfg.OutputDir)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		logging.Log.Fatalf("✗ could not create output directory: %s", err)
	}

	target := filepath.Join(outputDir, data.ExportFilename(time.Now(), contentType))
	if err := writeArchive(target, body); err != nil {
		logging.Log.Fatalf("✗ could not write archive: %s", err)
	}

	logging.Log.Infof("✔ exported data saved to `%s`", target)
}

// writeArchive goes through a temp file and a rename so an interrupted
// run never leaves a truncated archive under the final name.
func writeArchive(target string, body []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(target), ".slotify_export_*")
	if err != nil {
		return err
	}
	cli.RegisterCleanup(tmp.Name())
	defer cli.RegisterCleanup("")

	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), target)
}
