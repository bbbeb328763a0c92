package backup

import (
	"time"

	"github.com/slotify/cli/pkg/config"
	"github.com/slotify/cli/pkg/logging"
	"github.com/spf13/cobra"
)

func GetCommands() []*cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export data",
		Long:  `Download a full data export from Slotify and save it as a timestamped local archive`,
		Run: func(cmd *cobra.Command, args []string) {
			export(cmd, args)
		}}

	exportCmd.Flags().StringP("base-url", "b", "", "Base URL of the Slotify API")
	exportCmd.Flags().StringP("token-file", "t", "", "Path to the API token file")
	exportCmd.Flags().StringP("output-dir", "o", "", "Directory to save the exported archive into")
	exportCmd.Flags().String("timeout", "", "HTTP timeout as a Go duration, e.g. 2m")
	exportCmd.Flags().String("config", "", "Path to the config file")

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import data",
		Long:  `Upload a previously exported archive back to Slotify`,
		Run: func(cmd *cobra.Command, args []string) {
			importArchive(cmd, args)
		}}

	importCmd.Flags().StringP("base-url", "b", "", "Base URL of the Slotify API")
	importCmd.Flags().StringP("token-file", "t", "", "Path to the API token file")
	importCmd.Flags().StringP("json-file", "f", "", "Path to the archive to upload")
	importCmd.Flags().String("timeout", "", "HTTP timeout as a Go duration, e.g. 2m")
	importCmd.Flags().String("config", "", "Path to the config file")
	_ = importCmd.MarkFlagRequired("json-file")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List local exports",
		Long:  `List archives previously saved by the export command`,
		Run: func(cmd *cobra.Command, args []string) {
			list(cmd, args)
		}}

	listCmd.Flags().StringP("output-dir", "o", "", "Directory holding exported archives")
	listCmd.Flags().String("config", "", "Path to the config file")

	return []*cobra.Command{exportCmd, importCmd, listCmd}
}

// resolveConfig overlays flag values onto the env/file/default config.
// Not every command defines every flag, hence the lookups.
func resolveConfig(cmd *cobra.Command) *config.Config {
	cfg, err := config.Load(flagString(cmd, "config"))
	if err != nil {
		logging.Log.Fatal(err)
	}

	if v := flagString(cmd, "base-url"); v != "" {
		cfg.BaseURL = v
	}
	if v := flagString(cmd, "token-file"); v != "" {
		cfg.TokenFile = v
	}
	if v := flagString(cmd, "output-dir"); v != "" {
		cfg.OutputDir = v
	}
	if v := flagString(cmd, "timeout"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			logging.Log.Fatalf("✗ invalid timeout `%s`", v)
		}
		cfg.Timeout = d
	}

	return cfg
}

func flagString(cmd *cobra.Command, name string) string {
	if cmd.Flags().Lookup(name) == nil {
		return ""
	}
	v, _ := cmd.Flags().GetString(name)
	return v
}
