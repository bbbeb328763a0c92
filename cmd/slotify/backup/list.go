package backup

import (
	"fmt"
	"os"
	"sort"

	"github.com/kataras/tablewriter"
	"github.com/lensesio/tableprinter"
	"github.com/slotify/cli/pkg/auth"
	"github.com/slotify/cli/pkg/data"
	"github.com/slotify/cli/pkg/logging"
	"github.com/spf13/cobra"
)

type archiveRow struct {
	Name     string `header:"name"`
	Size     string `header:"size"`
	Modified string `header:"modified (UTC)"`
}

func list(cmd *cobra.Command, args []string) {
	cfg := resolveConfig(cmd)

	dir := auth.ExpandHome(cfg.OutputDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Log.Infof("no exports yet in `%s`", dir)
			return
		}
		logging.Log.Fatalf("✗ %s", err)
	}

	rows := make([]archiveRow, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !data.IsExportFile(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		rows = append(rows, archiveRow{
			Name:     entry.Name(),
			Size:     formatSize(info.Size()),
			Modified: info.ModTime().UTC().Format("2006-01-02 15:04:05"),
		})
	}

	if len(rows) == 0 {
		logging.Log.Infof("no exports yet in `%s`", dir)
		return
	}

	// timestamped names sort chronologically; newest first
	sort.Slice(rows, func(i, j int) bool {
		return rows[j].Name < rows[i].Name
	})

	printer := tableprinter.New(os.Stdout)
	printer.BorderTop, printer.BorderBottom, printer.BorderLeft, printer.BorderRight = true, true, true, true
	printer.CenterSeparator = "│"
	printer.ColumnSeparator = "│"
	printer.RowSeparator = "─"
	printer.HeaderBgColor = tablewriter.BgBlackColor
	printer.HeaderFgColor = tablewriter.FgGreenColor
	printer.Print(rows)
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
