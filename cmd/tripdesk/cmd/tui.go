package cmd

import (
	"fmt"

	"tripdesk/internal/tui"
	"tripdesk/internal/tui/pages"
	"tripdesk/internal/tui/themes"

	"github.com/spf13/cobra"
)

var tuiTheme string

// tuiCmd launches the interactive terminal UI
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the full-screen terminal UI: a sidebar of resource pages,
sortable paginated tables, and create/edit forms. Requires a prior
'tripdesk login' for anything beyond the public search pages.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		theme := tuiTheme
		if theme == "" {
			theme = cfg.UI.Theme
		}
		if !themes.Global().SetActive(themes.PresetName(theme)) {
			return fmt.Errorf("unknown theme %q (have: %v)", theme, themes.Global().ListPresets())
		}

		client, _, err := newClient()
		if err != nil {
			return err
		}

		return tui.Run(&pages.App{
			Client: client,
			Config: cfg,
			Log:    log.Logger,
		})
	},
}

func init() {
	tuiCmd.Flags().StringVar(&tuiTheme, "theme", "", "color theme (dark, light)")
	rootCmd.AddCommand(tuiCmd)
}
