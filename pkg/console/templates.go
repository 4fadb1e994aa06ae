package console

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hakaru-org/mailblast/pkg/config"
	"github.com/hakaru-org/mailblast/pkg/merge"
	"github.com/hakaru-org/mailblast/pkg/root"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available email templates and their variants",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		set, err := merge.Discover(cfg.TemplateDir)
		if err != nil {
			return err
		}

		for _, key := range set.Keys() {
			variants, err := set.Variants(key)
			if err != nil {
				return err
			}
			exts := make([]string, 0, len(variants))
			for _, v := range variants {
				exts = append(exts, "."+v.Ext)
			}
			fmt.Printf("%s (%s)\n", key, strings.Join(exts, ", "))
		}
		return nil
	},
}

func init() {
	root.GetRoot().AddCommand(templatesCmd)
}
