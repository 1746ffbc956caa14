// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/framekit/imui/theme"
)

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light|FILE]",
		Short:     "Print a theme as YAML",
		Long:      "Print a preset or a theme file in the YAML form accepted by render --theme.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"dark", "light"},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "dark"
			if len(args) > 0 {
				name = args[0]
			}
			th, err := loadTheme(name)
			if err != nil {
				return err
			}
			data, err := th.Encode()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// loadTheme returns the named preset, or the theme in the file name.
// The empty name is the dark preset.
func loadTheme(name string) (*theme.Theme, error) {
	th := theme.New()
	switch name {
	case "", "dark":
		return th, nil
	case "light":
		th.Light()
		return th, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme: %w", err)
	}
	th, err = theme.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return th, nil
}
