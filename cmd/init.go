package cmd

import (
	"fmt"

	"github.com/lepinkainen/calliope/internal/config"
)

// InitCmd writes a starter config file with placeholder API keys.
type InitCmd struct {
	Path string `arg:"" optional:"" help:"Where to write the config file" default:"config.yaml"`
}

func (i *InitCmd) Run(_ *config.Config) error {
	if err := config.WriteDefault(i.Path); err != nil {
		return err
	}
	fmt.Printf("Wrote %s - fill in your API keys to enable providers\n", i.Path)
	return nil
}
