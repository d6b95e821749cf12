package main

import (
	"fmt"
	"os"
	"path/filepath"

	"traductor/internal/catalog"
	"traductor/internal/mixup"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	contentDir string
	mixupsPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "drill",
		Short:         "Practice Spanish translation lessons in the terminal",
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVar(&opts.contentDir, "content", "", "directory with vocabulary.json and lessons.json (defaults to built-in lessons)")
	root.PersistentFlags().StringVar(&opts.mixupsPath, "mixups", "", "mixup table file (defaults to the user config dir)")
	root.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "log to stderr")

	root.AddCommand(newLessonsCmd(opts))
	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newMixupsCmd(opts))
	return root
}

func (o *rootOptions) catalog() (*catalog.Catalog, error) {
	if o.contentDir == "" {
		return catalog.Default()
	}
	return catalog.LoadDir(o.contentDir)
}

func (o *rootOptions) logger() (*zap.Logger, error) {
	if !o.verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

// store opens the mixup file, falling back to <config dir>/traductor/mixups.json
func (o *rootOptions) store() (*mixup.FileStore, error) {
	path := o.mixupsPath
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate config dir: %w", err)
		}
		path = filepath.Join(dir, "traductor", "mixups.json")
	}
	return mixup.NewFileStore(path), nil
}
