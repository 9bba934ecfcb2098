// Command ops is the operations CLI: run CSV imports from the shell, list
// importable set folders, and back up or restore the data directory.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"github.com/jorge-castellon-jr/chess-tcg/internal/card"
	"github.com/jorge-castellon-jr/chess-tcg/internal/config"
	"github.com/jorge-castellon-jr/chess-tcg/internal/importer"
	"github.com/jorge-castellon-jr/chess-tcg/internal/keyword"
	"github.com/jorge-castellon-jr/chess-tcg/internal/ops"
	"github.com/jorge-castellon-jr/chess-tcg/internal/set"
)

func main() {
	configPath := flag.String("config", "chess_tcg_config.yml", "path to YAML config file")
	importSet := flag.String("import-set", "", "import the named set folder from the exports root")
	listSets := flag.Bool("list-sets", false, "print importable set folders")
	backup := flag.String("backup", "", "write a tar.gz backup of the data dir to the given path")
	restore := flag.String("restore", "", "restore the data dir from the given tar.gz archive")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	if err := run(context.Background(), cfg, os.Stdout, *importSet, *listSets, *backup, *restore); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, stdout io.Writer, importSet string, listSets bool, backup, restore string) error {
	switch {
	case listSets:
		folders, failure := importer.ListSetFolders(cfg.Paths.ExportsRoot)
		if failure != nil {
			return fmt.Errorf("%s: %s", failure.Code, failure.Message)
		}
		for _, name := range folders {
			fmt.Fprintln(stdout, name)
		}
		return nil

	case importSet != "":
		return runImport(ctx, cfg, stdout, importSet)

	case backup != "":
		if backup == "auto" {
			ts := time.Now().UTC().Format("20060102T150405Z")
			backup = filepath.Join("backups", "chess-tcg-"+ts+".tar.gz")
		}
		if err := ops.BackupDataDir(cfg.Paths.DataDir, backup); err != nil {
			return fmt.Errorf("backup: %w", err)
		}
		fmt.Fprintln(stdout, backup)
		return nil

	case restore != "":
		if err := ops.RestoreDataDir(restore, cfg.Paths.DataDir); err != nil {
			return fmt.Errorf("restore: %w", err)
		}
		return nil

	default:
		flag.Usage()
		return fmt.Errorf("nothing to do")
	}
}

func runImport(ctx context.Context, cfg *config.Config, stdout io.Writer, setName string) error {
	cards, err := card.NewFileRepo(cfg.Paths.DataDir)
	if err != nil {
		return err
	}
	sets, err := set.NewFileRepo(cfg.Paths.DataDir)
	if err != nil {
		return err
	}
	keywords, err := keyword.NewFileRepo(cfg.Paths.DataDir)
	if err != nil {
		return err
	}

	im := importer.New(cards, sets, keywords, log.New(os.Stderr, "", log.LstdFlags))
	report, failure := im.ImportSet(ctx, setName, cfg.Paths.ExportsRoot, cfg.Paths.LogsRoot)
	if failure != nil {
		return fmt.Errorf("%s: %s", failure.Code, failure.Message)
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
