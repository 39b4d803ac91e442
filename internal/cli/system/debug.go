package system

import (
	"fmt"
	"sort"

	json "github.com/goccy/go-json"

	"github.com/julianstephens/nyfont/internal/backup"
	"github.com/julianstephens/nyfont/internal/cli"
	"github.com/julianstephens/nyfont/internal/logger"
	"github.com/julianstephens/nyfont/internal/storage"
)

type DebugCmd struct {
	Path *DebugPathCmd `cmd:"" help:"Show the storage, log and backup locations."`
	Dump *DebugDumpCmd `cmd:"" help:"Dump the stored settings mapping as JSON."`
}

type DebugPathCmd struct{}

func (cmd *DebugPathCmd) Run(ctx *cli.Context) error {
	out := map[string]string{
		"path":    ctx.Store.GetConfigPath(),
		"backend": string(storage.BackendOf(ctx.Store)),
	}
	if f := logger.File(); f != "" {
		out["log"] = f
	}
	if storage.BackendOf(ctx.Store) == storage.BackendSQLite {
		out["backups"] = backup.NewManager(ctx.Store.GetConfigPath()).Dir()
	}
	return printJSON(out)
}

type DebugDumpCmd struct {
	Migrated bool `help:"Dump the mapping after migration instead of as stored."`
	Keys     bool `help:"Only list the stored keys."`
}

func (cmd *DebugDumpCmd) Run(ctx *cli.Context) error {
	raw, err := ctx.Store.LoadRaw()
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}
	if cmd.Migrated {
		s, err := ctx.RequireSettings()
		if err != nil {
			return err
		}
		raw = s.Raw()
	}

	if cmd.Keys {
		keys := make([]string, 0, len(raw))
		for k := range raw {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return printJSON(keys)
	}
	return printJSON(raw)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
