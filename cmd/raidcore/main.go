// RaidCore is a deterministic turn-based battle simulator: a party of
// heroes against a phase-driven boss, with scenarios defined in Lua.
// Usage: raidcore [--version] [--plain] [--script <file>] [--scenario <dir>]
// [--seed <n>] [--max-rounds <n>] [--config <file>] [--history]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/nathoo/raidcore/archive"
	"github.com/nathoo/raidcore/cli"
	"github.com/nathoo/raidcore/config"
	"github.com/nathoo/raidcore/engine"
	"github.com/nathoo/raidcore/engine/rng"
	"github.com/nathoo/raidcore/loader"
	"github.com/nathoo/raidcore/tui"
	"github.com/nathoo/raidcore/types"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usageLine = "Usage: raidcore [--version] [--plain] [--script <file>] [--scenario <dir>] [--seed <n>] [--max-rounds <n>] [--config <file>] [--history]"

// options is the parsed command line.
type options struct {
	plain       bool
	history     bool
	scriptFile  string
	scenarioDir string
	configPath  string
	seed        int64
	maxRounds   int
}

func main() {
	var opts options

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("raidcore %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			opts.plain = true
		case "--history":
			opts.history = true
		case "--script":
			opts.scriptFile = flagValue(args, &i)
		case "--scenario":
			opts.scenarioDir = flagValue(args, &i)
		case "--config":
			opts.configPath = flagValue(args, &i)
		case "--seed":
			v, err := strconv.ParseInt(flagValue(args, &i), 10, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "--seed wants an integer: %v\n", err)
				os.Exit(1)
			}
			opts.seed = v
		case "--max-rounds":
			v, err := strconv.Atoi(flagValue(args, &i))
			if err != nil {
				fmt.Fprintf(os.Stderr, "--max-rounds wants an integer: %v\n", err)
				os.Exit(1)
			}
			opts.maxRounds = v
		default:
			if opts.scenarioDir == "" && !isFlag(args[i]) {
				opts.scenarioDir = args[i]
				continue
			}
			fmt.Fprintf(os.Stderr, "Unknown flag: %s\n%s\n", args[i], usageLine)
			os.Exit(1)
		}
	}

	if err := run(opts); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

// flagValue returns the value following the flag at args[*i], advancing
// the loop index past it.
func flagValue(args []string, i *int) string {
	if *i+1 >= len(args) {
		fmt.Fprintf(os.Stderr, "%s requires a value\n%s\n", args[*i], usageLine)
		os.Exit(1)
	}
	*i++
	return args[*i]
}

func isFlag(arg string) bool {
	return len(arg) > 0 && arg[0] == '-'
}

func run(opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	// Operational logging goes to stderr; stdout belongs to the battle.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))
	slog.Debug("config loaded", "battle_log", cfg.BattleLog, "archive", cfg.ArchivePath)

	store, err := archive.Open(cfg.ArchivePath)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer store.Close()

	ctx := context.Background()

	if opts.history {
		return listHistory(ctx, store)
	}

	scenarioDir := opts.scenarioDir
	if scenarioDir == "" {
		scenarioDir = cfg.ScenarioDir
	}

	var sc *loader.Scenario
	if scenarioDir != "" {
		sc, err = loader.Load(scenarioDir)
		if err != nil {
			return fmt.Errorf("loading scenario: %w", err)
		}
		slog.Info("scenario loaded", "dir", scenarioDir, "title", sc.Game.Title, "heroes", len(sc.Heroes))
	} else {
		sc = loader.Default()
		slog.Info("using built-in scenario", "title", sc.Game.Title)
	}

	party, err := sc.BuildParty()
	if err != nil {
		return fmt.Errorf("building party: %w", err)
	}
	boss := sc.BuildBoss()

	// Seed precedence: flag, then config, then fresh entropy. Zero always
	// means "derive one", so every battle can be replayed by seed.
	seed := cfg.Seed
	if opts.seed != 0 {
		seed = opts.seed
	}
	if seed == 0 {
		if seed, err = rng.NewSeed(); err != nil {
			return fmt.Errorf("deriving seed: %w", err)
		}
	}

	// Round cap precedence: flag, then scenario, then config. Zero falls
	// through to the engine default.
	maxRounds := cfg.MaxRounds
	if sc.Game.MaxRounds > 0 {
		maxRounds = sc.Game.MaxRounds
	}
	if opts.maxRounds > 0 {
		maxRounds = opts.maxRounds
	}

	bopts := engine.Options{Seed: seed, MaxRounds: maxRounds}
	title := fmt.Sprintf("%s v%s by %s", sc.Game.Title, sc.Game.Version, sc.Game.Author)
	slog.Info("battle starting", "seed", seed, "max_rounds", maxRounds, "party", len(party), "boss", boss.Name)

	var (
		b       *engine.Battle
		outcome types.Outcome
	)
	started := time.Now().UTC()

	// Script mode and piped stdout use the plain CLI; a terminal gets the TUI.
	if opts.scriptFile != "" || opts.plain || !isTerminal() {
		front := cli.New()
		if opts.scriptFile != "" {
			f, err := os.Open(opts.scriptFile)
			if err != nil {
				return fmt.Errorf("opening script: %w", err)
			}
			defer f.Close()
			front.In = f
			front.EchoInput = true
		}
		fmt.Printf("%s\n\n", title)
		bopts.Provider = front
		bopts.Reporter = front
		b = engine.NewBattle(party, boss, bopts)
		outcome = b.Run()
	} else {
		b, outcome, err = tui.Run(party, boss, bopts, title)
		if err != nil {
			return fmt.Errorf("running tui: %w", err)
		}
	}
	finished := time.Now().UTC()

	if err := b.Log.Dump(cfg.BattleLog); err != nil {
		return fmt.Errorf("dumping battle log: %w", err)
	}

	result := types.BattleResult{
		Seed:      seed,
		Rounds:    b.RoundsPlayed(),
		Outcome:   outcome,
		Survivors: b.Survivors(),
		LogPath:   cfg.BattleLog,
	}
	if err := store.Record(ctx, result, started, finished); err != nil {
		return fmt.Errorf("archiving battle: %w", err)
	}

	slog.Info("battle finished",
		"outcome", outcome.String(),
		"rounds", result.Rounds,
		"survivors", result.Survivors,
		"seed", seed,
		"draws", b.RNG.Position(),
		"log", cfg.BattleLog,
	)
	return nil
}

// listHistory prints the most recent archived battles, newest first.
func listHistory(ctx context.Context, store *archive.Store) error {
	entries, err := store.Recent(ctx, 20)
	if err != nil {
		return fmt.Errorf("listing battles: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("No battles archived yet.")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("#%d  %s  seed=%d  rounds=%d  survivors=%d  %s\n",
			e.ID,
			e.FinishedAt.Local().Format("2006-01-02 15:04:05"),
			e.Seed,
			e.Rounds,
			e.Survivors,
			e.Outcome,
		)
	}
	return nil
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
