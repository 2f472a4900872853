package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/colonysim/server/internal/config"
	coresys "github.com/colonysim/server/internal/core/system"
	"github.com/colonysim/server/internal/data"
	"github.com/colonysim/server/internal/persist"
	"github.com/colonysim/server/internal/scripting"
	"github.com/colonysim/server/internal/system"
	"github.com/colonysim/server/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(serverName string, serverID int) {
	fmt.Println()
	fmt.Println("  ┌───────────────────────────────────────────┐")
	fmt.Println("  │            colonysim  v0.1.0              │")
	fmt.Println("  └───────────────────────────────────────────┘")
	fmt.Println()
	fmt.Printf("  server: %s (id: %d)\n\n", serverName, serverID)
}

func printSection(title string) {
	lineLen := 44 - len(title)
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  ── %s %s\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s %s %s\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  ✓ %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  ▶ %s\n", msg)
}

// ── Main server logic ─────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/server.toml"
	if p := os.Getenv("COLONYSIM_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner(cfg.Server.Name, cfg.Server.ID)

	runID := uuid.New()

	// 3. Optional PostgreSQL snapshot store. Empty DSN = run without one.
	var snapRepo *persist.SnapshotRepo
	if cfg.Database.DSN != "" {
		printSection("database")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		db, err := persist.NewDB(ctx, cfg.Database, log)
		if err != nil {
			cancel()
			return fmt.Errorf("database: %w", err)
		}
		defer db.Close()
		printOK("PostgreSQL connected")

		if err := persist.RunMigrations(ctx, db.Pool); err != nil {
			cancel()
			return fmt.Errorf("migrations: %w", err)
		}
		cancel()
		printOK("migrations applied")
		fmt.Println()

		snapRepo = persist.NewSnapshotRepo(db)
	}

	// 4. Load static data
	printSection("data")

	unitTable, err := data.LoadUnitTable("data/yaml/unit_list.yaml")
	if err != nil {
		return fmt.Errorf("load unit table: %w", err)
	}
	printStat("unit templates", unitTable.Count())

	spawnList, err := data.LoadSpawnList("data/yaml/spawn_list.yaml")
	if err != nil {
		return fmt.Errorf("load spawn list: %w", err)
	}

	// 5. Create the unit directory and the mission engine
	dir := world.NewDirectory(cfg.Game.Players)

	luaEngine, err := scripting.NewEngine(cfg.Game.ScriptsDir, dir, log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer luaEngine.Close()
	printOK("mission scripts loaded")

	spawned := spawnUnits(dir, unitTable, spawnList, luaEngine, log)
	printStat("units spawned", spawned)
	fmt.Println()

	luaEngine.InitProc()

	// 6. Register systems
	runner := coresys.NewRunner()
	runner.Register(system.NewMissionSystem(luaEngine, cfg.Game.AIInterval))
	runner.Register(system.NewWanderSystem(dir, unitTable))
	runner.Register(system.NewSnapshotSystem(dir, snapRepo, runID, cfg.Snapshot.Interval, log))

	// 7. Game loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Game.TickRate)
	defer ticker.Stop()

	printSection("ready")
	printReady(fmt.Sprintf("run %s", runID))
	printReady(fmt.Sprintf("game loop started (tick: %s)", cfg.Game.TickRate))
	fmt.Println()

	for {
		select {
		case <-ticker.C:
			runner.Tick(cfg.Game.TickRate)
			dir.AdvanceTick()
		case sig := <-shutdownCh:
			log.Info("shutdown signal received", zap.String("signal", sig.String()))
			log.Info("server stopped",
				zap.Int64("ticks", dir.Tick()),
				zap.Int("units", dir.UnitCount()))
			return nil
		}
	}
}

// spawnUnits places the initial units from the spawn list and notifies the
// mission script of each creation.
func spawnUnits(dir *world.Directory, units *data.UnitTable, spawns []data.SpawnEntry, lua *scripting.Engine, log *zap.Logger) int {
	spawned := 0
	for _, sp := range spawns {
		typ, ok := world.UnitTypeByName(sp.Type)
		if !ok || typ == world.AnyUnit {
			log.Warn("spawn entry with unknown unit type", zap.String("type", sp.Type))
			continue
		}
		tpl := units.Get(sp.Type)
		hp := int32(100)
		if tpl != nil {
			hp = tpl.HP
		}
		count := sp.Count
		if count < 1 {
			count = 1
		}
		for i := 0; i < count; i++ {
			loc := world.Location{X: sp.X, Y: sp.Y}
			if sp.SpreadX > 0 {
				loc.X += rand.Int31n(sp.SpreadX*2+1) - sp.SpreadX
			}
			if sp.SpreadY > 0 {
				loc.Y += rand.Int31n(sp.SpreadY*2+1) - sp.SpreadY
			}
			u := dir.AddUnit(typ, sp.Owner, loc, hp)
			if u.IsZero() {
				log.Warn("spawn entry rejected",
					zap.String("type", sp.Type),
					zap.Int32("owner", sp.Owner))
				break
			}
			lua.OnCreateUnit(u)
			spawned++
		}
	}
	return spawned
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
