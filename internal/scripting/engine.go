package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/colonysim/server/internal/world"
)

// Engine wraps a single gopher-lua VM for mission logic execution.
// Single-goroutine access only (game loop). Mission scripts discover units
// through the enumeration API registered in api.go and react through the
// callbacks below (init_proc, ai_proc, on_create_unit, on_destroy_unit).
type Engine struct {
	vm  *lua.LState
	dir *world.Directory
	log *zap.Logger
}

// NewEngine creates a Lua engine, registers the mission API, and loads all
// scripts from the given directory (lib/ helpers first, then missions/).
func NewEngine(scriptsDir string, dir *world.Directory, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, dir: dir, log: log}
	e.registerAPI()

	if err := e.loadDir(filepath.Join(scriptsDir, "lib")); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load lib scripts: %w", err)
	}
	if err := e.loadDir(filepath.Join(scriptsDir, "missions")); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load mission scripts: %w", err)
	}

	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// DoString executes a chunk of Lua directly. Used by tests and the boot
// sequence for inline setup.
func (e *Engine) DoString(src string) error {
	return e.vm.DoString(src)
}

// InitProc calls the mission's init_proc() once at boot, if defined.
func (e *Engine) InitProc() {
	e.call("init_proc")
}

// AIProc calls the mission's ai_proc(), if defined. The game loop fires
// this every few ticks (game.ai_interval).
func (e *Engine) AIProc() {
	e.call("ai_proc")
}

// OnCreateUnit notifies the mission that a unit entered the world.
func (e *Engine) OnCreateUnit(u world.Unit) {
	e.call("on_create_unit", lua.LNumber(u.ID))
}

// OnDestroyUnit notifies the mission that a unit left the world.
func (e *Engine) OnDestroyUnit(u world.Unit) {
	e.call("on_destroy_unit", lua.LNumber(u.ID))
}

// call invokes a global Lua function if it exists. Script errors are logged
// and absorbed; mission bugs must not take the game loop down.
func (e *Engine) call(name string, args ...lua.LValue) {
	fn := e.vm.GetGlobal(name)
	if fn == lua.LNil {
		return
	}
	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, args...); err != nil {
		e.log.Error("lua callback error", zap.String("fn", name), zap.Error(err))
	}
}

func (e *Engine) Close() {
	e.vm.Close()
}
