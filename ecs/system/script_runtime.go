package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/tactics/board"
	"github.com/milk9111/tactics/prefabs"
)

// plateDispatchScript invokes the hook a plate script must define.
const plateDispatchScript = `
onConsumed(__engine, __cell_x, __cell_y, __actor)
`

// ScriptRuntime compiles and caches tengo plate hooks. Scripts come
// from the prefabs script FS and define onConsumed(engine, cx, cy,
// actor); the engine exposes a log function.
type ScriptRuntime struct {
	cache map[string]*tengo.Compiled
}

func NewScriptRuntime() *ScriptRuntime {
	return &ScriptRuntime{cache: map[string]*tengo.Compiled{}}
}

// Invalidate drops a cached script so the next run recompiles it.
// Called by the prefab watcher on script file changes.
func (s *ScriptRuntime) Invalidate(path string) {
	if s == nil {
		return
	}
	delete(s.cache, path)
}

// RunPlateConsumed runs the named script's consume hook once.
func (s *ScriptRuntime) RunPlateConsumed(path string, cell board.Cell, actor string) error {
	if s == nil || strings.TrimSpace(path) == "" {
		return fmt.Errorf("script: empty path")
	}

	compiled, err := s.compiled(path)
	if err != nil {
		return err
	}

	engine := &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"log": &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
			parts := make([]string, 0, len(args))
			for _, a := range args {
				parts = append(parts, objectAsString(a))
			}
			log.Printf("script %s: %s", path, strings.Join(parts, " "))
			return tengo.UndefinedValue, nil
		}},
	}}

	if err := compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := compiled.Set("__cell_x", cell.X); err != nil {
		return err
	}
	if err := compiled.Set("__cell_y", cell.Y); err != nil {
		return err
	}
	if err := compiled.Set("__actor", actor); err != nil {
		return err
	}
	return compiled.Run()
}

func (s *ScriptRuntime) compiled(path string) (*tengo.Compiled, error) {
	if c, ok := s.cache[path]; ok && c != nil {
		return c, nil
	}

	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", path, err)
	}

	script := tengo.NewScript(append(src, []byte("\n"+plateDispatchScript)...))
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__cell_x", 0)
	_ = script.Add("__cell_y", 0)
	_ = script.Add("__actor", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", path, err)
	}
	s.cache[path] = compiled
	return compiled, nil
}

func objectAsString(o tengo.Object) string {
	if o == nil {
		return ""
	}
	if s, ok := tengo.ToString(o); ok {
		return s
	}
	return o.String()
}
