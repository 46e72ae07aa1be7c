package preset

import (
	"strconv"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/kittyconf/internal/catalog"
	"github.com/dshills/kittyconf/internal/keymap"
)

// moduleName is the global and require name of the preset API.
const moduleName = "kitty"

// registerAPI installs the kitty module:
//
//	kitty.get(key)                 current value
//	kitty.default(key)             default value
//	kitty.type(key)                declared type name
//	kitty.set(key, value)          value may be a string, number or boolean
//	kitty.reset(key)               back to the default
//	kitty.reset_all()
//	kitty.changed()                table of changed key/value pairs
//	kitty.map(keys, action, args)  returns the mapping id
//	kitty.unmap(id)
//	kitty.mappings()               array of {id, keys, action, args}
func (r *Runner) registerAPI(L *lua.LState) {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"get":       r.luaGet,
		"default":   r.luaDefault,
		"type":      r.luaType,
		"set":       r.luaSet,
		"reset":     r.luaReset,
		"reset_all": r.luaResetAll,
		"changed":   r.luaChanged,
		"map":       r.luaMap,
		"unmap":     r.luaUnmap,
		"mappings":  r.luaMappings,
	})
	L.SetGlobal(moduleName, mod)
	L.PreloadModule(moduleName, func(L *lua.LState) int {
		L.Push(mod)
		return 1
	})
}

func (r *Runner) setting(L *lua.LState) *catalog.Setting {
	key := L.CheckString(1)
	s := r.session.Catalog().Get(key)
	if s == nil {
		L.ArgError(1, "unknown setting "+strconv.Quote(key))
	}
	return s
}

func (r *Runner) luaGet(L *lua.LState) int {
	s := r.setting(L)
	L.Push(lua.LString(r.session.Store().Get(s.Key)))
	return 1
}

func (r *Runner) luaDefault(L *lua.LState) int {
	s := r.setting(L)
	L.Push(lua.LString(s.Default))
	return 1
}

func (r *Runner) luaType(L *lua.LState) int {
	s := r.setting(L)
	L.Push(lua.LString(s.Type.String()))
	return 1
}

func (r *Runner) luaSet(L *lua.LState) int {
	s := r.setting(L)
	value := toValue(L, s, L.CheckAny(2))

	if err := s.Check(value); err != nil {
		r.logger.Warn("preset value outside constraints", "key", s.Key, "value", value, "err", err)
	}
	r.set(L, s.Key, value)
	return 0
}

func (r *Runner) luaReset(L *lua.LState) int {
	s := r.setting(L)
	r.set(L, s.Key, s.Default)
	return 0
}

func (r *Runner) set(L *lua.LState, key, value string) {
	if err := r.session.Store().Set(L.Context(), key, value, sourcePreset); err != nil {
		L.RaiseError("set %s: %s", key, err.Error())
		return
	}
	r.result.Set++
}

func (r *Runner) luaResetAll(L *lua.LState) int {
	if err := r.session.ResetAll(L.Context()); err != nil {
		L.RaiseError("reset_all: %s", err.Error())
	}
	return 0
}

func (r *Runner) luaChanged(L *lua.LState) int {
	t := L.NewTable()
	for _, e := range r.session.Store().ChangedEntries() {
		t.RawSetString(e.Key, lua.LString(e.Value))
	}
	L.Push(t)
	return 1
}

func (r *Runner) luaMap(L *lua.LState) int {
	m := keymap.Mapping{
		Keys:   L.CheckString(1),
		Action: L.CheckString(2),
		Args:   L.OptString(3, ""),
	}
	id, err := r.session.AddMapping(L.Context(), m)
	if err != nil {
		L.RaiseError("map: %s", err.Error())
		return 0
	}
	r.result.Mapped++
	L.Push(lua.LString(id))
	return 1
}

func (r *Runner) luaUnmap(L *lua.LState) int {
	id := L.CheckString(1)
	if err := r.session.RemoveMapping(L.Context(), id); err != nil {
		L.RaiseError("unmap: %s", err.Error())
	}
	return 0
}

func (r *Runner) luaMappings(L *lua.LState) int {
	t := L.NewTable()
	for _, m := range r.session.Mappings() {
		row := L.NewTable()
		row.RawSetString("id", lua.LString(m.ID))
		row.RawSetString("keys", lua.LString(m.Keys))
		row.RawSetString("action", lua.LString(m.Action))
		row.RawSetString("args", lua.LString(m.Args))
		t.Append(row)
	}
	L.Push(t)
	return 1
}

// toValue converts a Lua value to the textual form for s.
func toValue(L *lua.LState, s *catalog.Setting, v lua.LValue) string {
	switch lv := v.(type) {
	case lua.LBool:
		return catalog.FormatBool(bool(lv))
	case lua.LNumber:
		f := float64(lv)
		if s.Type == catalog.TypeInt && f == float64(int64(f)) {
			return strconv.FormatInt(int64(f), 10)
		}
		if s.Type == catalog.TypeFloat {
			return catalog.FormatFloat(f)
		}
		return lv.String()
	case lua.LString:
		return catalog.Normalize(s, string(lv))
	default:
		L.ArgError(2, "expected string, number or boolean, got "+v.Type().String())
		return ""
	}
}
