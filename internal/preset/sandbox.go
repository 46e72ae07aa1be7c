package preset

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// safeModules are the libraries a preset may require.
var safeModules = map[string]bool{
	"string": true,
	"table":  true,
	"math":   true,
}

// openSafeLibraries opens only libraries without file, process or module
// loading access.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	lua.OpenPackage(L)
}

// installSandbox removes loaders and replaces require and print.
func installSandbox(L *lua.LState, print func(string)) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	if pkg, ok := L.GetGlobal("package").(*lua.LTable); ok {
		L.SetField(pkg, "path", lua.LString(""))
		L.SetField(pkg, "cpath", lua.LString(""))
	}

	original := L.GetGlobal("require")
	L.SetGlobal("require", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		if !safeModules[name] && name != moduleName {
			L.RaiseError("module %q is not available", name)
			return 0
		}
		L.Push(original)
		L.Push(lua.LString(name))
		L.Call(1, 1)
		return 1
	}))

	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		n := L.GetTop()
		msg := ""
		for i := 1; i <= n; i++ {
			if i > 1 {
				msg += "\t"
			}
			msg += L.ToStringMeta(L.Get(i)).String()
		}
		print(msg)
		return 0
	}))
}

// doWithRecovery runs fn, converting a Go panic into an error.
func doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}
