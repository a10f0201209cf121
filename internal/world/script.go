package world

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// RunScript builds a world from a Lua script. The script sees the globals
// WIDTH and HEIGHT (in tiles) and may define:
//
//	function pattern(id, i) -- character code i (0..15) of pattern id
//	function tile(col, row) -- pattern id of the tile at col, row
//
// A missing function leaves the identity world's value in place.
func RunScript(path string, widthInTiles, heightInTiles int) (*Store, error) {
	s, err := Identity(widthInTiles, heightInTiles)
	if err != nil {
		return nil, err
	}
	s.Name = path

	L := lua.NewState()
	defer L.Close()
	L.SetGlobal("WIDTH", lua.LNumber(widthInTiles))
	L.SetGlobal("HEIGHT", lua.LNumber(heightInTiles))
	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("run world script: %w", err)
	}
	if name, ok := L.GetGlobal("NAME").(lua.LString); ok {
		s.Name = string(name)
	}

	if fn := L.GetGlobal("pattern"); fn.Type() == lua.LTFunction {
		for id := 0; id < NumPatterns; id++ {
			var p Pattern
			for i := range p {
				v, err := callByte(L, fn, id, i)
				if err != nil {
					return nil, fmt.Errorf("pattern(%d, %d): %w", id, i, err)
				}
				p[i] = v
			}
			s.setPattern(uint8(id), p)
		}
	}

	if fn := L.GetGlobal("tile"); fn.Type() == lua.LTFunction {
		for row := 0; row < heightInTiles; row++ {
			for col := 0; col < widthInTiles; col++ {
				v, err := callByte(L, fn, col, row)
				if err != nil {
					return nil, fmt.Errorf("tile(%d, %d): %w", col, row, err)
				}
				s.set(col, row, v)
			}
		}
	}
	return s, nil
}

func callByte(L *lua.LState, fn lua.LValue, a, b int) (uint8, error) {
	if err := L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, lua.LNumber(a), lua.LNumber(b)); err != nil {
		return 0, err
	}
	ret := L.Get(-1)
	L.Pop(1)
	n, ok := ret.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("returned %s, want number", ret.Type())
	}
	if n < 0 || n > 0xFF {
		return 0, fmt.Errorf("returned %v, want 0..255", n)
	}
	return uint8(n), nil
}
