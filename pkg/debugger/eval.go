// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package debugger

import (
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/lassandro/lc3vm/pkg/machine"
)

// Eval evaluates a Starlark expression against the current machine state.
// r0..r7, pc, and cond are bound as ints, and mem(addr) reads a memory
// word. mem bypasses the device registers so that inspecting KBSR from
// the REPL cannot consume a pending keypress.
func Eval(expr string, mc *machine.Machine) (uint16, error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}

	pred := starlark.StringDict{}

	for i, value := range mc.State.Registers {
		pred[fmt.Sprintf("r%d", i)] = starlark.MakeInt(int(value))
	}

	pred["pc"] = starlark.MakeInt(int(mc.State.Program))
	pred["cond"] = starlark.MakeInt(int(mc.State.Condition))

	pred["mem"] = starlark.NewBuiltin("mem", func(
		thread *starlark.Thread,
		fn *starlark.Builtin,
		args starlark.Tuple,
		kwargs []starlark.Tuple,
	) (starlark.Value, error) {
		var addr int

		err := starlark.UnpackPositionalArgs("mem", args, kwargs, 1, &addr)

		if err != nil {
			return nil, err
		}

		return starlark.MakeInt(int(mc.State.Memory[uint16(addr)])), nil
	})

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)

	if err != nil {
		return 0, err
	}

	st_rc, ok := dict["rc"]

	if !ok {
		return 0, ErrExpression(expr)
	}

	st_int, ok := st_rc.(starlark.Int)

	if !ok {
		return 0, ErrExpression(expr)
	}

	st_int64, ok := st_int.Int64()

	if !ok {
		return 0, ErrExpression(expr)
	}

	return uint16(st_int64), nil
}
