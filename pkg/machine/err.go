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

package machine

import (
	"errors"

	"github.com/lassandro/lc3vm/pkg/translate"
)

var f = translate.From

var (
	ErrImageEmpty = errors.New(f("image has no origin word"))
	ErrNoKeyboard = errors.New(f("no keyboard device attached"))
	ErrNoDisplay  = errors.New(f("no display device attached"))
)

type ErrBadTrap uint16

func (e ErrBadTrap) Error() string {
	return f("unknown trap vector %#02x", uint16(e))
}

func (e ErrBadTrap) Is(err error) (ok bool) {
	_, ok = err.(ErrBadTrap)
	return
}
