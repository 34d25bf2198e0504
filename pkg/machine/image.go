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
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// LoadImage resets the machine and loads an LC-3 object image: a
// big-endian origin word followed by big-endian program words stored from
// the origin upward. The stream is consumed fully before any state is
// touched, so a read failure leaves the machine unchanged. A trailing odd
// byte is ignored. Loading stops at the top of memory rather than
// wrapping.
func (mc *Machine) LoadImage(reader io.Reader) error {
	data, err := io.ReadAll(reader)

	if err != nil {
		return errors.Wrap(err, "LoadImage")
	}

	if len(data) < 2 {
		return errors.Wrap(ErrImageEmpty, "LoadImage")
	}

	mc.State.Reset()

	origin := binary.BigEndian.Uint16(data)
	addr := origin

	for i := 2; i+1 < len(data); i += 2 {
		mc.State.Memory[addr] = binary.BigEndian.Uint16(data[i:])

		if addr == 0xFFFF {
			break
		}

		addr++
	}

	return nil
}
