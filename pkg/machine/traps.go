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
	"github.com/pkg/errors"
)

// trap runs the service routine for vector. Routines execute in-process
// and return to the instruction after the TRAP; the program counter is
// never touched here.
func (mc *Machine) trap(vector uint16) error {
	switch vector {
	case TRAP_GETC:
		key, err := mc.readKey()

		if err != nil {
			return errors.Wrap(err, "GETC")
		}

		mc.State.Registers[0] = uint16(key)
		mc.setFlags(mc.State.Registers[0])

	case TRAP_OUT:
		if err := mc.writeKey(byte(mc.State.Registers[0])); err != nil {
			return errors.Wrap(err, "OUT")
		}

		if err := mc.flush(); err != nil {
			return errors.Wrap(err, "OUT")
		}

	case TRAP_PUTS:
		for addr := mc.State.Registers[0]; ; addr++ {
			word := mc.read(addr)

			if word == 0 {
				break
			}

			if err := mc.writeKey(byte(word)); err != nil {
				return errors.Wrap(err, "PUTS")
			}
		}

		if err := mc.flush(); err != nil {
			return errors.Wrap(err, "PUTS")
		}

	case TRAP_IN:
		if err := mc.writePrompt("Enter a character: "); err != nil {
			return errors.Wrap(err, "IN")
		}

		key, err := mc.readKey()

		if err != nil {
			return errors.Wrap(err, "IN")
		}

		if err := mc.writeKey(key); err != nil {
			return errors.Wrap(err, "IN")
		}

		if err := mc.flush(); err != nil {
			return errors.Wrap(err, "IN")
		}

		mc.State.Registers[0] = uint16(key)
		mc.setFlags(mc.State.Registers[0])

	case TRAP_PUTSP:
		// Two characters per word, low byte first. A zero high byte
		// inside a nonzero word is not emitted.
		for addr := mc.State.Registers[0]; ; addr++ {
			word := mc.read(addr)

			if word == 0 {
				break
			}

			if err := mc.writeKey(byte(word)); err != nil {
				return errors.Wrap(err, "PUTSP")
			}

			if word>>8 != 0 {
				if err := mc.writeKey(byte(word >> 8)); err != nil {
					return errors.Wrap(err, "PUTSP")
				}
			}
		}

		if err := mc.flush(); err != nil {
			return errors.Wrap(err, "PUTSP")
		}

	case TRAP_HALT:
		if err := mc.writePrompt("HALT\n"); err != nil {
			return errors.Wrap(err, "HALT")
		}

		mc.State.Running = false

	default:
		return ErrBadTrap(vector)
	}

	return nil
}

func (mc *Machine) readKey() (byte, error) {
	if mc.Devices == nil || mc.Devices.Keyboard == nil {
		return 0, ErrNoKeyboard
	}

	return mc.Devices.Keyboard.ReadByte()
}

func (mc *Machine) writeKey(key byte) error {
	if mc.Devices == nil || mc.Devices.Display == nil {
		return ErrNoDisplay
	}

	return mc.Devices.Display.WriteByte(key)
}

func (mc *Machine) writePrompt(text string) error {
	if mc.Devices == nil || mc.Devices.Display == nil {
		return ErrNoDisplay
	}

	if _, err := mc.Devices.Display.WriteString(text); err != nil {
		return err
	}

	return mc.Devices.Display.Flush()
}

func (mc *Machine) flush() error {
	if mc.Devices == nil || mc.Devices.Display == nil {
		return ErrNoDisplay
	}

	return mc.Devices.Display.Flush()
}
