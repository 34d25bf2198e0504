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

package main

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

var termRestore unix.Termios

func enterRawTerm() {
	if err := termios.Tcgetattr(os.Stdin.Fd(), &termRestore); err != nil {
		panic(err)
	}

	termstate := termRestore

	termstate.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.INLCR
	termstate.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.IEXTEN

	termstate.Cc[unix.VMIN] = 1
	termstate.Cc[unix.VTIME] = 0

	if err := termios.Tcsetattr(
		os.Stdin.Fd(), termios.TCSANOW, &termstate,
	); err != nil {
		panic(err)
	}
}

func exitRawTerm() {
	if err := termios.Tcsetattr(
		os.Stdin.Fd(), termios.TCSANOW, &termRestore,
	); err != nil {
		panic(err)
	}
}

// termKeyboard reads the raw-mode terminal. Poll uses a zero-timeout
// select(2) so that a status register read never blocks the machine.
type termKeyboard struct {
	fd int
}

func newTermKeyboard() *termKeyboard {
	return &termKeyboard{fd: int(os.Stdin.Fd())}
}

func (kb *termKeyboard) Poll() (byte, bool) {
	var readfds unix.FdSet
	readfds.Set(kb.fd)

	timeout := unix.Timeval{}

	n, err := unix.Select(kb.fd+1, &readfds, nil, nil, &timeout)

	if err != nil || n == 0 {
		return 0, false
	}

	buf := make([]byte, 1)

	if n, err := unix.Read(kb.fd, buf); err != nil || n == 0 {
		return 0, false
	}

	return buf[0], true
}

func (kb *termKeyboard) ReadByte() (byte, error) {
	buf := make([]byte, 1)

	for {
		n, err := unix.Read(kb.fd, buf)

		if err == unix.EINTR {
			continue
		}

		if err != nil {
			return 0, err
		}

		if n > 0 {
			return buf[0], nil
		}
	}
}
