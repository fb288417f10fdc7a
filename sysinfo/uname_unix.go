//go:build unix

package sysinfo

import "golang.org/x/sys/unix"

// unameRaw calls uname(2). Field buffers are returned whole, NUL padding
// included; callers cut at the first NUL.
func unameRaw() (Uname, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return Uname{}, err
	}
	return Uname{
		Nodename: string(u.Nodename[:]),
		Release:  string(u.Release[:]),
	}, nil
}
