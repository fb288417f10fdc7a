//go:build !unix

package sysinfo

import "os"

// unameRaw approximates uname(2) where it does not exist. Only the node
// name is available.
func unameRaw() (Uname, error) {
	name, err := os.Hostname()
	if err != nil {
		return Uname{}, err
	}
	return Uname{Nodename: name}, nil
}
