//go:build !windows

package sysinfo

import "hostfetch/probe"

// platformOSDetectors returns OS detectors that run before the generic
// chain. Only Windows has any.
func platformOSDetectors(Sources) []probe.Detector { return nil }

// platformDeviceSources returns device sources that run before the generic
// chain. Only Windows has any.
func platformDeviceSources(Sources) []deviceSource { return nil }
