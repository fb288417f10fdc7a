//go:build windows
// +build windows

// Package sysinfo - Windows-specific detectors
package sysinfo

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sys/windows/registry"

	"hostfetch/probe"
)

const (
	currentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`
	systemInfoKey     = `SYSTEM\CurrentControlSet\Control\SystemInformation`
	biosKey           = `HARDWARE\DESCRIPTION\System\BIOS`
)

// platformOSDetectors reads the Windows product name from the registry.
func platformOSDetectors(Sources) []probe.Detector {
	return []probe.Detector{probe.NamedFunc("registry:ProductName", windowsProductName)}
}

// platformDeviceSources reads manufacturer and model from the registry,
// SystemInformation first and the BIOS key second.
func platformDeviceSources(Sources) []deviceSource {
	return []deviceSource{
		{
			model:  registryDetector("SystemProductName", systemInfoKey, biosKey),
			vendor: registryDetector("SystemManufacturer", systemInfoKey, biosKey),
		},
	}
}

// windowsProductName returns e.g. "Windows 11 Pro 23H2".
//
// Returns:
//   - The product name with DisplayVersion appended when present
//   - An error wrapping probe.ErrSourceUnavailable if the key cannot be read
//
// Builds 22000 and later report "Windows 10" in ProductName; that is
// corrected to "Windows 11".
func windowsProductName(context.Context) (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, currentVersionKey, registry.QUERY_VALUE)
	if err != nil {
		return "", unavailable("registry", err)
	}
	defer func() { _ = k.Close() }()

	productName, _, err := k.GetStringValue("ProductName")
	if err != nil {
		return "", unavailable("registry ProductName", err)
	}

	buildStr, _, _ := k.GetStringValue("CurrentBuild")
	if build, err := strconv.Atoi(buildStr); err == nil && build >= 22000 &&
		strings.Contains(strings.ToLower(productName), "windows 10") {
		productName = strings.Replace(productName, "Windows 10", "Windows 11", 1)
	}

	if displayVersion, _, err := k.GetStringValue("DisplayVersion"); err == nil && displayVersion != "" {
		return fmt.Sprintf("%s %s", productName, displayVersion), nil
	}
	return productName, nil
}

// registryDetector reads value from the first of keys that carries a
// non-sentinel string.
func registryDetector(value string, keys ...string) probe.Detector {
	return probe.NamedFunc("registry:"+value, func(context.Context) (string, error) {
		for _, key := range keys {
			if v := probe.Normalize(getRegistryString(key, value)); v != "" {
				return v, nil
			}
		}
		return "", unavailable("registry "+value, nil)
	})
}

// getRegistryString reads a string value under HKEY_LOCAL_MACHINE, returning
// "" on any failure.
func getRegistryString(path, value string) string {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer func() { _ = k.Close() }()

	s, _, err := k.GetStringValue(value)
	if err != nil {
		return ""
	}
	return s
}
