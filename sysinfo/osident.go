package sysinfo

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"hostfetch/probe"
)

// UnknownLinux is reported when no OS release source can be parsed.
const UnknownLinux = "Unknown Linux"

// androidMarker exists on every Android system image.
const androidMarker = "/system/build.prop"

var (
	osReleasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

	androidVersionProps = []string{
		"ro.build.version.release",
		"ro.build.version.release_or_codename",
		"ro.system.build.version.release",
	}

	// lsbKeys maps lsb-release keys onto their os-release equivalents.
	lsbKeys = map[string]string{
		"DISTRIB_DESCRIPTION": "PRETTY_NAME",
		"DISTRIB_ID":          "NAME",
		"DISTRIB_RELEASE":     "VERSION_ID",
	}

	releaseUnescaper = strings.NewReplacer(
		`\n`, " ",
		`\"`, "",
		`\'`, "",
		`\$`, `$`,
		"\\`", "`",
		`\\`, `\`,
	)
)

// OSIdentity resolves the pretty name of the running operating system.
type OSIdentity struct {
	probe *probe.Probe
}

// NewOSIdentity builds the OS chain: platform check first, then os-release,
// legacy distribution files, and /etc/debian_version.
func NewOSIdentity(src Sources) *OSIdentity {
	detectors := platformOSDetectors(src)
	detectors = append(detectors, probe.NamedFunc("android", src.androidRelease))
	for _, path := range osReleasePaths {
		detectors = append(detectors, src.releaseFile(path, ParseOSRelease))
	}
	detectors = append(detectors,
		src.releaseFile("/etc/lsb-release", ParseLSBRelease),
		src.releaseFile("/etc/redhat-release", firstLine),
		src.releaseFile("/etc/gentoo-release", firstLine),
		src.releaseFile("/etc/alpine-release", prefixed("Alpine Linux")),
		src.releaseFile("/etc/debian_version", prefixed("Debian")),
	)
	return &OSIdentity{probe: probe.New("os", detectors...)}
}

// Resolve returns the OS pretty name or UnknownLinux; it never fails.
func (o *OSIdentity) Resolve(ctx context.Context) string {
	return o.probe.ResolveOr(ctx, UnknownLinux)
}

// isAndroid reports whether the platform marker or the build target says
// this is Android.
func (s Sources) isAndroid() bool {
	return s.GOOS == "android" || (s.Exists != nil && s.Exists(androidMarker))
}

// androidRelease reports "Android <version>" on Android and fails elsewhere.
func (s Sources) androidRelease(ctx context.Context) (string, error) {
	if !s.isAndroid() {
		return "", unavailable("android platform", nil)
	}
	version, err := s.prop(ctx, androidVersionProps...)
	if err != nil {
		return "Android", nil
	}
	return "Android " + version, nil
}

// releaseFile returns a detector that reads path and parses it with parse.
// parse returns "" when the file carries no usable name.
func (s Sources) releaseFile(path string, parse func(string) string) probe.Detector {
	return probe.NamedFunc("release:"+path, func(context.Context) (string, error) {
		data, err := s.ReadFile(path)
		if err != nil {
			return "", unavailable(path, err)
		}
		if name := parse(data); name != "" {
			return name, nil
		}
		return "", fmt.Errorf("%s: %w", path, probe.ErrInvalidValue)
	})
}

// ParseOSRelease derives a pretty name from an os-release document:
// PRETTY_NAME, else "NAME VERSION_ID", else NAME, else
// "Unknown OS VERSION_ID". It returns "" when none of those keys exist.
func ParseOSRelease(content string) string {
	return prettyName(ParseKeyValue(content))
}

// ParseLSBRelease is ParseOSRelease for /etc/lsb-release, whose keys use
// the DISTRIB_ prefix.
func ParseLSBRelease(content string) string {
	fields := ParseKeyValue(content)
	mapped := make(map[string]string, len(fields))
	for k, v := range fields {
		if to, ok := lsbKeys[k]; ok {
			mapped[to] = v
		}
	}
	return prettyName(mapped)
}

func prettyName(fields map[string]string) string {
	name, version := fields["NAME"], fields["VERSION_ID"]
	switch {
	case fields["PRETTY_NAME"] != "":
		return fields["PRETTY_NAME"]
	case name != "" && version != "":
		return name + " " + version
	case name != "":
		return name
	case version != "":
		return "Unknown OS " + version
	default:
		return ""
	}
}

// ParseKeyValue parses shell-style KEY=value lines. Blank lines and
// comments are skipped, surrounding quotes are stripped, escape sequences
// are collapsed and the first occurrence of a key wins.
func ParseKeyValue(content string) map[string]string {
	fields := make(map[string]string)

	sc := bufio.NewScanner(strings.NewReader(content))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if _, seen := fields[key]; seen || key == "" {
			continue
		}
		fields[key] = unquote(value)
	}
	return fields
}

func unquote(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		v = v[1 : len(v)-1]
	}
	v = releaseUnescaper.Replace(v)
	return strings.Join(strings.Fields(v), " ")
}

// firstLine returns the first non-blank line, for free-text release files
// such as "Fedora release 38 (Thirty Eight)".
func firstLine(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if v := probe.Normalize(line); v != "" {
			return v
		}
	}
	return ""
}

// prefixed returns a parser for single-field version files.
func prefixed(name string) func(string) string {
	return func(content string) string {
		v := firstLine(content)
		if v == "" {
			return ""
		}
		return name + " " + v
	}
}
