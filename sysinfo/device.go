package sysinfo

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"hostfetch/probe"
)

// UnknownDevice is reported when no device source yields a usable name.
const UnknownDevice = "Unknown Device"

var (
	dmiDirs = []string{
		"/sys/class/dmi/id/",
		"/sys/devices/virtual/dmi/id/",
	}
	deviceTreeModelPaths = []string{
		"/proc/device-tree/model",
		"/sys/firmware/devicetree/base/model",
	}
	marketNameProps = []string{
		"ro.product.marketname",
		"ro.vendor.product.marketname",
		"ro.product.vendor.marketname",
		"ro.config.marketing_name",
	}
	modelProps = []string{
		"ro.product.model",
		"ro.product.odm.model",
		"ro.product.vendor.model",
		"ro.product.system.model",
	}
	manufacturerProps = []string{
		"ro.product.manufacturer",
		"ro.product.brand",
	}
)

// deviceSource is one entry of the device model chain. Combined sources
// report "<vendor> <model>" in a single string; the others pair with a
// separate vendor detector.
type deviceSource struct {
	model    probe.Detector
	vendor   probe.Detector
	combined bool
}

// DeviceIdentity resolves a human-readable device name such as
// "Dell Inc. XPS 15 9500" or "Raspberry Pi 4 Model B Rev 1.4".
type DeviceIdentity struct {
	sources []deviceSource
}

// NewDeviceIdentity builds the device chain in priority order:
// platform marketing name, DMI product, device-tree model, platform model,
// DMI board, and finally /proc/cpuinfo.
func NewDeviceIdentity(src Sources) *DeviceIdentity {
	androidVendor := src.props("prop:manufacturer", manufacturerProps...)

	sources := platformDeviceSources(src)
	sources = append(sources,
		deviceSource{
			model:  src.props("prop:marketname", marketNameProps...),
			vendor: androidVendor,
		},
		deviceSource{
			model:  probe.NamedFunc("dmi:product", src.dmiProduct),
			vendor: src.dmiField("sys_vendor"),
		},
		deviceSource{
			model:    src.deviceTreeModel(),
			combined: true,
		},
		deviceSource{
			model:  src.props("prop:model", modelProps...),
			vendor: androidVendor,
		},
		deviceSource{
			model:  src.dmiField("board_name"),
			vendor: src.dmiField("board_vendor"),
		},
		deviceSource{
			model:    probe.NamedFunc("cpuinfo", src.cpuInfoModel),
			combined: true,
		},
	)
	return &DeviceIdentity{sources: sources}
}

// Resolve returns the device name, never an empty string.
func (d *DeviceIdentity) Resolve(ctx context.Context) string {
	models := make([]probe.Detector, len(d.sources))
	for i, s := range d.sources {
		models[i] = s.model
	}

	r, err := probe.New("host", models...).ResolveResult(ctx)
	if err != nil {
		// No model anywhere; a vendor on its own is still better than nothing.
		var vendors []probe.Detector
		for _, s := range d.sources {
			if s.vendor != nil {
				vendors = append(vendors, s.vendor)
			}
		}
		vendor, _ := probe.New("host-vendor", vendors...).Resolve(ctx)
		return JoinVendorModel(vendor, "")
	}

	winner := d.sources[r.Index]
	if winner.combined {
		vendor, model := SplitVendorModel(r.Value)
		return JoinVendorModel(vendor, model)
	}

	var vendor string
	if winner.vendor != nil {
		vendor, _ = probe.New("host-vendor", winner.vendor).Resolve(ctx)
	}
	return JoinVendorModel(vendor, r.Value)
}

// SplitVendorModel splits a combined "<vendor> <model>" string on its first
// space. The "Raspberry Pi" brand is kept whole since device-tree and
// cpuinfo embed it as a two-word prefix. Multi-word vendors other than that
// are split incorrectly; the rule is deliberately simple.
func SplitVendorModel(s string) (vendor, model string) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "Raspberry Pi"); ok && (rest == "" || rest[0] == ' ') {
		return "Raspberry Pi", strings.TrimSpace(rest)
	}
	vendor, model, _ = strings.Cut(s, " ")
	return vendor, strings.TrimSpace(model)
}

// JoinVendorModel combines the two halves of a device name. A model that
// already starts with its vendor is used alone; a missing half is dropped;
// when both are missing UnknownDevice is returned.
func JoinVendorModel(vendor, model string) string {
	vendor = strings.TrimSpace(vendor)
	model = strings.TrimSpace(model)

	switch {
	case vendor != "" && model != "":
		if len(model) >= len(vendor) && strings.EqualFold(model[:len(vendor)], vendor) {
			return model
		}
		return vendor + " " + model
	case model != "":
		return model
	case vendor != "":
		return vendor
	default:
		return UnknownDevice
	}
}

// dmiField returns a detector for one DMI identity file.
func (s Sources) dmiField(field string) probe.Detector {
	return probe.NamedFunc("dmi:"+field, func(context.Context) (string, error) {
		return s.firstFile(dmiPaths(field)...)
	})
}

// dmiProduct reads product_name, falling back to product_version when the
// name is blank or a sentinel.
func (s Sources) dmiProduct(context.Context) (string, error) {
	if v, err := s.firstFile(dmiPaths("product_name")...); err == nil {
		return v, nil
	}
	return s.firstFile(dmiPaths("product_version")...)
}

func (s Sources) deviceTreeModel() probe.Detector {
	return probe.NamedFunc("device-tree", func(context.Context) (string, error) {
		return s.firstFile(deviceTreeModelPaths...)
	})
}

// cpuInfoModel extracts the board name from /proc/cpuinfo.
func (s Sources) cpuInfoModel(context.Context) (string, error) {
	data, err := s.ReadFile("/proc/cpuinfo")
	if err != nil {
		return "", unavailable("/proc/cpuinfo", err)
	}
	if v := ParseCPUInfoModel(data); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("/proc/cpuinfo: %w", probe.ErrInvalidValue)
}

// ParseCPUInfoModel returns the value of the "Hardware" line of a cpuinfo
// document, or of the first "model name" line when there is no usable
// Hardware line.
func ParseCPUInfoModel(content string) string {
	var hardware, modelName string

	sc := bufio.NewScanner(strings.NewReader(content))
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = probe.Normalize(value)
		switch {
		case key == "Hardware" && hardware == "":
			hardware = value
		case key == "model name" && modelName == "":
			modelName = value
		}
	}

	if hardware != "" {
		return hardware
	}
	return modelName
}

func dmiPaths(field string) []string {
	paths := make([]string, len(dmiDirs))
	for i, dir := range dmiDirs {
		paths[i] = dir + field
	}
	return paths
}
