package sysinfo

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeviceFromDMI(t *testing.T) {
	h := newFakeHost()
	h.files["/sys/class/dmi/id/product_name"] = "XPS 15 9500\n"
	h.files["/sys/class/dmi/id/sys_vendor"] = "Dell Inc.\n"

	assert.Equal(t, "Dell Inc. XPS 15 9500", NewDeviceIdentity(h.sources()).Resolve(context.Background()))
}

func TestDeviceDMIProductVersionFallback(t *testing.T) {
	h := newFakeHost()
	h.files["/sys/class/dmi/id/product_name"] = "System Product Name\n"
	h.files["/sys/class/dmi/id/product_version"] = "ThinkPad T14 Gen 3\n"
	h.files["/sys/class/dmi/id/sys_vendor"] = "LENOVO\n"

	assert.Equal(t, "LENOVO ThinkPad T14 Gen 3", NewDeviceIdentity(h.sources()).Resolve(context.Background()))
}

func TestDeviceModelAlreadyContainsVendor(t *testing.T) {
	h := newFakeHost()
	h.files["/sys/devices/virtual/dmi/id/product_name"] = "HP EliteBook 840 G8"
	h.files["/sys/class/dmi/id/sys_vendor"] = "HP"

	assert.Equal(t, "HP EliteBook 840 G8", NewDeviceIdentity(h.sources()).Resolve(context.Background()))
}

func TestDeviceSentinelFallsThroughToDeviceTree(t *testing.T) {
	h := newFakeHost()
	h.files["/sys/class/dmi/id/product_name"] = "To be filled by O.E.M."
	h.files["/sys/class/dmi/id/product_version"] = "Default string"
	h.files["/proc/device-tree/model"] = "Raspberry Pi 4 Model B Rev 1.4\x00"

	assert.Equal(t, "Raspberry Pi 4 Model B Rev 1.4", NewDeviceIdentity(h.sources()).Resolve(context.Background()))
}

func TestDeviceAndroidMarketingName(t *testing.T) {
	h := newFakeHost()
	h.prop("ro.product.marketname", "")
	h.prop("ro.vendor.product.marketname", "Galaxy S21")
	h.prop("ro.product.manufacturer", "samsung")
	h.files["/sys/class/dmi/id/product_name"] = "should not be read"

	got := NewDeviceIdentity(h.sources()).Resolve(context.Background())
	assert.Equal(t, "samsung Galaxy S21", got)
	assert.Zero(t, h.reads["/sys/class/dmi/id/product_name"])
}

func TestDeviceFromCPUInfo(t *testing.T) {
	// Sources 1 through 5 fail; the Hardware line wins.
	h := newFakeHost()
	h.files["/proc/cpuinfo"] = "processor\t: 0\nBogoMIPS\t: 108.00\nHardware\t: Raspberry Pi 4 Model B\nRevision\t: c03114\n"

	got := NewDeviceIdentity(h.sources()).Resolve(context.Background())
	assert.Equal(t, "Raspberry Pi 4 Model B", got)
	assert.Equal(t, 1, countWord(got, "Raspberry"))
}

func TestDeviceBoardName(t *testing.T) {
	h := newFakeHost()
	h.files["/sys/class/dmi/id/board_name"] = "PRIME B550-PLUS"
	h.files["/sys/class/dmi/id/board_vendor"] = "ASUSTeK COMPUTER INC."

	assert.Equal(t, "ASUSTeK COMPUTER INC. PRIME B550-PLUS", NewDeviceIdentity(h.sources()).Resolve(context.Background()))
}

func TestDeviceVendorOnly(t *testing.T) {
	h := newFakeHost()
	h.files["/sys/class/dmi/id/sys_vendor"] = "QEMU"

	assert.Equal(t, "QEMU", NewDeviceIdentity(h.sources()).Resolve(context.Background()))
}

func TestDeviceUnknown(t *testing.T) {
	h := newFakeHost()
	h.files["/sys/class/dmi/id/product_name"] = "Not Specified"

	assert.Equal(t, UnknownDevice, NewDeviceIdentity(h.sources()).Resolve(context.Background()))
}

func TestSplitVendorModel(t *testing.T) {
	tests := []struct {
		in, vendor, model string
	}{
		{"Raspberry Pi 4 Model B", "Raspberry Pi", "4 Model B"},
		{"Raspberry Pi", "Raspberry Pi", ""},
		{"Pine64 RockPro64 v2.1", "Pine64", "RockPro64 v2.1"},
		{"Raspberrypi 3", "Raspberrypi", "3"},
		{"Solo", "Solo", ""},
	}
	for _, tc := range tests {
		v, m := SplitVendorModel(tc.in)
		assert.Equal(t, tc.vendor, v, tc.in)
		assert.Equal(t, tc.model, m, tc.in)
	}
}

func TestJoinVendorModel(t *testing.T) {
	assert.Equal(t, "Dell Inc. XPS 13", JoinVendorModel("Dell Inc.", "XPS 13"))
	assert.Equal(t, "Samsung Galaxy S21", JoinVendorModel("samsung", "Samsung Galaxy S21"))
	assert.Equal(t, "XPS 13", JoinVendorModel("", "XPS 13"))
	assert.Equal(t, "Dell Inc.", JoinVendorModel("Dell Inc.", ""))
	assert.Equal(t, UnknownDevice, JoinVendorModel("", " "))
}

func TestParseCPUInfoModel(t *testing.T) {
	x86 := "processor\t: 0\nvendor_id\t: GenuineIntel\nmodel name\t: Intel(R) Core(TM) i7-8550U CPU @ 1.80GHz\n"
	assert.Equal(t, "Intel(R) Core(TM) i7-8550U CPU @ 1.80GHz", ParseCPUInfoModel(x86))
	assert.Equal(t, "", ParseCPUInfoModel("processor\t: 0\n"))
	assert.Equal(t, "BCM2835", ParseCPUInfoModel("model name\t: ARMv7 Processor\nHardware\t: BCM2835\n"))
}

func countWord(s, word string) int {
	n := 0
	for _, f := range strings.Fields(s) {
		if f == word {
			n++
		}
	}
	return n
}
