package probe

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter is a detector that records how often it was invoked.
type counter struct {
	value string
	err   error
	calls int
}

func (c *counter) Detect(context.Context) (string, error) {
	c.calls++
	return c.value, c.err
}

func TestResolveShortCircuits(t *testing.T) {
	for winner := 0; winner < 4; winner++ {
		t.Run(fmt.Sprintf("winner=%d", winner), func(t *testing.T) {
			detectors := make([]*counter, 4)
			chain := make([]Detector, 4)
			for i := range detectors {
				detectors[i] = &counter{err: ErrSourceUnavailable}
				if i == winner {
					detectors[i] = &counter{value: fmt.Sprintf("value-%d", i)}
				}
				chain[i] = detectors[i]
			}

			got, err := New("test", chain...).Resolve(context.Background())
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("value-%d", winner), got)

			for i, d := range detectors {
				if i <= winner {
					assert.Equal(t, 1, d.calls, "detector %d", i)
				} else {
					assert.Zero(t, d.calls, "detector %d must not run", i)
				}
			}
		})
	}
}

func TestResolveSkipsSentinelsPerCandidate(t *testing.T) {
	for _, sentinel := range []string{
		"Not Specified",
		"Default string",
		"To be filled by O.E.M.",
		"to be filled by o.e.m.",
		"System Product Name",
		"",
		"\x00\x00",
		"   \n",
		`\n`,
	} {
		t.Run(fmt.Sprintf("%q", sentinel), func(t *testing.T) {
			first := &counter{value: sentinel}
			second := &counter{value: "ThinkPad X1 Carbon"}

			r, err := New("host", first, second).ResolveResult(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "ThinkPad X1 Carbon", r.Value)
			assert.Equal(t, 1, r.Index)
			assert.Equal(t, 1, second.calls)
		})
	}
}

func TestResolveAllFail(t *testing.T) {
	p := New("os",
		&counter{err: ErrSourceUnavailable},
		&counter{value: "Not Specified"},
		&counter{err: errors.New("permission denied")},
	)

	_, err := p.Resolve(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnresolved)
	assert.Equal(t, "Unknown Device", p.ResolveOr(context.Background(), "Unknown Device"))
}

func TestResolveEmptyChain(t *testing.T) {
	_, err := New("empty").Resolve(context.Background())
	assert.ErrorIs(t, err, ErrUnresolved)
}

func TestResolveReportsSourceName(t *testing.T) {
	p := New("host",
		NamedFunc("dmi", func(context.Context) (string, error) { return "", ErrSourceUnavailable }),
		NamedFunc("device-tree", func(context.Context) (string, error) { return "Pine64 RockPro64\x00", nil }),
	)

	r, err := p.ResolveResult(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Pine64 RockPro64", r.Value)
	assert.Equal(t, "device-tree", r.Source)
}

func TestCustomClean(t *testing.T) {
	p := New("upper", &counter{value: "  keep me  "})
	p.Clean = func(s string) string { return "[" + s + "]" }

	got, err := p.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "[  keep me  ]", got)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  Latitude 7490 \n", "Latitude 7490"},
		{"Raspberry Pi 4\x00", "Raspberry Pi 4"},
		{`Model\nX`, "ModelX"},
		{"Default String", ""},
		{"System Version", ""},
		{"\x00", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Normalize(tc.in), "Normalize(%q)", tc.in)
	}
}
