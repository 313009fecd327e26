package privacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnonymizeIP(t *testing.T) {
	cases := map[string]string{
		"192.168.1.47":            "192.168.1.0",
		"10.0.0.0":                "10.0.0.0",
		"::ffff:198.51.100.23":    "198.51.100.0",
		"2001:db8:85a3::8a2e:370": "2001:db8:85a3::",
		"":                        "unknown",
		"unknown":                 "unknown",
		"not-an-ip":               "invalid",
	}
	for in, want := range cases {
		assert.Equal(t, want, AnonymizeIP(in), "input %q", in)
	}
}
