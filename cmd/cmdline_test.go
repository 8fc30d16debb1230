package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeArgs(t *testing.T) {
	cases := []struct {
		in, want []string
	}{
		{[]string{"-4971030886054769832"}, []string{"--", "-4971030886054769832"}},
		{[]string{"1628080142987304160"}, []string{"1628080142987304160"}},
		{[]string{"-v", "-42"}, []string{"-v", "--", "-42"}},
		{[]string{"--count", "3", "-42"}, []string{"--count", "3", "--", "-42"}},
		{[]string{"--timeout", "-1"}, []string{"--timeout", "-1"}},
		{[]string{"--count=3", "-42"}, []string{"--count=3", "--", "-42"}},
		{[]string{"--", "-42"}, []string{"--", "-42"}},
		{[]string{"gen", "--seed", "-5"}, []string{"gen", "--seed", "-5"}},
		{[]string{"-n"}, []string{"-n"}},
		{[]string{"-"}, []string{"-"}},
		{nil, nil},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, normalizeArgs(rootCmd, c.in), "%v", c.in)
	}
}
