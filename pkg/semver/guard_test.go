package semver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuards(t *testing.T) {
	older := MustParse("1.2.3")
	newer := MustParse("1.2.4")
	otherMajor := MustParse("2.0.0")

	tests := []struct {
		name     string
		run      func(fallback string, fn func() string) string
		expected bool
	}{
		{
			name: "compatible holds",
			run: func(fb string, fn func() string) string {
				return WhenCompatible(older, newer, fb, fn)
			},
			expected: true,
		},
		{
			name: "compatible fails across majors",
			run: func(fb string, fn func() string) string {
				return WhenCompatible(older, otherMajor, fb, fn)
			},
			expected: false,
		},
		{
			name: "older holds",
			run: func(fb string, fn func() string) string {
				return WhenOlder(older, newer, fb, fn)
			},
			expected: true,
		},
		{
			name: "older fails on equal",
			run: func(fb string, fn func() string) string {
				return WhenOlder(older, older, fb, fn)
			},
			expected: false,
		},
		{
			name: "older-or-equal holds on equal",
			run: func(fb string, fn func() string) string {
				return WhenOlderOrEqual(older, older, fb, fn)
			},
			expected: true,
		},
		{
			name: "older-or-equal fails when newer",
			run: func(fb string, fn func() string) string {
				return WhenOlderOrEqual(newer, older, fb, fn)
			},
			expected: false,
		},
		{
			name: "equal holds",
			run: func(fb string, fn func() string) string {
				return WhenEqual(older, older, fb, fn)
			},
			expected: true,
		},
		{
			name: "equal fails",
			run: func(fb string, fn func() string) string {
				return WhenEqual(older, newer, fb, fn)
			},
			expected: false,
		},
		{
			name: "newer holds",
			run: func(fb string, fn func() string) string {
				return WhenNewer(newer, older, fb, fn)
			},
			expected: true,
		},
		{
			name: "newer fails on equal",
			run: func(fb string, fn func() string) string {
				return WhenNewer(older, older, fb, fn)
			},
			expected: false,
		},
		{
			name: "newer-or-equal holds on equal",
			run: func(fb string, fn func() string) string {
				return WhenNewerOrEqual(older, older, fb, fn)
			},
			expected: true,
		},
		{
			name: "newer-or-equal fails when older",
			run: func(fb string, fn func() string) string {
				return WhenNewerOrEqual(older, newer, fb, fn)
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ran := false
			result := tt.run("fallback", func() string {
				ran = true
				return "ran"
			})
			if tt.expected {
				assert.True(t, ran, "continuation should have run")
				assert.Equal(t, "ran", result)
			} else {
				assert.False(t, ran, "continuation must not run when the predicate fails")
				assert.Equal(t, "fallback", result)
			}
		})
	}
}

func TestGuardEqualIgnoresBuild(t *testing.T) {
	a := MustParse("1.2.3+build.1")
	b := MustParse("1.2.3+build.2")

	result := WhenEqual(a, b, 0, func() int { return 1 })
	assert.Equal(t, 1, result)
}
