package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/basecalc"
)

func TestRun(t *testing.T) {
	cases := []struct {
		name   string
		cfg    config
		srcs   []string
		want   string
		failed int
	}{
		{
			name: "single",
			cfg:  config{in: 10, out: baseList{16}},
			srcs: []string{"255"},
			want: "ff\n",
		},
		{
			name: "many-bases",
			cfg:  config{in: 16, out: baseList{10, 2, 16}},
			srcs: []string{"a"},
			want: "10 1010 a\n",
		},
		{
			name: "session",
			cfg:  config{in: 10, out: baseList{10}},
			srcs: []string{"x = 4", "x = x * x", "x"},
			want: "4\n16\n16\n",
		},
		{
			name:   "errors",
			cfg:    config{in: 10, out: baseList{10}},
			srcs:   []string{"1 +", "y", "2"},
			want:   "undefined variable",
			failed: 2,
		},
		{
			name: "echo",
			cfg:  config{in: 10, out: baseList{10}, echo: true},
			srcs: []string{"1 + 2 * 3"},
			want: "1 2 3 * + : 7\n",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var b strings.Builder
			calc := basecalc.NewCalculator(nil, nil)
			failed := run(calc, c.cfg, c.srcs, &b)
			assert.Equal(t, c.failed, failed)
			if c.failed == 0 {
				assert.Equal(t, c.want, b.String())
			} else {
				assert.Contains(t, b.String(), c.want)
				assert.True(t, strings.HasSuffix(b.String(), "\n2\n"))
			}
		})
	}
}

func TestRunEvaluatesOncePerLine(t *testing.T) {
	var b strings.Builder
	calc := basecalc.NewCalculator(nil, nil)
	calc.Vars().Set("n", 0)
	cfg := config{in: 10, out: baseList{10, 16, 2}}
	run(calc, cfg, []string{"n = n + 1", "n = n + 1"}, &b)
	assert.Equal(t, "1 1 1\n2 2 10\n", b.String())
	st := calc.Stats()
	assert.Equal(t, 1, st.Lexes, "repeated text should reuse tokens")
	assert.Equal(t, 2, st.Evals, "every line should be evaluated")
}

func TestReadExprs(t *testing.T) {
	srcs, err := readExprs(strings.NewReader("1 +\n2\n\n  \n3"), false)
	require.NoError(t, err)
	assert.Equal(t, []string{"1 +\n2\n\n  \n3"}, srcs)

	srcs, err = readExprs(strings.NewReader("1 +\n2\n\n  \n3"), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"1 +", "2", "3"}, srcs)
}

func TestBaseList(t *testing.T) {
	var l baseList
	require.NoError(t, l.Set("2, 10,16"))
	assert.Equal(t, baseList{2, 10, 16}, l)
	assert.Equal(t, "2,10,16", l.String())
	assert.Error(t, l.Set("2,x"))
	assert.Error(t, l.Set(""))
	assert.Equal(t, baseList{2, 10, 16}, l, "failed Set should not change the list")
}
