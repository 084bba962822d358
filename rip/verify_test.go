package rip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorsapucaia/molic/nodeset"
	"github.com/victorsapucaia/molic/rip"
)

func TestVerify_Violations(t *testing.T) {
	g := chordedSquare(t)
	abc := nodeset.New("A", "B", "C")
	acd := nodeset.New("A", "C", "D")
	ac := nodeset.New("A", "C")

	cases := []struct {
		name string
		res  *rip.Result
		want error
	}{
		{
			name: "coverage",
			res: &rip.Result{
				Cliques:    []nodeset.Set{abc},
				Separators: []rip.Separator{rip.NoSeparator()},
			},
			want: rip.ErrCoverage,
		},
		{
			name: "antichain",
			res: &rip.Result{
				Cliques:    []nodeset.Set{abc, acd, ac},
				Separators: rip.Separators([]nodeset.Set{abc, acd, ac}),
			},
			want: rip.ErrNotAntichain,
		},
		{
			name: "sentinel on first",
			res: &rip.Result{
				Cliques:    []nodeset.Set{abc, acd},
				Separators: []rip.Separator{rip.SeparatorOf(nodeset.New()), rip.SeparatorOf(ac)},
			},
			want: rip.ErrSentinel,
		},
		{
			name: "missing separator",
			res: &rip.Result{
				Cliques:    []nodeset.Set{abc, acd},
				Separators: []rip.Separator{rip.NoSeparator(), rip.NoSeparator()},
			},
			want: rip.ErrSentinel,
		},
		{
			name: "misaligned",
			res: &rip.Result{
				Cliques:    []nodeset.Set{abc, acd},
				Separators: []rip.Separator{rip.NoSeparator()},
			},
			want: rip.ErrSentinel,
		},
		{
			name: "containment",
			res: &rip.Result{
				Cliques:    []nodeset.Set{abc, acd},
				Separators: []rip.Separator{rip.NoSeparator(), rip.SeparatorOf(nodeset.New("D"))},
			},
			want: rip.ErrSeparatorContainment,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, rip.Verify(g, tc.res), tc.want)
		})
	}
}

func TestVerify_Nil(t *testing.T) {
	require.ErrorIs(t, rip.Verify(nil, nil), rip.ErrSentinel)
}
