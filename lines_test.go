package pdfreflow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func frag(text string, x, y, w, h float64) TextFragment {
	return TextFragment{
		PageNumber: 1,
		Text:       text,
		X:          x,
		Y:          y,
		Width:      w,
		Height:     h,
		PageWidth:  600,
		PageHeight: 800,
	}
}

func TestBuildLines_ClustersByVerticalProximity(t *testing.T) {
	fragments := []TextFragment{
		frag("world", 60, 101, 40, 12),
		frag("hello", 10, 100, 40, 12),
		frag("below", 10, 140, 40, 12),
	}

	lines := buildLines(fragments, DefaultConfig())
	require.Len(t, lines, 2)

	// Fragments within the tolerance share a line, ordered by x.
	require.Equal(t, "hello world", lines[0].Text)
	require.Equal(t, "below", lines[1].Text)
}

func TestBuildLines_Geometry(t *testing.T) {
	fragments := []TextFragment{
		frag("b", 100, 200, 30, 14),
		frag("a", 20, 200, 40, 10),
	}

	lines := buildLines(fragments, DefaultConfig())
	require.Len(t, lines, 1)

	line := lines[0]
	require.Equal(t, 20.0, line.XMin)
	require.Equal(t, 130.0, line.XMax) // rightmost fragment's x + width
	require.Equal(t, 12.0, line.Height)
	require.Equal(t, 200.0, line.Y)
}

func TestBuildLines_DiscardsBlankLines(t *testing.T) {
	fragments := []TextFragment{
		frag("   ", 10, 100, 20, 12),
		frag("text", 10, 200, 20, 12),
	}

	lines := buildLines(fragments, DefaultConfig())
	require.Len(t, lines, 1)
	require.Equal(t, "text", lines[0].Text)
}

func TestBuildLines_DefaultsWithoutHeights(t *testing.T) {
	fragments := []TextFragment{
		frag("a", 10, 100, 20, 0),
		frag("b", 40, 104, 20, 0),
	}

	// Median height falls back to 10, so the tolerance is 6 and both
	// fragments land on one line.
	lines := buildLines(fragments, DefaultConfig())
	require.Len(t, lines, 1)
	require.Equal(t, "a b", lines[0].Text)
}

func TestBuildLines_Empty(t *testing.T) {
	require.Nil(t, buildLines(nil, DefaultConfig()))
}

func TestNeedsSpaceBetween(t *testing.T) {
	cases := []struct {
		left, right string
		want        bool
	}{
		{"exam", "ple", true},
		{"word", "42", true},
		{"3", "4", true},
		{"中文", "文本", false},
		{"word", "中", false},
		{"中", "word", false},
		{"word", "，", false},
		{"word.", "Next", false},
		{"(", "a", false},
		{"“", "a", false},
		{"pre-", "fix", false},
		{"tail ", "head", false},
		{"tail", " head", false},
		{"", "a", false},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, needsSpaceBetween(tc.left, tc.right),
			"needsSpaceBetween(%q, %q)", tc.left, tc.right)
	}
}
