package main

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/docwarp/codec"
	"github.com/katalvlaran/docwarp/geometry"
	"github.com/katalvlaran/docwarp/raster"
	"github.com/katalvlaran/docwarp/warp"
	"github.com/stretchr/testify/require"
)

func TestParseCorners(t *testing.T) {
	t.Parallel()

	q, err := parseCorners("444,79 624,77 618,327 440,327")
	require.NoError(t, err)
	require.Equal(t, geometry.Quadrilateral{{444, 79}, {624, 77}, {618, 327}, {440, 327}}, q)

	_, err = parseCorners("1.5, 2;3,4; 5,6 ;7,8")
	require.Error(t, err, "spaces inside a pair split it")

	q, err = parseCorners("1.5,2;3,4;5,6;7,8")
	require.NoError(t, err)
	require.Equal(t, geometry.Pt(1.5, 2), q[geometry.TopLeft])

	_, err = parseCorners("1,2 3,4 5,6")
	require.ErrorIs(t, err, warp.ErrInvalidCornerCount)

	_, err = parseCorners("1,2 3,4 5,6 7")
	require.ErrorIs(t, err, errUsage)

	_, err = parseCorners("1,2 3,4 5,6 7,z")
	require.Error(t, err)
}

func TestParseSize(t *testing.T) {
	t.Parallel()

	w, h, err := parseSize("600x800")
	require.NoError(t, err)
	require.Equal(t, 600, w)
	require.Equal(t, 800, h)

	_, _, err = parseSize("600")
	require.ErrorIs(t, err, errUsage)
	_, _, err = parseSize("0x5")
	require.ErrorIs(t, err, warp.ErrInvalidTargetSize)
	_, _, err = parseSize("ax5")
	require.Error(t, err)
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	cfg, err := parseFlags([]string{"-corners", "0,0 10,0 10,10 0,10", "-size", "20x30", "-rotate", "right", "-gray", "in.png", "out.png"}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, "in.png", cfg.in)
	require.Equal(t, "out.png", cfg.out)
	require.NotNil(t, cfg.corners)
	require.Equal(t, 20, cfg.width)
	require.Equal(t, 30, cfg.height)
	require.Equal(t, raster.Right, cfg.rotate)
	require.True(t, cfg.gray)

	_, err = parseFlags([]string{"only-one.png"}, io.Discard)
	require.ErrorIs(t, err, errUsage)

	_, err = parseFlags([]string{"-rotate", "up", "a.png", "b.png"}, io.Discard)
	require.ErrorIs(t, err, raster.ErrInvalidDirection)

	cfg, err = parseFlags([]string{"-version"}, io.Discard)
	require.NoError(t, err)
	require.True(t, cfg.showVers)
}

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")

	src, err := raster.New(40, 20)
	require.NoError(t, err)
	for i := 0; i < len(src.Pix); i += 4 {
		copy(src.Pix[i:i+4], []uint8{200, 40, 40, 255})
	}
	require.NoError(t, codec.EncodeFile(in, src))

	q := geometry.Quadrilateral{{2, 2}, {30, 3}, {31, 17}, {3, 16}}
	out := filepath.Join(dir, "out.bmp")
	require.NoError(t, run(config{
		in: in, out: out, corners: &q, width: 10, height: 6,
		rotate: raster.Left, gray: true,
	}))

	got, format, err := codec.DecodeFile(out)
	require.NoError(t, err)
	require.Equal(t, "bmp", format)
	require.Equal(t, 6, got.Width)
	require.Equal(t, 10, got.Height)
	l := raster.Luma(200, 40, 40)
	require.Equal(t, [4]uint8{l, l, l, 255}, got.RGBA(3, 4))

	require.Error(t, run(config{in: filepath.Join(dir, "missing.png"), out: out}))
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	t.Parallel()

	_, err := parseFlags([]string{"-nope", "a.png", "b.png"}, io.Discard)
	require.Error(t, err)
	require.NotErrorIs(t, err, errUsage)
}
