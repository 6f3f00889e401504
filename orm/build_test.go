package orm_test

import (
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"orm-texture-builder/orm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAllBlank(t *testing.T) {
	dir := namedDir(t, "empty")

	plan, err := orm.Build(&orm.Config{
		Directory:  dir,
		Resolution: &orm.Resolution{Width: 4, Height: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "empty_orm_map.png"), plan.Output)

	img, px := readOutput(t, plan.Output)
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())
	for _, p := range px {
		assert.Equal(t, [3]uint8{0, 0, 0}, p)
	}
}

func TestBuildScenario(t *testing.T) {
	dir := namedDir(t, "wall")
	writeGray(t, filepath.Join(dir, "wall.AmbientOcclusion.png"), 2, 2, 10, 20, 30, 40)
	writeGray(t, filepath.Join(dir, "wall.Roughness.png"), 2, 2, 1, 2, 3, 4)

	plan, err := orm.Build(&orm.Config{
		Directory:  dir,
		Resolution: &orm.Resolution{Width: 2, Height: 2},
	})
	require.NoError(t, err)

	_, px := readOutput(t, plan.Output)
	assert.Equal(t, [][3]uint8{
		{10, 1, 0},
		{20, 2, 0},
		{30, 3, 0},
		{40, 4, 0},
	}, px)
}

func TestBuildScenarioJPEGRoughness(t *testing.T) {
	dir := namedDir(t, "wall")
	writeGray(t, filepath.Join(dir, "wall.AmbientOcclusion.png"), 2, 2, 10, 20, 30, 40)
	writeGrayJPEG(t, filepath.Join(dir, "wall.Roughness.jpg"), 2, 2, 1, 2, 3, 4)

	plan, err := orm.Build(&orm.Config{
		Directory:  dir,
		Resolution: &orm.Resolution{Width: 2, Height: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "wall.Roughness.jpg"), plan.Sources.Get(orm.Roughness))

	_, px := readOutput(t, plan.Output)
	require.Len(t, px, 4)
	for i, p := range px {
		assert.Equal(t, uint8(10*(i+1)), p[0])
		// jpeg is lossy, even at full quality
		assert.InDelta(t, i+1, int(p[1]), 2)
		assert.Equal(t, uint8(0), p[2])
	}
}

func TestBuildSingleSource(t *testing.T) {
	dir := namedDir(t, "metal")
	writeRGB(t, filepath.Join(dir, "m.Metalness.png"), 3, 2, color.NRGBA{0, 255, 0, 255})

	plan, err := orm.Build(&orm.Config{
		Directory:  dir,
		Resolution: &orm.Resolution{Width: 3, Height: 2},
	})
	require.NoError(t, err)

	_, px := readOutput(t, plan.Output)
	require.Len(t, px, 6)
	for _, p := range px {
		assert.Equal(t, [3]uint8{0, 0, 150}, p)
	}
}

func TestBuildAllSourcesWithoutResolution(t *testing.T) {
	dir := namedDir(t, "full")
	writeGray(t, filepath.Join(dir, "f.AmbientOcclusion.png"), 1, 2, 1, 2)
	writeGray(t, filepath.Join(dir, "f.Roughness.png"), 1, 2, 3, 4)
	writeGray(t, filepath.Join(dir, "f.Metalness.png"), 1, 2, 5, 6)

	plan, err := orm.Build(&orm.Config{Directory: dir})
	require.NoError(t, err)

	_, px := readOutput(t, plan.Output)
	assert.Equal(t, [][3]uint8{{1, 3, 5}, {2, 4, 6}}, px)
}

func TestBuildMissingSourceWithoutResolution(t *testing.T) {
	dir := namedDir(t, "partial")
	writeGray(t, filepath.Join(dir, "p.AmbientOcclusion.png"), 1, 1, 1)

	_, err := orm.Build(&orm.Config{Directory: dir})
	require.ErrorIs(t, err, orm.ErrUsage)

	assert.NoFileExists(t, filepath.Join(dir, "partial_orm_map.png"))
}

func TestBuildDimensionMismatch(t *testing.T) {
	dir := namedDir(t, "mismatch")
	writeGray(t, filepath.Join(dir, "x.AmbientOcclusion.png"), 2, 2, 1, 2, 3, 4)

	_, err := orm.Build(&orm.Config{
		Directory:  dir,
		Resolution: &orm.Resolution{Width: 3, Height: 3},
	})
	require.ErrorIs(t, err, orm.ErrDimensionMismatch)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestBuildCorruptSource(t *testing.T) {
	dir := namedDir(t, "corrupt")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.Roughness.png"), []byte("garbage"), 0666))

	_, err := orm.Build(&orm.Config{
		Directory:  dir,
		Resolution: &orm.Resolution{Width: 1, Height: 1},
	})
	require.ErrorIs(t, err, orm.ErrDecode)
	assert.NoFileExists(t, filepath.Join(dir, "corrupt_orm_map.png"))
}

func TestBuildOverwritesAndIsIdempotent(t *testing.T) {
	dir := namedDir(t, "repeat")
	writeGray(t, filepath.Join(dir, "r.AmbientOcclusion.png"), 2, 1, 7, 8)
	out := filepath.Join(dir, "repeat_orm_map.png")
	require.NoError(t, os.WriteFile(out, []byte("stale"), 0666))

	cfg := &orm.Config{Directory: dir, Resolution: &orm.Resolution{Width: 2, Height: 1}}

	_, err := orm.Build(cfg)
	require.NoError(t, err)
	first, err := os.ReadFile(out)
	require.NoError(t, err)

	_, err = orm.Build(cfg)
	require.NoError(t, err)
	second, err := os.ReadFile(out)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEqual(t, []byte("stale"), first)
}

func TestBuildKeepsOutputMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no unix permission bits")
	}

	dir := namedDir(t, "locked")
	out := filepath.Join(dir, "locked_orm_map.png")
	require.NoError(t, os.WriteFile(out, []byte("stale"), 0600))
	require.NoError(t, os.Chmod(out, 0640))

	_, err := orm.Build(&orm.Config{Directory: dir, Resolution: &orm.Resolution{Width: 1, Height: 1}})
	require.NoError(t, err)

	fi, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0640), fi.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestBuildOverridePaths(t *testing.T) {
	dir := namedDir(t, "override")
	other := t.TempDir()
	writeGray(t, filepath.Join(dir, "o.Roughness.png"), 1, 1, 99)
	writeGray(t, filepath.Join(other, "custom_rough.png"), 1, 1, 42)

	var overrides orm.Sources
	overrides[orm.Roughness] = filepath.Join(other, "custom_rough.png")

	plan, err := orm.Build(&orm.Config{
		Directory:  dir,
		Overrides:  overrides,
		Resolution: &orm.Resolution{Width: 1, Height: 1},
	})
	require.NoError(t, err)

	_, px := readOutput(t, plan.Output)
	assert.Equal(t, [][3]uint8{{0, 42, 0}}, px)
}

func TestBuildCustomSuffix(t *testing.T) {
	dir := namedDir(t, "brick")

	plan, err := orm.Build(&orm.Config{
		Directory:  dir,
		Suffix:     "_ORM.png",
		Resolution: &orm.Resolution{Width: 1, Height: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "brick_ORM.png"), plan.Output)
	assert.FileExists(t, plan.Output)
}

func TestPrepareDoesNoImageIO(t *testing.T) {
	dir := namedDir(t, "lazy")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "l.AmbientOcclusion.png"), []byte("garbage"), 0666))

	plan, err := orm.Prepare(&orm.Config{Directory: dir, Resolution: &orm.Resolution{Width: 1, Height: 1}})
	require.NoError(t, err)
	assert.True(t, plan.Sources.Has(orm.AmbientOcclusion))
	assert.NoFileExists(t, plan.Output)
}

func TestOutputPath(t *testing.T) {
	dir := namedDir(t, "stone")

	p, err := orm.OutputPath(dir, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "stone_orm_map.png"), p)

	p, err = orm.OutputPath(dir+string(filepath.Separator), "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "stone_orm_map.png"), p)

	wd, err := os.Getwd()
	require.NoError(t, err)
	p, err = orm.OutputPath(".", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(wd)+"_orm_map.png", p)
}
