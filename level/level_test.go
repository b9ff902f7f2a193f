package level

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/william-cutler/platformer/engine"
	"github.com/william-cutler/platformer/entity"
	"github.com/william-cutler/platformer/parameter"
	"github.com/william-cutler/platformer/vmath"
)

var tuning = parameter.Default()

func TestLineAndRectangle(t *testing.T) {
	assert.Equal(t, Placement{Kind: KindGround, X: 1, Y: 2, W: 5, H: 1}, Line(1, 2, true, 5))
	assert.Equal(t, Placement{Kind: KindGround, X: 1, Y: 2, W: 1, H: 5}, Line(1, 2, false, 5))
	assert.Equal(t, Placement{Kind: KindGround, X: 0, Y: 0, W: 3, H: 4}, Rectangle(0, 0, 3, 4))
}

func TestLoadTutorial(t *testing.T) {
	lvl, err := Load(filepath.Join("testdata", "tutorial.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "tutorial", lvl.Name)
	require.Len(t, lvl.Placements, 9)

	w, err := Build(tuning, lvl.Placements)
	require.NoError(t, err)
	assert.Equal(t, vmath.V2(20, 170), w.Player.Position())
	assert.Len(t, w.Environment, 5)
	assert.Len(t, w.Enemies, 2)
	assert.Len(t, w.Pickups, 1)

	floor := w.Environment[0].Body()
	assert.Equal(t, vmath.V2(-50, 200), floor.TopLeft)
	assert.Equal(t, vmath.V2(800, 30), floor.Dim)

	spikes := w.Environment[4].(*entity.Spikes)
	assert.Equal(t, entity.DirUp, spikes.Direction())
	assert.Equal(t, vmath.V2(30, 10), spikes.Body().Dim)

	ammo := w.Pickups[0].(*entity.AmmoPickup)
	assert.Equal(t, entity.SlotPistol, ammo.Slot())
	assert.Equal(t, 5, ammo.Amount())
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.yaml")
	lvl := Generate(7, 60)
	require.NoError(t, Save(path, lvl))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, lvl, got)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBuildRejects(t *testing.T) {
	player := Placement{Kind: KindPlayer}
	cases := map[string][]Placement{
		"second player":   {player, player},
		"unknown kind":    {player, {Kind: "dragon"}},
		"bad direction":   {player, {Kind: KindSpikes, Direction: "north"}},
		"negative ground": {player, {Kind: KindGround, W: -2}},
		"negative spikes": {player, {Kind: KindSpikes, Length: -1}},
		"negative ammo":   {player, {Kind: KindAmmo, Slot: 2, Amount: -3}},
	}
	for name, ps := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Build(tuning, ps)
			assert.ErrorIs(t, err, ErrInvalidPlacement)
		})
	}

	_, err := Build(tuning, []Placement{Rectangle(0, 0, 2, 2)})
	assert.ErrorIs(t, err, ErrNoPlayer)
}

func TestGenerateIsDeterministic(t *testing.T) {
	assert.Equal(t, Generate(42, 120), Generate(42, 120))
	assert.NotEqual(t, Generate(42, 120), Generate(43, 120))
}

func TestGeneratedLevelIsPlayable(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 99} {
		lvl := Generate(seed, 150)
		w, err := Build(tuning, lvl.Placements)
		require.NoError(t, err, "seed %d", seed)

		g := engine.NewGame(tuning, w, nil)
		for i := 0; i < 60; i++ {
			g.Step()
		}
		assert.True(t, g.Resting(), "seed %d: player should settle on the spawn floor", seed)
		assert.False(t, g.Over(), "seed %d", seed)
	}
}

func TestGenerateClampsWidth(t *testing.T) {
	lvl := Generate(5, 1)
	w, err := Build(tuning, lvl.Placements)
	require.NoError(t, err)
	assert.NotEmpty(t, w.Environment)
}
