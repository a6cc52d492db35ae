package commands_test

import (
	"flag"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"village/internal/camera"
	"village/internal/commands"
	"village/internal/config"
	"village/internal/locomotion"
	"village/internal/village"
)

func TestParse(t *testing.T) {
	args, ok := commands.Parse("cmd camera -name Car Camera")
	require.True(t, ok)
	assert.Equal(t, []string{"camera", "-name", "Car", "Camera"}, args)

	args, ok = commands.Parse("cmd   ")
	assert.True(t, ok)
	assert.Nil(t, args)

	_, ok = commands.Parse("hello there")
	assert.False(t, ok)
}

func TestExecute(t *testing.T) {
	var out []string
	r := commands.NewRegistry(func(l string) { out = append(out, l) })
	calls := 0
	r.Register("count", "count calls", func(fs *flag.FlagSet) func() error {
		n := fs.Int("n", 1, "")
		return func() error {
			calls += *n
			return nil
		}
	})

	require.NoError(t, r.Execute([]string{"count", "-n", "3"}))
	require.NoError(t, r.Execute([]string{"count"}))
	assert.Equal(t, 4, calls, "flag values do not carry over")

	assert.ErrorIs(t, r.Execute(nil), commands.ErrMissing)
	assert.ErrorIs(t, r.Execute([]string{"nope"}), commands.ErrUnknown)
	assert.Error(t, r.Execute([]string{"count", "-bogus"}))

	require.NoError(t, r.Execute([]string{"help"}))
	assert.Equal(t, []string{"count: count calls", "help: list commands"}, out)
}

type silentStream struct{}

func (silentStream) Play()             {}
func (silentStream) Pause()            {}
func (silentStream) Resume()           {}
func (silentStream) Update()           {}
func (silentStream) SetVolume(float32) {}

func newVillage(t *testing.T, music bool) *village.Village {
	t.Helper()
	deps := village.Deps{}
	if music {
		deps.Music = silentStream{}
	}
	v, err := village.New(config.Default(), deps)
	require.NoError(t, err)
	return v
}

func TestVillageCommands(t *testing.T) {
	run := func(r *commands.Registry, line string) error {
		args, ok := commands.Parse(line)
		require.True(t, ok)
		return r.Execute(args)
	}

	t.Run("camera", func(t *testing.T) {
		v := newVillage(t, false)
		var selected string
		r := commands.NewRegistry(nil)
		commands.RegisterVillage(r, v, commands.Hooks{Camera: func(id string) { selected = id }})

		require.NoError(t, run(r, "cmd camera -name Car Camera"))
		assert.Equal(t, village.CarCamera, v.Cameras.Active().ID())
		assert.Equal(t, village.CarCamera, selected)
		assert.ErrorIs(t, run(r, "cmd camera -name tripod"), camera.ErrUnknown)
	})

	t.Run("light", func(t *testing.T) {
		v := newVillage(t, false)
		var hooked float32
		r := commands.NewRegistry(nil)
		commands.RegisterVillage(r, v, commands.Hooks{Light: func(i float32) { hooked = i }})

		require.NoError(t, run(r, "cmd light -intensity 2"))
		assert.Equal(t, float32(1), v.Light.Intensity())
		assert.Equal(t, float32(1), hooked)
	})

	t.Run("music", func(t *testing.T) {
		r := commands.NewRegistry(nil)
		commands.RegisterVillage(r, newVillage(t, false), commands.Hooks{})
		assert.ErrorIs(t, run(r, "cmd music -toggle"), commands.ErrNoMusic)

		v := newVillage(t, true)
		r = commands.NewRegistry(nil)
		commands.RegisterVillage(r, v, commands.Hooks{})
		require.NoError(t, run(r, "cmd music -toggle -volume 0.4"))
		assert.True(t, v.Music.Playing())
		assert.InDelta(t, 0.4, v.Music.Volume(), 1e-6)
		require.NoError(t, run(r, "cmd music -toggle"))
		assert.False(t, v.Music.Playing())
		assert.InDelta(t, 0.4, v.Music.Volume(), 1e-6)
	})

	t.Run("fountain and villager", func(t *testing.T) {
		v := newVillage(t, false)
		var out []string
		r := commands.NewRegistry(func(l string) { out = append(out, l) })
		commands.RegisterVillage(r, v, commands.Hooks{})

		require.NoError(t, run(r, "cmd fountain"))
		assert.True(t, v.Fountain.Particles.IsStarted())
		assert.Contains(t, out, "fountain: running=true")

		require.NoError(t, run(r, "cmd villager -action idle -speed 12"))
		assert.Equal(t, locomotion.Idle, v.Villager.Walker.Action())
		assert.Equal(t, 12.0, v.Villager.Walker.Speed())
		assert.Error(t, run(r, "cmd villager -action dance"))
	})

	t.Run("grid", func(t *testing.T) {
		shown := true
		r := commands.NewRegistry(nil)
		commands.RegisterVillage(r, newVillage(t, false), commands.Hooks{Grid: func(b bool) { shown = b }})
		require.NoError(t, run(r, "cmd grid -show=false"))
		assert.False(t, shown)
	})
}

func TestSave(t *testing.T) {
	v := newVillage(t, true)
	r := commands.NewRegistry(nil)
	commands.RegisterVillage(r, v, commands.Hooks{})
	p := filepath.Join(t.TempDir(), "village.yaml")

	require.NoError(t, r.Execute([]string{"light", "-intensity", "0.75"}))
	require.NoError(t, r.Execute([]string{"villager", "-action", "idle"}))
	require.NoError(t, r.Execute([]string{"save", "-path", p}))

	got, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, float32(0.75), got.Light.Intensity)
	assert.False(t, got.Villager.Move)
	assert.Equal(t, config.Default().Houses, got.Houses)
}

func TestHistory(t *testing.T) {
	h := commands.NewHistory(2)
	_, ok := h.Prev()
	assert.False(t, ok)

	h.Add("cmd grid")
	h.Add("cmd fountain")
	h.Add("cmd fountain")
	h.Add("cmd light")

	got, ok := h.Prev()
	require.True(t, ok)
	assert.Equal(t, "cmd light", got)
	got, _ = h.Prev()
	assert.Equal(t, "cmd fountain", got)
	got, _ = h.Prev()
	assert.Equal(t, "cmd fountain", got, "oldest line is kept, older ones dropped")
	assert.Equal(t, "cmd light", h.Next())
	assert.Equal(t, "", h.Next())
}

func TestComplete(t *testing.T) {
	r := commands.NewRegistry(nil)
	commands.RegisterVillage(r, newVillage(t, false), commands.Hooks{})

	cases := []struct {
		line string
		want string
		ok   bool
	}{
		{"cmd ca", "cmd camera ", true},
		{"cmd   fo", "cmd fountain ", true},
		{"cmd s", "cmd save ", true},
		{"cmd ", "cmd ", false},
		{"cmd camera -na", "cmd camera -na", false},
		{"hello", "hello", false},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			got, ok := r.Complete(tc.line)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
