package selector

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrywalker/displayselect/internal/model"
	"github.com/jrywalker/displayselect/internal/picker"
)

// fakeProber returns a fixed output snapshot.
type fakeProber struct {
	outputs []model.Output
	err     error
}

func (f *fakeProber) Probe(_ context.Context) ([]model.Output, error) {
	return f.outputs, f.err
}

// scriptPicker replays scripted answers and records every prompt.
// An empty answer simulates a cancelled prompt.
type scriptPicker struct {
	answers []string
	prompts []string
	choices [][]string
}

func (p *scriptPicker) Pick(_ context.Context, prompt string, choices []string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	p.choices = append(p.choices, choices)
	if len(p.answers) == 0 {
		return "", picker.ErrCancelled
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	if answer == "" {
		return "", picker.ErrCancelled
	}
	return answer, nil
}

func testConfig() Config {
	return Config{
		InternalOutput:  "eDP-1",
		CloseResolution: model.Resolution{Width: 1600, Height: 900},
		FarResolution:   model.Resolution{Width: 1920, Height: 1080},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSelector(outputs []model.Output, answers ...string) (*Selector, *scriptPicker) {
	pick := &scriptPicker{answers: answers}
	sel := New(testConfig(), &fakeProber{outputs: outputs}, pick, testLogger())
	return sel, pick
}

func internalPanel() model.Output {
	return model.Output{
		Name:      "eDP-1",
		Connected: true,
		Primary:   true,
		Modes: []model.Resolution{
			{Width: 1920, Height: 1080},
			{Width: 1600, Height: 900},
		},
	}
}

func hdmi() model.Output {
	return model.Output{
		Name:      "HDMI-1",
		Connected: true,
		Modes: []model.Resolution{
			{Width: 1920, Height: 1080},
			{Width: 1280, Height: 720},
		},
	}
}

func displayPort() model.Output {
	return model.Output{
		Name:      "DP-1",
		Connected: true,
		Modes: []model.Resolution{
			{Width: 2560, Height: 1440},
		},
	}
}

func TestSelect_NoDisplays(t *testing.T) {
	sel, pick := newSelector(nil)

	_, err := sel.Select(context.Background())
	assert.ErrorIs(t, err, ErrNoDisplays)
	assert.Empty(t, pick.prompts)
}

func TestSelect_DisconnectedOnly(t *testing.T) {
	sel, pick := newSelector([]model.Output{{Name: "HDMI-1", Connected: false}})

	_, err := sel.Select(context.Background())
	assert.ErrorIs(t, err, ErrNoDisplays)
	assert.Empty(t, pick.prompts)
}

func TestSelect_SingleInternal(t *testing.T) {
	sel, pick := newSelector([]model.Output{internalPanel()})

	arrangement, err := sel.Select(context.Background())
	require.NoError(t, err)

	single, ok := arrangement.(model.Single)
	require.True(t, ok)
	assert.Equal(t, "eDP-1", single.Output)
	assert.Equal(t, model.Resolution{Width: 1600, Height: 900}, single.Resolution)
	assert.True(t, single.Auto)
	assert.Empty(t, single.Off)
	assert.Empty(t, pick.prompts, "single output must never invoke the picker")
}

func TestSelect_SingleExternalUsesAutoMode(t *testing.T) {
	sel, _ := newSelector([]model.Output{hdmi()})

	arrangement, err := sel.Select(context.Background())
	require.NoError(t, err)

	single, ok := arrangement.(model.Single)
	require.True(t, ok)
	assert.Equal(t, "HDMI-1", single.Output)
	assert.True(t, single.Resolution.IsZero())
}

func TestSelect_ManualSelection(t *testing.T) {
	sel, pick := newSelector([]model.Output{internalPanel(), hdmi()}, ChoiceManual)

	arrangement, err := sel.Select(context.Background())
	require.NoError(t, err)

	_, ok := arrangement.(model.Manual)
	assert.True(t, ok)
	require.Len(t, pick.choices, 1)
	assert.Equal(t, []string{"eDP-1", "HDMI-1", ChoiceMultiMonitor, ChoiceManual}, pick.choices[0])
}

func TestSelect_ManualSelectionWithThreeOutputs(t *testing.T) {
	sel, _ := newSelector([]model.Output{internalPanel(), hdmi(), displayPort()}, ChoiceManual)

	arrangement, err := sel.Select(context.Background())
	require.NoError(t, err)

	_, ok := arrangement.(model.Manual)
	assert.True(t, ok)
}

func TestSelect_PickOneOutputTurnsOthersOff(t *testing.T) {
	sel, _ := newSelector([]model.Output{internalPanel(), hdmi(), displayPort()}, "HDMI-1")

	arrangement, err := sel.Select(context.Background())
	require.NoError(t, err)

	single, ok := arrangement.(model.Single)
	require.True(t, ok)
	assert.Equal(t, "HDMI-1", single.Output)
	assert.True(t, single.Resolution.IsZero())
	assert.Equal(t, []string{"eDP-1", "DP-1"}, single.Off)
	assert.False(t, single.Auto)
}

func TestSelect_PickInternalOutputUsesCloseResolution(t *testing.T) {
	sel, _ := newSelector([]model.Output{internalPanel(), hdmi()}, "eDP-1")

	arrangement, err := sel.Select(context.Background())
	require.NoError(t, err)

	single, ok := arrangement.(model.Single)
	require.True(t, ok)
	assert.Equal(t, model.Resolution{Width: 1600, Height: 900}, single.Resolution)
	assert.Equal(t, []string{"HDMI-1"}, single.Off)
}

func TestSelect_TwoScreenMirror(t *testing.T) {
	sel, pick := newSelector([]model.Output{internalPanel(), hdmi()}, ChoiceMultiMonitor, "yes")

	arrangement, err := sel.Select(context.Background())
	require.NoError(t, err)

	mirrored, ok := arrangement.(model.Mirrored)
	require.True(t, ok)
	assert.Equal(t, "eDP-1", mirrored.Primary)
	assert.Equal(t, "HDMI-1", mirrored.Secondary)
	assert.Equal(t, model.Resolution{Width: 1600, Height: 900}, mirrored.PrimaryResolution)

	// Secondary uses the last-listed mode, scales are the ratios.
	assert.Equal(t, model.Resolution{Width: 1280, Height: 720}, mirrored.SecondaryResolution)
	assert.InDelta(t, 1600.0/1280.0, mirrored.ScaleX, 1e-9)
	assert.InDelta(t, 900.0/720.0, mirrored.ScaleY, 1e-9)

	require.Len(t, pick.prompts, 2)
	assert.Equal(t, "mirror displays?", pick.prompts[1])
}

func TestSelect_TwoScreenExtend(t *testing.T) {
	sel, _ := newSelector([]model.Output{internalPanel(), hdmi()}, ChoiceMultiMonitor, "no", "right")

	arrangement, err := sel.Select(context.Background())
	require.NoError(t, err)

	extended, ok := arrangement.(model.Extended)
	require.True(t, ok)
	assert.Equal(t, "eDP-1", extended.Primary)
	assert.Equal(t, "HDMI-1", extended.Secondary)
	assert.Equal(t, model.Resolution{Width: 1920, Height: 1080}, extended.PrimaryResolution)
	assert.Equal(t, model.DirectionRight, extended.Direction)
}

func TestSelect_ThreeScreens(t *testing.T) {
	outputs := []model.Output{internalPanel(), hdmi(), displayPort()}
	sel, pick := newSelector(outputs, ChoiceMultiMonitor, "DP-1", "HDMI-1", "left", "eDP-1")

	arrangement, err := sel.Select(context.Background())
	require.NoError(t, err)

	triple, ok := arrangement.(model.ExtendedTriple)
	require.True(t, ok)
	assert.Equal(t, "DP-1", triple.Primary)
	assert.Equal(t, "HDMI-1", triple.Secondary)
	assert.Equal(t, "eDP-1", triple.Tertiary)
	assert.Equal(t, model.DirectionLeft, triple.SecondaryDirection)
	assert.Equal(t, model.DirectionRight, triple.TertiaryDirection())

	// Secondary prompt omits the chosen primary; tertiary prompt omits both.
	require.Len(t, pick.choices, 5)
	assert.Equal(t, []string{"eDP-1", "HDMI-1"}, pick.choices[2])
	assert.Equal(t, []string{"eDP-1"}, pick.choices[4])
}

func TestSelect_CancelAtEveryPrompt(t *testing.T) {
	outputs := []model.Output{internalPanel(), hdmi(), displayPort()}
	scripts := [][]string{
		{""},
		{ChoiceMultiMonitor, ""},
		{ChoiceMultiMonitor, "DP-1", ""},
		{ChoiceMultiMonitor, "DP-1", "HDMI-1", ""},
		{ChoiceMultiMonitor, "DP-1", "HDMI-1", "left", ""},
	}

	for _, script := range scripts {
		sel, _ := newSelector(outputs, script...)
		_, err := sel.Select(context.Background())
		assert.ErrorIs(t, err, picker.ErrCancelled)
	}
}

func TestSelect_CancelAtMirrorPrompt(t *testing.T) {
	sel, _ := newSelector([]model.Output{internalPanel(), hdmi()}, ChoiceMultiMonitor, "")

	_, err := sel.Select(context.Background())
	assert.ErrorIs(t, err, picker.ErrCancelled)
}

func TestSelect_UnknownOutputSelection(t *testing.T) {
	sel, _ := newSelector([]model.Output{internalPanel(), hdmi()}, "VGA-1")

	_, err := sel.Select(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, picker.ErrCancelled)
}

func TestSelect_InvalidDirection(t *testing.T) {
	sel, _ := newSelector([]model.Output{internalPanel(), hdmi()}, ChoiceMultiMonitor, "no", "sideways")

	_, err := sel.Select(context.Background())
	assert.Error(t, err)
}

func TestSelect_MirrorWithoutSecondaryModes(t *testing.T) {
	bare := model.Output{Name: "HDMI-1", Connected: true}
	sel, _ := newSelector([]model.Output{internalPanel(), bare}, ChoiceMultiMonitor, "yes")

	_, err := sel.Select(context.Background())
	assert.Error(t, err)
}
