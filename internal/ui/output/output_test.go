package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/sandeepsanjusplr/buck/internal/ui/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for in, want := range map[string]output.Mode{
		"":       output.ModeAuto,
		"auto":   output.ModeAuto,
		"always": output.ModeAlways,
		"never":  output.ModeNever,
	} {
		got, err := output.ParseMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := output.ParseMode("sometimes")
	assert.ErrorIs(t, err, output.ErrInvalidMode)
}

func TestEnabled(t *testing.T) {
	tests := []struct {
		mode  output.Mode
		isTTY bool
		isCI  bool
		want  bool
	}{
		{mode: output.ModeAuto, isTTY: true, want: true},
		{mode: output.ModeAuto, isTTY: false},
		{mode: output.ModeAuto, isTTY: true, isCI: true},
		{mode: output.ModeAlways, isCI: true, want: true},
		{mode: output.ModeNever, isTTY: true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, output.Enabled(tt.mode, tt.isTTY, tt.isCI),
			"mode=%s tty=%v ci=%v", tt.mode, tt.isTTY, tt.isCI)
	}
}

func TestProfile(t *testing.T) {
	t.Cleanup(func() { output.SetMode(output.ModeAuto) })
	var buf bytes.Buffer

	output.SetMode(output.ModeAuto)
	assert.Equal(t, termenv.Ascii, output.Profile(&buf), "a buffer is not a terminal")

	output.SetMode(output.ModeAlways)
	assert.Equal(t, termenv.TrueColor, output.Profile(&buf))

	output.SetMode(output.ModeNever)
	out := output.New(&buf)
	_, _ = out.WriteString(out.String("plain").Foreground(termenv.RGBColor("#FF0000")).String())
	assert.Equal(t, "plain", buf.String())
}

func TestNew_Nil(t *testing.T) {
	assert.NotNil(t, output.New(nil))
}
