package scheme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Mode
		wantErr bool
	}{
		{name: "light", input: "light", want: Light},
		{name: "dark", input: "dark", want: Dark},
		{name: "empty", input: "", wantErr: true},
		{name: "upper case", input: "Dark", wantErr: true},
		{name: "system is not a mode", input: "system", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidMode))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInvalidModeError_ListsLegalValues(t *testing.T) {
	_, err := ParseMode("sepia")
	require.Error(t, err)

	var modeErr *InvalidModeError
	require.True(t, errors.As(err, &modeErr))
	assert.Equal(t, "sepia", modeErr.Value)
	assert.Contains(t, err.Error(), `"light"`)
	assert.Contains(t, err.Error(), `"dark"`)
}

func TestParseAppearance(t *testing.T) {
	for _, a := range Appearances {
		got, err := ParseAppearance(string(a))
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	_, err := ParseAppearance("dropdown")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidAppearance))
	for _, a := range Appearances {
		assert.Contains(t, err.Error(), string(a))
	}
}

func TestParseOption(t *testing.T) {
	o, err := ParseOption("system")
	require.NoError(t, err)
	assert.Equal(t, OptionSystem, o)

	_, err = ParseOption("auto")
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestMode_Helpers(t *testing.T) {
	assert.Equal(t, Dark, Light.Opposite())
	assert.Equal(t, Light, Dark.Opposite())
	assert.True(t, Dark.IsDark())
	assert.False(t, Light.IsDark())
	assert.Equal(t, Dark, FromDark(true))
	assert.Equal(t, Light, FromDark(false))
	assert.True(t, Light.Valid())
	assert.False(t, Mode("").Valid())
	assert.Equal(t, "dark", Dark.String())
}

func TestThreeWayOption_Mode(t *testing.T) {
	m, ok := OptionDark.Mode()
	assert.True(t, ok)
	assert.Equal(t, Dark, m)

	m, ok = OptionLight.Mode()
	assert.True(t, ok)
	assert.Equal(t, Light, m)

	_, ok = OptionSystem.Mode()
	assert.False(t, ok)
}
