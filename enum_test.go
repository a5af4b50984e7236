package fsrs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color int

var errColor = errors.New("bad color")

// colorEnum leaves value 1 unnamed to check gaps.
var colorEnum = newEnum[color]("Color", errColor, "red", "", "blue")

func TestEnumFormat(t *testing.T) {
	assert.Equal(t, "red", colorEnum.format(0))
	assert.Equal(t, "blue", colorEnum.format(2))
	assert.Equal(t, "Color(1)", colorEnum.format(1))
	assert.Equal(t, "Color(-4)", colorEnum.format(-4))
	assert.Equal(t, "Color(3)", colorEnum.format(3))
}

func TestEnumText(t *testing.T) {
	text, err := colorEnum.marshalText(2)
	require.NoError(t, err)
	assert.Equal(t, "blue", string(text))

	v, err := colorEnum.unmarshalText([]byte("blue"))
	require.NoError(t, err)
	assert.Equal(t, color(2), v)

	_, err = colorEnum.marshalText(1)
	assert.ErrorIs(t, err, errColor)
	assert.EqualError(t, err, "bad color: Color(1)")

	_, err = colorEnum.unmarshalText([]byte(""))
	assert.ErrorIs(t, err, errColor, "the empty gap name is not a member")
}

func TestEnumJSON(t *testing.T) {
	data, err := colorEnum.marshalJSON(0)
	require.NoError(t, err)
	assert.Equal(t, `"red"`, string(data))

	v, err := colorEnum.unmarshalJSON([]byte(`"blue"`))
	require.NoError(t, err)
	assert.Equal(t, color(2), v)

	for _, input := range []string{`null`, `2`, `"green"`, `{}`} {
		_, err := colorEnum.unmarshalJSON([]byte(input))
		assert.ErrorIs(t, err, errColor, input)
	}
}
