package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alwanly/firebird-track/pkg/firebird"
)

func TestParseArg(t *testing.T) {
	a, err := ParseArg("firstName=Jane")
	require.NoError(t, err)
	assert.Equal(t, Arg{Name: "firstName", Value: "Jane"}, a)

	a, err = ParseArg("age:int=30")
	require.NoError(t, err)
	assert.Equal(t, Arg{Name: "age", Type: "int", Value: "30"}, a)

	a, err = ParseArg("note=a=b")
	require.NoError(t, err)
	assert.Equal(t, "a=b", a.Value)

	_, err = ParseArg("novalue")
	assert.Error(t, err)
	_, err = ParseArg("=x")
	assert.Error(t, err)
}

func TestCoerce(t *testing.T) {
	v, err := Coerce(firebird.Int, " 42 ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	v, err = Coerce(firebird.Double, "1.5")
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	v, err = Coerce(firebird.Boolean, "true")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = Coerce(firebird.Array, "a, b,c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, v)

	v, err = Coerce(firebird.Array, `[1,"x"]`)
	require.NoError(t, err)
	assert.Equal(t, []any{float64(1), "x"}, v)

	v, err = Coerce(firebird.String, " keep ")
	require.NoError(t, err)
	assert.Equal(t, " keep ", v)

	_, err = Coerce(firebird.Int, "x")
	assert.Error(t, err)
	_, err = Coerce(firebird.Array, "[1,")
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	track, err := firebird.New("p1", "http://localhost")
	require.NoError(t, err)

	args := []Arg{
		{Name: "firstName", Value: "Jane"},
		{Name: "city", Value: "Paris"},
		{Name: "plan", Value: "gold"},
		{Name: "age", Type: "integer", Value: "30"},
		{Name: "vip", Type: "bool", Value: "1"},
	}
	require.NoError(t, Apply(track, args))

	attrs := track.Attributes()
	require.Len(t, attrs, 5)
	assert.Equal(t, firebird.Attribute{Name: "plan", Value: "gold", DataType: firebird.String}, attrs[2])
	assert.Equal(t, firebird.Attribute{Name: "age", Value: int64(30), DataType: firebird.Int}, attrs[3])
	assert.Equal(t, firebird.Attribute{Name: "vip", Value: true, DataType: firebird.Boolean}, attrs[4])
}

func TestApply_Errors(t *testing.T) {
	track, err := firebird.New("p1", "http://localhost")
	require.NoError(t, err)

	assert.ErrorIs(t, Apply(track, []Arg{{Name: "email", Value: "nope"}}), firebird.ErrInvalidFieldFormat)
	assert.ErrorIs(t, Apply(track, []Arg{{Name: "x", Type: "bogus", Value: "1"}}), firebird.ErrUnsupportedDataType)
	assert.Error(t, Apply(track, []Arg{{Name: "x", Type: "int", Value: "one"}}))
	assert.Equal(t, 0, track.Len())
}
