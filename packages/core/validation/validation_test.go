package validation

import (
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsIdentifier(t *testing.T) {
	assert.True(t, IsIdentifier("afl"))
	assert.True(t, IsIdentifier("gold_coast"))
	assert.True(t, IsIdentifier("2021"))
	assert.True(t, IsIdentifier(strings.Repeat("a", MaxIdentifierLength)))

	assert.False(t, IsIdentifier(""))
	assert.False(t, IsIdentifier("north-melbourne"))
	assert.False(t, IsIdentifier("st kilda"))
	assert.False(t, IsIdentifier(strings.Repeat("a", MaxIdentifierLength+1)))
}

func TestIsColour(t *testing.T) {
	assert.True(t, IsColour("#FFD200"))
	assert.True(t, IsColour("#ffd200"))

	assert.False(t, IsColour("FFD200"))
	assert.False(t, IsColour("#FFD20"))
	assert.False(t, IsColour("#GGGGGG"))
	assert.False(t, IsColour("yellow"))
}

type teamBody struct {
	ID      string  `json:"id" binding:"required,identifier"`
	Name    string  `json:"name" binding:"required"`
	Colour  *string `json:"primary_colour" binding:"omitempty,rgbcolour"`
	Goals   *int    `json:"goals" binding:"omitempty,min=0"`
	Behinds *int    `json:"behinds" binding:"omitempty,min=0,max=2147483647"`
}

func TestRegister_CustomTags(t *testing.T) {
	require.NoError(t, Register())
	require.NoError(t, Register())

	colour := "#000000"
	err := binding.Validator.ValidateStruct(&teamBody{ID: "richmond", Name: "Richmond", Colour: &colour})
	assert.NoError(t, err)

	empty := ""
	err = binding.Validator.ValidateStruct(&teamBody{ID: "richmond", Name: "Richmond", Colour: &empty})
	assert.NoError(t, err)

	bad := "black"
	negative := -1
	huge := 2147483648
	err = binding.Validator.ValidateStruct(&teamBody{ID: "rich mond", Colour: &bad, Goals: &negative, Behinds: &huge})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Contains(t, fields["id"], "^\\w+$")
	assert.Equal(t, "this field is required", fields["name"])
	assert.Equal(t, "must be a colour in the form #RRGGBB", fields["primary_colour"])
	assert.Equal(t, "must be at least 0", fields["goals"])
	assert.Equal(t, "must be at most 2147483647", fields["behinds"])
}

func TestFieldErrors_DecodeFailures(t *testing.T) {
	var body teamBody

	err := json.Unmarshal([]byte(`{"goals": "many"}`), &body)
	assert.Equal(t, map[string]string{"goals": "must be of type int"}, FieldErrors(err))

	err = json.Unmarshal([]byte(`{"id": `), &body)
	require.Error(t, err)
	assert.Contains(t, FieldErrors(err), "body")

	err = json.Unmarshal([]byte(`{"id" "afl"}`), &body)
	assert.Equal(t, map[string]string{"body": "malformed JSON"}, FieldErrors(err))

	assert.Equal(t, map[string]string{"body": "request body is required"}, FieldErrors(io.EOF))
}
