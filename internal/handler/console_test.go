package handler

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_Prompt(t *testing.T) {
	var out bytes.Buffer
	con := NewConsole(strings.NewReader("first\r\nsecond\nlast"), &out)

	got, err := con.Prompt("A: ")
	require.NoError(t, err)
	assert.Equal(t, "first", got)

	got, err = con.Prompt("B: ")
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	got, err = con.Prompt("C: ")
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = con.Prompt("D: ")
	assert.ErrorIs(t, err, ErrInputClosed)

	assert.Equal(t, "A: B: C: D: ", out.String())
}

func TestConsole_Pause(t *testing.T) {
	var out bytes.Buffer
	con := NewConsole(strings.NewReader("\n"), &out)

	require.NoError(t, con.Pause())
	assert.Equal(t, "\nPress Enter to continue...", out.String())
	assert.ErrorIs(t, con.Pause(), ErrInputClosed)
}
