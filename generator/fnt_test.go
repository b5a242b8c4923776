package generator

import "fmt"
import "bytes"
import "strings"
import "testing"

import "github.com/stretchr/testify/require"

func TestWriteFNT(t *testing.T) {
	generator := newTestGenerator(t)
	font, err := generator.GenerateFont(16, "AB ", false)
	require.NoError(t, err)

	var buffer bytes.Buffer
	require.NoError(t, font.WriteFNT(&buffer, "goregular_s16.png"))
	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")

	require.True(t, strings.HasPrefix(lines[0], "info face="), "first line must be the info block")
	require.Contains(t, lines[0], " size=16 ")
	require.True(t, strings.HasPrefix(lines[1], "common lineHeight="))
	require.Equal(t, `page id=0 file="goregular_s16.png"`, lines[2])
	require.Equal(t, "chars count=3", lines[3])
	require.True(t, strings.HasPrefix(lines[4], "char id=65 "))
	require.True(t, strings.HasPrefix(lines[5], "char id=66 "))
	require.True(t, strings.HasPrefix(lines[6], "char id=32 "))
	require.Contains(t, lines[6], " width=0 height=0 ")
	require.True(t, strings.HasPrefix(lines[7], "kernings count="))
}

func TestWriteFNTFlippedMatchesRegular(t *testing.T) {
	generator := newTestGenerator(t)
	regular, err := generator.GenerateFont(20, "gjpq", false)
	require.NoError(t, err)
	flipped, err := generator.GenerateFont(20, "gjpq", true)
	require.NoError(t, err)

	var regBuffer, flipBuffer bytes.Buffer
	require.NoError(t, regular.WriteFNT(&regBuffer, "page.png"))
	require.NoError(t, flipped.WriteFNT(&flipBuffer, "page.png"))
	require.Equal(t, regBuffer.String(), flipBuffer.String())
}

func TestWriteFNTKerning(t *testing.T) {
	generator := newKernedTestGenerator(t)
	font, err := generator.GenerateFont(32, DefaultChars, false)
	require.NoError(t, err)

	var buffer bytes.Buffer
	require.NoError(t, font.WriteFNT(&buffer, "gokerned_s32.png"))
	output := buffer.String()

	amountAV := font.Kern('A', 'V').Round()
	require.Less(t, amountAV, 0)
	require.Contains(t, output, "kernings count=2\n")
	require.Contains(t, output, fmt.Sprintf("kerning first=65 second=86 amount=%d\n", amountAV))
	require.Contains(t, output, "kerning first=84 second=111 amount=")
}
