package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPress(t *testing.T) {
	a := newApp()
	for _, label := range []string{"1", "+", "2", "*", "3"} {
		a.press(label)
	}
	a.press("=")
	assert.Equal(t, "1+2*3", a.display)
	assert.Equal(t, "7", a.result)
	assert.Empty(t, a.errmsg)

	a.press("C")
	assert.Empty(t, a.display)
	assert.Empty(t, a.result)
}

func TestPressFunctionOpensParen(t *testing.T) {
	a := newApp()
	a.press("sqrt")
	assert.Equal(t, "sqrt(", a.display)
	a.press("9")
	a.press(")")
	a.press("=")
	assert.Equal(t, "3", a.result)
}

func TestPressMod(t *testing.T) {
	a := newApp()
	a.press("7")
	a.press("mod")
	a.press("4")
	a.press("=")
	assert.Equal(t, "7%4", a.display)
	assert.Equal(t, "3", a.result)
}

func TestCalculateError(t *testing.T) {
	a := newApp()
	a.press("5")
	a.press("/")
	a.press("0")
	a.press("=")
	assert.Equal(t, "division by zero", a.errmsg)
	// The display is left untouched so the user can fix the input.
	assert.Equal(t, "5/0", a.display)
}

func TestButtonAt(t *testing.T) {
	x, y := buttonPos(0)
	assert.Equal(t, 0, buttonAt(x, y))
	assert.Equal(t, 0, buttonAt(x+btnW-1, y+btnH-1))
	assert.Equal(t, -1, buttonAt(x+btnW, y))
	assert.Equal(t, -1, buttonAt(0, 0))
	last := len(buttons) - 1
	x, y = buttonPos(last)
	assert.Equal(t, last, buttonAt(x+1, y+1))
}
