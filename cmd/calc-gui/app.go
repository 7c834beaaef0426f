package main

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"calc"
)

const (
	screenW = 400
	screenH = 376

	btnW    = 72
	btnH    = 36
	btnGap  = 6
	margin  = 8
	gridTop = 72
	cols    = 5
)

// buttons lays out the grid row by row, five per row.
var buttons = []string{
	"C", "(", ")", "^", "mod",
	"7", "8", "9", "/", "*",
	"4", "5", "6", "+", "-",
	"1", "2", "3", ".", "=",
	"0", "pi", "e", "abs", "sqrt",
	"sin", "cos", "tan", "cbrt", "round",
	"log", "log10", "floor", "ceil", "=",
}

var funcLabels = map[string]bool{
	"sin": true, "cos": true, "tan": true, "sqrt": true, "cbrt": true,
	"log": true, "log10": true, "abs": true, "floor": true, "ceil": true,
	"round": true,
}

type app struct {
	display string
	result  string
	errmsg  string
}

func newApp() *app {
	return &app{}
}

func (a *app) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if i := buttonAt(x, y); i >= 0 {
			a.press(buttons[i])
		}
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		if strconv.IsPrint(r) {
			a.display += string(r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		a.calculate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(a.display) > 0 {
		a.display = a.display[:len(a.display)-1]
	}
	return nil
}

// press applies one button. Function buttons open their argument paren as
// part of the press; mod inserts the engine's % spelling.
func (a *app) press(label string) {
	switch label {
	case "C":
		a.clear()
	case "=":
		a.calculate()
	case "mod":
		a.display += "%"
	default:
		a.display += label
		if funcLabels[label] {
			a.display += "("
		}
	}
}

// calculate runs the three engine stages on the display string. An error
// shows on the result line and leaves the display untouched.
func (a *app) calculate() {
	a.errmsg = ""
	tokens, err := calc.Tokenize(a.display)
	if err != nil {
		a.errmsg = err.Error()
		return
	}
	r, err := calc.Evaluate(calc.ToPostfix(tokens))
	if err != nil {
		a.errmsg = err.Error()
		return
	}
	a.result = strconv.FormatFloat(r, 'g', -1, 64)
}

func (a *app) clear() {
	a.display = ""
	a.result = ""
	a.errmsg = ""
}

func (a *app) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x20, 0xff})
	vector.DrawFilledRect(screen, margin, margin, screenW-2*margin, 28, color.RGBA{0x10, 0x10, 0x10, 0xff}, false)
	ebitenutil.DebugPrintAt(screen, a.display, margin+6, margin+6)
	switch {
	case a.errmsg != "":
		ebitenutil.DebugPrintAt(screen, a.errmsg, margin+6, 44)
	case a.result != "":
		ebitenutil.DebugPrintAt(screen, "= "+a.result, margin+6, 44)
	}
	for i, label := range buttons {
		x, y := buttonPos(i)
		vector.DrawFilledRect(screen, float32(x), float32(y), btnW, btnH, buttonColor(label), false)
		// DebugPrint glyphs are 6x16; center the label roughly.
		ebitenutil.DebugPrintAt(screen, label, x+btnW/2-len(label)*3, y+btnH/2-8)
	}
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func buttonPos(i int) (x, y int) {
	x = margin + i%cols*(btnW+btnGap)
	y = gridTop + i/cols*(btnH+btnGap)
	return x, y
}

// buttonAt returns the index of the button under the cursor, or -1.
func buttonAt(x, y int) int {
	for i := range buttons {
		bx, by := buttonPos(i)
		if x >= bx && x < bx+btnW && y >= by && y < by+btnH {
			return i
		}
	}
	return -1
}

func buttonColor(label string) color.Color {
	switch {
	case label == "=":
		return color.RGBA{0, 150, 0, 0xff}
	case label == "C":
		return color.RGBA{150, 0, 0, 0xff}
	case funcLabels[label]:
		return color.RGBA{70, 70, 170, 0xff}
	case label == "pi" || label == "e":
		return color.RGBA{170, 70, 70, 0xff}
	case label == "+" || label == "-" || label == "*" || label == "/" ||
		label == "^" || label == "mod":
		return color.RGBA{100, 100, 100, 0xff}
	}
	return color.RGBA{60, 60, 60, 0xff}
}
