package facade

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/caveman250/PlumbusEngine/internal/core/marshal"
	"github.com/caveman250/PlumbusEngine/internal/core/native"
)

// KeyCode is the engine's keyboard key numbering. It is dense from Space to
// Menu, except that 2 is unassigned.
type KeyCode int32

const (
	KeyUnknown      KeyCode = -1
	KeySpace        KeyCode = 0
	KeyApostrophe   KeyCode = 1
	KeyComma        KeyCode = 3
	KeyMinus        KeyCode = 4
	KeyPeriod       KeyCode = 5
	KeySlash        KeyCode = 6
	KeyZero         KeyCode = 7
	KeyOne          KeyCode = 8
	KeyTwo          KeyCode = 9
	KeyThree        KeyCode = 10
	KeyFour         KeyCode = 11
	KeyFive         KeyCode = 12
	KeySix          KeyCode = 13
	KeySeven        KeyCode = 14
	KeyEight        KeyCode = 15
	KeyNine         KeyCode = 16
	KeySemicolon    KeyCode = 17
	KeyEqual        KeyCode = 18
	KeyA            KeyCode = 19
	KeyB            KeyCode = 20
	KeyC            KeyCode = 21
	KeyD            KeyCode = 22
	KeyE            KeyCode = 23
	KeyF            KeyCode = 24
	KeyG            KeyCode = 25
	KeyH            KeyCode = 26
	KeyI            KeyCode = 27
	KeyJ            KeyCode = 28
	KeyK            KeyCode = 29
	KeyL            KeyCode = 30
	KeyM            KeyCode = 31
	KeyN            KeyCode = 32
	KeyO            KeyCode = 33
	KeyP            KeyCode = 34
	KeyQ            KeyCode = 35
	KeyR            KeyCode = 36
	KeyS            KeyCode = 37
	KeyT            KeyCode = 38
	KeyU            KeyCode = 39
	KeyV            KeyCode = 40
	KeyW            KeyCode = 41
	KeyX            KeyCode = 42
	KeyY            KeyCode = 43
	KeyZ            KeyCode = 44
	KeyLeftBracket  KeyCode = 45
	KeyBackslash    KeyCode = 46
	KeyRightBracket KeyCode = 47
	KeyGraveAccent  KeyCode = 48
	KeyWorld1       KeyCode = 49
	KeyWorld2       KeyCode = 50
	KeyEscape       KeyCode = 51
	KeyEnter        KeyCode = 52
	KeyTab          KeyCode = 53
	KeyBackspace    KeyCode = 54
	KeyInsert       KeyCode = 55
	KeyDelete       KeyCode = 56
	KeyRight        KeyCode = 57
	KeyLeft         KeyCode = 58
	KeyDown         KeyCode = 59
	KeyUp           KeyCode = 60
	KeyPageUp       KeyCode = 61
	KeyPageDown     KeyCode = 62
	KeyHome         KeyCode = 63
	KeyEnd          KeyCode = 64
	KeyCapsLock     KeyCode = 65
	KeyScrollLock   KeyCode = 66
	KeyNumLock      KeyCode = 67
	KeyPrintScreen  KeyCode = 68
	KeyPause        KeyCode = 69
	KeyF1           KeyCode = 70
	KeyF2           KeyCode = 71
	KeyF3           KeyCode = 72
	KeyF4           KeyCode = 73
	KeyF5           KeyCode = 74
	KeyF6           KeyCode = 75
	KeyF7           KeyCode = 76
	KeyF8           KeyCode = 77
	KeyF9           KeyCode = 78
	KeyF10          KeyCode = 79
	KeyF11          KeyCode = 80
	KeyF12          KeyCode = 81
	KeyF13          KeyCode = 82
	KeyF14          KeyCode = 83
	KeyF15          KeyCode = 84
	KeyF16          KeyCode = 85
	KeyF17          KeyCode = 86
	KeyF18          KeyCode = 87
	KeyF19          KeyCode = 88
	KeyF20          KeyCode = 89
	KeyF21          KeyCode = 90
	KeyF22          KeyCode = 91
	KeyF23          KeyCode = 92
	KeyF24          KeyCode = 93
	KeyF25          KeyCode = 94
	KeyNum0         KeyCode = 95
	KeyNum1         KeyCode = 96
	KeyNum2         KeyCode = 97
	KeyNum3         KeyCode = 98
	KeyNum4         KeyCode = 99
	KeyNum5         KeyCode = 100
	KeyNum6         KeyCode = 101
	KeyNum7         KeyCode = 102
	KeyNum8         KeyCode = 103
	KeyNum9         KeyCode = 104
	KeyNumDecimal   KeyCode = 105
	KeyNumDivide    KeyCode = 106
	KeyNumMultiply  KeyCode = 107
	KeyNumSubtract  KeyCode = 108
	KeyNumAdd       KeyCode = 109
	KeyNumEnter     KeyCode = 110
	KeyNumEqual     KeyCode = 111
	KeyLeftShift    KeyCode = 112
	KeyLeftControl  KeyCode = 113
	KeyLeftAlt      KeyCode = 114
	KeyLeftSuper    KeyCode = 115
	KeyRightShift   KeyCode = 116
	KeyRightControl KeyCode = 117
	KeyRightAlt     KeyCode = 118
	KeyRightSuper   KeyCode = 119
	KeyMenu         KeyCode = 120

	KeyCount = KeyMenu
)

var keyNames = map[KeyCode]string{
	KeyUnknown:      "Unknown",
	KeySpace:        "Space",
	KeyApostrophe:   "Apostrophe",
	KeyComma:        "Comma",
	KeyMinus:        "Minus",
	KeyPeriod:       "Period",
	KeySlash:        "Slash",
	KeyZero:         "Zero",
	KeyOne:          "One",
	KeyTwo:          "Two",
	KeyThree:        "Three",
	KeyFour:         "Four",
	KeyFive:         "Five",
	KeySix:          "Six",
	KeySeven:        "Seven",
	KeyEight:        "Eight",
	KeyNine:         "Nine",
	KeySemicolon:    "Semicolon",
	KeyEqual:        "Equal",
	KeyA:            "A",
	KeyB:            "B",
	KeyC:            "C",
	KeyD:            "D",
	KeyE:            "E",
	KeyF:            "F",
	KeyG:            "G",
	KeyH:            "H",
	KeyI:            "I",
	KeyJ:            "J",
	KeyK:            "K",
	KeyL:            "L",
	KeyM:            "M",
	KeyN:            "N",
	KeyO:            "O",
	KeyP:            "P",
	KeyQ:            "Q",
	KeyR:            "R",
	KeyS:            "S",
	KeyT:            "T",
	KeyU:            "U",
	KeyV:            "V",
	KeyW:            "W",
	KeyX:            "X",
	KeyY:            "Y",
	KeyZ:            "Z",
	KeyLeftBracket:  "LeftBracket",
	KeyBackslash:    "Backslash",
	KeyRightBracket: "RightBracket",
	KeyGraveAccent:  "GraveAccent",
	KeyWorld1:       "World1",
	KeyWorld2:       "World2",
	KeyEscape:       "Escape",
	KeyEnter:        "Enter",
	KeyTab:          "Tab",
	KeyBackspace:    "Backspace",
	KeyInsert:       "Insert",
	KeyDelete:       "Delete",
	KeyRight:        "Right",
	KeyLeft:         "Left",
	KeyDown:         "Down",
	KeyUp:           "Up",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyCapsLock:     "CapsLock",
	KeyScrollLock:   "ScrollLock",
	KeyNumLock:      "NumLock",
	KeyPrintScreen:  "PrintScreen",
	KeyPause:        "Pause",
	KeyF1:           "F1",
	KeyF2:           "F2",
	KeyF3:           "F3",
	KeyF4:           "F4",
	KeyF5:           "F5",
	KeyF6:           "F6",
	KeyF7:           "F7",
	KeyF8:           "F8",
	KeyF9:           "F9",
	KeyF10:          "F10",
	KeyF11:          "F11",
	KeyF12:          "F12",
	KeyF13:          "F13",
	KeyF14:          "F14",
	KeyF15:          "F15",
	KeyF16:          "F16",
	KeyF17:          "F17",
	KeyF18:          "F18",
	KeyF19:          "F19",
	KeyF20:          "F20",
	KeyF21:          "F21",
	KeyF22:          "F22",
	KeyF23:          "F23",
	KeyF24:          "F24",
	KeyF25:          "F25",
	KeyNum0:         "Num0",
	KeyNum1:         "Num1",
	KeyNum2:         "Num2",
	KeyNum3:         "Num3",
	KeyNum4:         "Num4",
	KeyNum5:         "Num5",
	KeyNum6:         "Num6",
	KeyNum7:         "Num7",
	KeyNum8:         "Num8",
	KeyNum9:         "Num9",
	KeyNumDecimal:   "NumDecimal",
	KeyNumDivide:    "NumDivide",
	KeyNumMultiply:  "NumMultiply",
	KeyNumSubtract:  "NumSubtract",
	KeyNumAdd:       "NumAdd",
	KeyNumEnter:     "NumEnter",
	KeyNumEqual:     "NumEqual",
	KeyLeftShift:    "LeftShift",
	KeyLeftControl:  "LeftControl",
	KeyLeftAlt:      "LeftAlt",
	KeyLeftSuper:    "LeftSuper",
	KeyRightShift:   "RightShift",
	KeyRightControl: "RightControl",
	KeyRightAlt:     "RightAlt",
	KeyRightSuper:   "RightSuper",
	KeyMenu:         "Menu",
}

func (k KeyCode) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return fmt.Sprintf("KeyCode(%d)", int32(k))
}

// KeyCodeByName resolves a key by name, case-insensitively, e.g. "One" or "f1".
func KeyCodeByName(name string) (KeyCode, bool) {
	for k, n := range keyNames {
		if strings.EqualFold(n, name) {
			return k, true
		}
	}
	return KeyUnknown, false
}

type MouseButton int32

const (
	MouseLeft   MouseButton = 0
	MouseRight  MouseButton = 1
	MouseMiddle MouseButton = 2
)

type Input struct {
	surface native.Surface
}

func NewInput(surface native.Surface) Input {
	return Input{surface: surface}
}

func (i Input) IsKeyDown(key KeyCode) bool {
	return i.surface.InputIsKeyDown(int32(key))
}

func (i Input) IsKeyUp(key KeyCode) bool {
	return i.surface.InputIsKeyUp(int32(key))
}

func (i Input) IsMouseButtonDown(button MouseButton) bool {
	return i.surface.InputIsMouseButtonDown(int32(button))
}

func (i Input) IsMouseButtonUp(button MouseButton) bool {
	return i.surface.InputIsMouseButtonUp(int32(button))
}

// MousePosition is the cursor position in window pixels.
func (i Input) MousePosition() mgl32.Vec2 {
	return marshal.Vec2FromNative(i.surface.InputGetMousePos())
}
