package keymaps

import "github.com/bendahl/uinput"

// namedKeys maps accepted action names to control keys.
var namedKeys = map[string]Key{
	"space":     KeySpace,
	"return":    KeyReturn,
	"enter":     KeyReturn,
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"tab":       KeyTab,
	"backspace": KeyBackspace,
	"insert":    KeyInsert,
	"delete":    KeyDelete,
	"home":      KeyHome,
	"end":       KeyEnd,
	"page_up":   KeyPageUp,
	"page_down": KeyPageDown,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"ctrl":      KeyCtrl,
	"shift":     KeyShift,
	"alt":       KeyAlt,
	"f1":        KeyF1,
	"f2":        KeyF2,
	"f3":        KeyF3,
	"f4":        KeyF4,
	"f5":        KeyF5,
	"f6":        KeyF6,
	"f7":        KeyF7,
	"f8":        KeyF8,
	"f9":        KeyF9,
	"f10":       KeyF10,
	"f11":       KeyF11,
	"f12":       KeyF12,
}

// keyNames is the canonical name of each key.
var keyNames = map[Key]string{
	KeySpace:     "space",
	KeyReturn:    "return",
	KeyEscape:    "escape",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyInsert:    "insert",
	KeyDelete:    "delete",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "page_up",
	KeyPageDown:  "page_down",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyCtrl:      "ctrl",
	KeyShift:     "shift",
	KeyAlt:       "alt",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
	KeyF4:        "f4",
	KeyF5:        "f5",
	KeyF6:        "f6",
	KeyF7:        "f7",
	KeyF8:        "f8",
	KeyF9:        "f9",
	KeyF10:       "f10",
	KeyF11:       "f11",
	KeyF12:       "f12",
}

// keyCodes holds the Linux key code each named key is injected as.
// Modifiers use the left-hand key.
var keyCodes = map[Key]int{
	KeySpace:     uinput.KeySpace,
	KeyReturn:    uinput.KeyEnter,
	KeyEscape:    uinput.KeyEsc,
	KeyTab:       uinput.KeyTab,
	KeyBackspace: uinput.KeyBackspace,
	KeyInsert:    uinput.KeyInsert,
	KeyDelete:    uinput.KeyDelete,
	KeyHome:      uinput.KeyHome,
	KeyEnd:       uinput.KeyEnd,
	KeyPageUp:    uinput.KeyPageup,
	KeyPageDown:  uinput.KeyPagedown,
	KeyUp:        uinput.KeyUp,
	KeyDown:      uinput.KeyDown,
	KeyLeft:      uinput.KeyLeft,
	KeyRight:     uinput.KeyRight,
	KeyCtrl:      uinput.KeyLeftctrl,
	KeyShift:     uinput.KeyLeftshift,
	KeyAlt:       uinput.KeyLeftalt,
	KeyF1:        uinput.KeyF1,
	KeyF2:        uinput.KeyF2,
	KeyF3:        uinput.KeyF3,
	KeyF4:        uinput.KeyF4,
	KeyF5:        uinput.KeyF5,
	KeyF6:        uinput.KeyF6,
	KeyF7:        uinput.KeyF7,
	KeyF8:        uinput.KeyF8,
	KeyF9:        uinput.KeyF9,
	KeyF10:       uinput.KeyF10,
	KeyF11:       uinput.KeyF11,
	KeyF12:       uinput.KeyF12,
}
