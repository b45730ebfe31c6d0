package key

import "fmt"

// Code identifies a physical key position, independent of the active
// keyboard layout. Names follow the W3C KeyboardEvent.code values, so
// CodeKeyA is the key labelled "A" on a US layout wherever it is
// physically located, whatever character it currently produces.
type Code uint16

const (
	// CodeUnidentified is a key whose position is unknown.
	CodeUnidentified Code = iota

	// Writing system keys
	CodeBackquote
	CodeBackslash
	CodeBracketLeft
	CodeBracketRight
	CodeComma
	CodeDigit0
	CodeDigit1
	CodeDigit2
	CodeDigit3
	CodeDigit4
	CodeDigit5
	CodeDigit6
	CodeDigit7
	CodeDigit8
	CodeDigit9
	CodeEqual
	CodeIntlBackslash
	CodeIntlRo
	CodeIntlYen
	CodeKeyA
	CodeKeyB
	CodeKeyC
	CodeKeyD
	CodeKeyE
	CodeKeyF
	CodeKeyG
	CodeKeyH
	CodeKeyI
	CodeKeyJ
	CodeKeyK
	CodeKeyL
	CodeKeyM
	CodeKeyN
	CodeKeyO
	CodeKeyP
	CodeKeyQ
	CodeKeyR
	CodeKeyS
	CodeKeyT
	CodeKeyU
	CodeKeyV
	CodeKeyW
	CodeKeyX
	CodeKeyY
	CodeKeyZ
	CodeMinus
	CodePeriod
	CodeQuote
	CodeSemicolon
	CodeSlash

	// Functional keys
	CodeAltLeft
	CodeAltRight
	CodeBackspace
	CodeCapsLock
	CodeContextMenu
	CodeControlLeft
	CodeControlRight
	CodeEnter
	CodeSuperLeft
	CodeSuperRight
	CodeShiftLeft
	CodeShiftRight
	CodeSpace
	CodeTab

	// Japanese and Korean keys
	CodeConvert
	CodeKanaMode
	CodeLang1
	CodeLang2
	CodeLang3
	CodeLang4
	CodeLang5
	CodeNonConvert

	// Control pad
	CodeDelete
	CodeEnd
	CodeHelp
	CodeHome
	CodeInsert
	CodePageDown
	CodePageUp

	// Arrow pad
	CodeArrowDown
	CodeArrowLeft
	CodeArrowRight
	CodeArrowUp

	// Numpad
	CodeNumLock
	CodeNumpad0
	CodeNumpad1
	CodeNumpad2
	CodeNumpad3
	CodeNumpad4
	CodeNumpad5
	CodeNumpad6
	CodeNumpad7
	CodeNumpad8
	CodeNumpad9
	CodeNumpadAdd
	CodeNumpadBackspace
	CodeNumpadClear
	CodeNumpadClearEntry
	CodeNumpadComma
	CodeNumpadDecimal
	CodeNumpadDivide
	CodeNumpadEnter
	CodeNumpadEqual
	CodeNumpadHash
	CodeNumpadMemoryAdd
	CodeNumpadMemoryClear
	CodeNumpadMemoryRecall
	CodeNumpadMemoryStore
	CodeNumpadMemorySubtract
	CodeNumpadMultiply
	CodeNumpadParenLeft
	CodeNumpadParenRight
	CodeNumpadStar
	CodeNumpadSubtract

	// Function section
	CodeEscape
	CodeFn
	CodeFnLock
	CodePrintScreen
	CodeScrollLock
	CodePause

	// Media keys
	CodeBrowserBack
	CodeBrowserFavorites
	CodeBrowserForward
	CodeBrowserHome
	CodeBrowserRefresh
	CodeBrowserSearch
	CodeBrowserStop
	CodeEject
	CodeLaunchApp1
	CodeLaunchApp2
	CodeLaunchMail
	CodeMediaPlayPause
	CodeMediaSelect
	CodeMediaStop
	CodeMediaTrackNext
	CodeMediaTrackPrevious
	CodePower
	CodeSleep
	CodeAudioVolumeDown
	CodeAudioVolumeMute
	CodeAudioVolumeUp
	CodeWakeUp

	// Legacy modifier and editing keys
	CodeMeta
	CodeHyper
	CodeTurbo
	CodeAbort
	CodeResume
	CodeSuspend
	CodeAgain
	CodeCopy
	CodeCut
	CodeFind
	CodeOpen
	CodePaste
	CodeProps
	CodeSelect
	CodeUndo
	CodeHiragana
	CodeKatakana

	// Function keys
	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
	CodeF13
	CodeF14
	CodeF15
	CodeF16
	CodeF17
	CodeF18
	CodeF19
	CodeF20
	CodeF21
	CodeF22
	CodeF23
	CodeF24
	CodeF25
	CodeF26
	CodeF27
	CodeF28
	CodeF29
	CodeF30
	CodeF31
	CodeF32
	CodeF33
	CodeF34
	CodeF35

	codeCount
)

var codeNames = [codeCount]string{
	CodeUnidentified: "Unidentified",

	// Writing system keys
	CodeBackquote:     "Backquote",
	CodeBackslash:     "Backslash",
	CodeBracketLeft:   "BracketLeft",
	CodeBracketRight:  "BracketRight",
	CodeComma:         "Comma",
	CodeDigit0:        "Digit0",
	CodeDigit1:        "Digit1",
	CodeDigit2:        "Digit2",
	CodeDigit3:        "Digit3",
	CodeDigit4:        "Digit4",
	CodeDigit5:        "Digit5",
	CodeDigit6:        "Digit6",
	CodeDigit7:        "Digit7",
	CodeDigit8:        "Digit8",
	CodeDigit9:        "Digit9",
	CodeEqual:         "Equal",
	CodeIntlBackslash: "IntlBackslash",
	CodeIntlRo:        "IntlRo",
	CodeIntlYen:       "IntlYen",
	CodeKeyA:          "KeyA",
	CodeKeyB:          "KeyB",
	CodeKeyC:          "KeyC",
	CodeKeyD:          "KeyD",
	CodeKeyE:          "KeyE",
	CodeKeyF:          "KeyF",
	CodeKeyG:          "KeyG",
	CodeKeyH:          "KeyH",
	CodeKeyI:          "KeyI",
	CodeKeyJ:          "KeyJ",
	CodeKeyK:          "KeyK",
	CodeKeyL:          "KeyL",
	CodeKeyM:          "KeyM",
	CodeKeyN:          "KeyN",
	CodeKeyO:          "KeyO",
	CodeKeyP:          "KeyP",
	CodeKeyQ:          "KeyQ",
	CodeKeyR:          "KeyR",
	CodeKeyS:          "KeyS",
	CodeKeyT:          "KeyT",
	CodeKeyU:          "KeyU",
	CodeKeyV:          "KeyV",
	CodeKeyW:          "KeyW",
	CodeKeyX:          "KeyX",
	CodeKeyY:          "KeyY",
	CodeKeyZ:          "KeyZ",
	CodeMinus:         "Minus",
	CodePeriod:        "Period",
	CodeQuote:         "Quote",
	CodeSemicolon:     "Semicolon",
	CodeSlash:         "Slash",

	// Functional keys
	CodeAltLeft:      "AltLeft",
	CodeAltRight:     "AltRight",
	CodeBackspace:    "Backspace",
	CodeCapsLock:     "CapsLock",
	CodeContextMenu:  "ContextMenu",
	CodeControlLeft:  "ControlLeft",
	CodeControlRight: "ControlRight",
	CodeEnter:        "Enter",
	CodeSuperLeft:    "SuperLeft",
	CodeSuperRight:   "SuperRight",
	CodeShiftLeft:    "ShiftLeft",
	CodeShiftRight:   "ShiftRight",
	CodeSpace:        "Space",
	CodeTab:          "Tab",

	// Japanese and Korean keys
	CodeConvert:    "Convert",
	CodeKanaMode:   "KanaMode",
	CodeLang1:      "Lang1",
	CodeLang2:      "Lang2",
	CodeLang3:      "Lang3",
	CodeLang4:      "Lang4",
	CodeLang5:      "Lang5",
	CodeNonConvert: "NonConvert",

	// Control pad
	CodeDelete:   "Delete",
	CodeEnd:      "End",
	CodeHelp:     "Help",
	CodeHome:     "Home",
	CodeInsert:   "Insert",
	CodePageDown: "PageDown",
	CodePageUp:   "PageUp",

	// Arrow pad
	CodeArrowDown:  "ArrowDown",
	CodeArrowLeft:  "ArrowLeft",
	CodeArrowRight: "ArrowRight",
	CodeArrowUp:    "ArrowUp",

	// Numpad
	CodeNumLock:              "NumLock",
	CodeNumpad0:              "Numpad0",
	CodeNumpad1:              "Numpad1",
	CodeNumpad2:              "Numpad2",
	CodeNumpad3:              "Numpad3",
	CodeNumpad4:              "Numpad4",
	CodeNumpad5:              "Numpad5",
	CodeNumpad6:              "Numpad6",
	CodeNumpad7:              "Numpad7",
	CodeNumpad8:              "Numpad8",
	CodeNumpad9:              "Numpad9",
	CodeNumpadAdd:            "NumpadAdd",
	CodeNumpadBackspace:      "NumpadBackspace",
	CodeNumpadClear:          "NumpadClear",
	CodeNumpadClearEntry:     "NumpadClearEntry",
	CodeNumpadComma:          "NumpadComma",
	CodeNumpadDecimal:        "NumpadDecimal",
	CodeNumpadDivide:         "NumpadDivide",
	CodeNumpadEnter:          "NumpadEnter",
	CodeNumpadEqual:          "NumpadEqual",
	CodeNumpadHash:           "NumpadHash",
	CodeNumpadMemoryAdd:      "NumpadMemoryAdd",
	CodeNumpadMemoryClear:    "NumpadMemoryClear",
	CodeNumpadMemoryRecall:   "NumpadMemoryRecall",
	CodeNumpadMemoryStore:    "NumpadMemoryStore",
	CodeNumpadMemorySubtract: "NumpadMemorySubtract",
	CodeNumpadMultiply:       "NumpadMultiply",
	CodeNumpadParenLeft:      "NumpadParenLeft",
	CodeNumpadParenRight:     "NumpadParenRight",
	CodeNumpadStar:           "NumpadStar",
	CodeNumpadSubtract:       "NumpadSubtract",

	// Function section
	CodeEscape:      "Escape",
	CodeFn:          "Fn",
	CodeFnLock:      "FnLock",
	CodePrintScreen: "PrintScreen",
	CodeScrollLock:  "ScrollLock",
	CodePause:       "Pause",

	// Media keys
	CodeBrowserBack:        "BrowserBack",
	CodeBrowserFavorites:   "BrowserFavorites",
	CodeBrowserForward:     "BrowserForward",
	CodeBrowserHome:        "BrowserHome",
	CodeBrowserRefresh:     "BrowserRefresh",
	CodeBrowserSearch:      "BrowserSearch",
	CodeBrowserStop:        "BrowserStop",
	CodeEject:              "Eject",
	CodeLaunchApp1:         "LaunchApp1",
	CodeLaunchApp2:         "LaunchApp2",
	CodeLaunchMail:         "LaunchMail",
	CodeMediaPlayPause:     "MediaPlayPause",
	CodeMediaSelect:        "MediaSelect",
	CodeMediaStop:          "MediaStop",
	CodeMediaTrackNext:     "MediaTrackNext",
	CodeMediaTrackPrevious: "MediaTrackPrevious",
	CodePower:              "Power",
	CodeSleep:              "Sleep",
	CodeAudioVolumeDown:    "AudioVolumeDown",
	CodeAudioVolumeMute:    "AudioVolumeMute",
	CodeAudioVolumeUp:      "AudioVolumeUp",
	CodeWakeUp:             "WakeUp",

	// Legacy modifier and editing keys
	CodeMeta:     "Meta",
	CodeHyper:    "Hyper",
	CodeTurbo:    "Turbo",
	CodeAbort:    "Abort",
	CodeResume:   "Resume",
	CodeSuspend:  "Suspend",
	CodeAgain:    "Again",
	CodeCopy:     "Copy",
	CodeCut:      "Cut",
	CodeFind:     "Find",
	CodeOpen:     "Open",
	CodePaste:    "Paste",
	CodeProps:    "Props",
	CodeSelect:   "Select",
	CodeUndo:     "Undo",
	CodeHiragana: "Hiragana",
	CodeKatakana: "Katakana",

	// Function keys
	CodeF1:  "F1",
	CodeF2:  "F2",
	CodeF3:  "F3",
	CodeF4:  "F4",
	CodeF5:  "F5",
	CodeF6:  "F6",
	CodeF7:  "F7",
	CodeF8:  "F8",
	CodeF9:  "F9",
	CodeF10: "F10",
	CodeF11: "F11",
	CodeF12: "F12",
	CodeF13: "F13",
	CodeF14: "F14",
	CodeF15: "F15",
	CodeF16: "F16",
	CodeF17: "F17",
	CodeF18: "F18",
	CodeF19: "F19",
	CodeF20: "F20",
	CodeF21: "F21",
	CodeF22: "F22",
	CodeF23: "F23",
	CodeF24: "F24",
	CodeF25: "F25",
	CodeF26: "F26",
	CodeF27: "F27",
	CodeF28: "F28",
	CodeF29: "F29",
	CodeF30: "F30",
	CodeF31: "F31",
	CodeF32: "F32",
	CodeF33: "F33",
	CodeF34: "F34",
	CodeF35: "F35",
}

// String returns the W3C name of the physical code.
func (c Code) String() string {
	if c < codeCount {
		return codeNames[c]
	}
	return fmt.Sprintf("Code(%d)", c)
}

// IsValid returns true if c is one of the defined physical codes.
func (c Code) IsValid() bool {
	return c > CodeUnidentified && c < codeCount
}
