package key

import "fmt"

// Key identifies a named logical key value: the meaning the host
// platform assigns to a key press, independent of where the key sits
// on the keyboard.
//
// Literal characters use KeyCharacter; the character itself is stored
// in Logical.Text.
type Key uint16

const (
	// KeyUnidentified is a key the host could not identify.
	KeyUnidentified Key = iota

	// KeyCharacter is used for keys that produce text.
	KeyCharacter

	// KeyDead is a dead key used to compose the next character.
	KeyDead

	// Modifier keys
	KeyAlt
	KeyAltGraph
	KeyCapsLock
	KeyControl
	KeyFn
	KeyFnLock
	KeyMeta
	KeyNumLock
	KeyScrollLock
	KeyShift
	KeySymbol
	KeySymbolLock
	KeyHyper
	KeySuper

	// Whitespace keys
	KeyEnter
	KeyTab

	// Navigation keys
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyEnd
	KeyHome
	KeyPageDown
	KeyPageUp

	// Editing keys
	KeyBackspace
	KeyClear
	KeyCopy
	KeyCrSel
	KeyCut
	KeyDelete
	KeyEraseEof
	KeyExSel
	KeyInsert
	KeyPaste
	KeyRedo
	KeyUndo

	// UI keys
	KeyAccept
	KeyAgain
	KeyAttn
	KeyCancel
	KeyContextMenu
	KeyEscape
	KeyExecute
	KeyFind
	KeyHelp
	KeyPause
	KeyPlay
	KeyProps
	KeySelect
	KeyZoomIn
	KeyZoomOut

	// Device keys
	KeyBrightnessDown
	KeyBrightnessUp
	KeyEject
	KeyLogOff
	KeyPower
	KeyPowerOff
	KeyPrintScreen
	KeyHibernate
	KeyStandby
	KeyWakeUp

	// IME and composition keys
	KeyAllCandidates
	KeyAlphanumeric
	KeyCodeInput
	KeyCompose
	KeyConvert
	KeyFinalMode
	KeyGroupFirst
	KeyGroupLast
	KeyGroupNext
	KeyGroupPrevious
	KeyModeChange
	KeyNextCandidate
	KeyNonConvert
	KeyPreviousCandidate
	KeyProcess
	KeySingleCandidate

	// Korean, Japanese and Chinese keys
	KeyHangulMode
	KeyHanjaMode
	KeyJunjaMode
	KeyEisu
	KeyHankaku
	KeyHiragana
	KeyHiraganaKatakana
	KeyKanaMode
	KeyKanjiMode
	KeyKatakana
	KeyRomaji
	KeyZenkaku
	KeyZenkakuHankaku

	// General-purpose soft keys
	KeySoft1
	KeySoft2
	KeySoft3
	KeySoft4

	// Multimedia keys
	KeyChannelDown
	KeyChannelUp
	KeyClose
	KeyMailForward
	KeyMailReply
	KeyMailSend
	KeyMediaClose
	KeyMediaFastForward
	KeyMediaPause
	KeyMediaPlay
	KeyMediaPlayPause
	KeyMediaRecord
	KeyMediaRewind
	KeyMediaStop
	KeyMediaTrackNext
	KeyMediaTrackPrevious
	KeyNew
	KeyOpen
	KeyPrint
	KeySave
	KeySpellCheck

	// Multimedia numpad keys
	KeyKey11
	KeyKey12

	// Audio keys
	KeyAudioBalanceLeft
	KeyAudioBalanceRight
	KeyAudioBassBoostDown
	KeyAudioBassBoostToggle
	KeyAudioBassBoostUp
	KeyAudioFaderFront
	KeyAudioFaderRear
	KeyAudioSurroundModeNext
	KeyAudioTrebleDown
	KeyAudioTrebleUp
	KeyAudioVolumeDown
	KeyAudioVolumeUp
	KeyAudioVolumeMute
	KeyMicrophoneToggle
	KeyMicrophoneVolumeDown
	KeyMicrophoneVolumeUp
	KeyMicrophoneVolumeMute

	// Speech keys
	KeySpeechCorrectionList
	KeySpeechInputToggle

	// Application launch keys
	KeyLaunchApplication1
	KeyLaunchApplication2
	KeyLaunchCalendar
	KeyLaunchContacts
	KeyLaunchMail
	KeyLaunchMediaPlayer
	KeyLaunchMusicPlayer
	KeyLaunchPhone
	KeyLaunchScreenSaver
	KeyLaunchSpreadsheet
	KeyLaunchWebBrowser
	KeyLaunchWebCam
	KeyLaunchWordProcessor

	// Browser keys
	KeyBrowserBack
	KeyBrowserFavorites
	KeyBrowserForward
	KeyBrowserHome
	KeyBrowserRefresh
	KeyBrowserSearch
	KeyBrowserStop

	// Mobile phone keys
	KeyAppSwitch
	KeyCall
	KeyCamera
	KeyCameraFocus
	KeyEndCall
	KeyGoBack
	KeyGoHome
	KeyHeadsetHook
	KeyLastNumberRedial
	KeyNotification
	KeyMannerMode
	KeyVoiceDial

	// TV keys
	KeyTV
	KeyTV3DMode
	KeyTVAntennaCable
	KeyTVAudioDescription
	KeyTVAudioDescriptionMixDown
	KeyTVAudioDescriptionMixUp
	KeyTVContentsMenu
	KeyTVDataService
	KeyTVInput
	KeyTVInputComponent1
	KeyTVInputComponent2
	KeyTVInputComposite1
	KeyTVInputComposite2
	KeyTVInputHDMI1
	KeyTVInputHDMI2
	KeyTVInputHDMI3
	KeyTVInputHDMI4
	KeyTVInputVGA1
	KeyTVMediaContext
	KeyTVNetwork
	KeyTVNumberEntry
	KeyTVPower
	KeyTVRadioService
	KeyTVSatellite
	KeyTVSatelliteBS
	KeyTVSatelliteCS
	KeyTVSatelliteToggle
	KeyTVTerrestrialAnalog
	KeyTVTerrestrialDigital
	KeyTVTimer

	// Media controller keys
	KeyAVRInput
	KeyAVRPower
	KeyColorF0Red
	KeyColorF1Green
	KeyColorF2Yellow
	KeyColorF3Blue
	KeyColorF4Grey
	KeyColorF5Brown
	KeyClosedCaptionToggle
	KeyDimmer
	KeyDisplaySwap
	KeyDVR
	KeyExit
	KeyFavoriteClear0
	KeyFavoriteClear1
	KeyFavoriteClear2
	KeyFavoriteClear3
	KeyFavoriteRecall0
	KeyFavoriteRecall1
	KeyFavoriteRecall2
	KeyFavoriteRecall3
	KeyFavoriteStore0
	KeyFavoriteStore1
	KeyFavoriteStore2
	KeyFavoriteStore3
	KeyGuide
	KeyGuideNextDay
	KeyGuidePreviousDay
	KeyInfo
	KeyInstantReplay
	KeyLink
	KeyListProgram
	KeyLiveContent
	KeyLock
	KeyMediaApps
	KeyMediaAudioTrack
	KeyMediaLast
	KeyMediaSkipBackward
	KeyMediaSkipForward
	KeyMediaStepBackward
	KeyMediaStepForward
	KeyMediaTopMenu
	KeyNavigateIn
	KeyNavigateNext
	KeyNavigateOut
	KeyNavigatePrevious
	KeyNextFavoriteChannel
	KeyNextUserProfile
	KeyOnDemand
	KeyPairing
	KeyPinPDown
	KeyPinPMove
	KeyPinPToggle
	KeyPinPUp
	KeyPlaySpeedDown
	KeyPlaySpeedReset
	KeyPlaySpeedUp
	KeyRandomToggle
	KeyRcLowBattery
	KeyRecordSpeedNext
	KeyRfBypass
	KeyScanChannelsToggle
	KeyScreenModeNext
	KeySettings
	KeySplitScreenToggle
	KeySTBInput
	KeySTBPower
	KeySubtitle
	KeyTeletext
	KeyVideoModeNext
	KeyWink
	KeyZoomToggle

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyF25
	KeyF26
	KeyF27
	KeyF28
	KeyF29
	KeyF30
	KeyF31
	KeyF32
	KeyF33
	KeyF34
	KeyF35

	keyCount
)

// keyLabels holds the canonical display name of every labelled Key.
// Keys missing from the table render as "Unidentified".
var keyLabels = [keyCount]string{
	// Modifier keys
	KeyAlt:        "Alt",
	KeyAltGraph:   "AltGraph",
	KeyCapsLock:   "CapsLock",
	KeyControl:    "Control",
	KeyFn:         "Fn",
	KeyFnLock:     "FnLock",
	KeyMeta:       "Meta",
	KeyNumLock:    "NumLock",
	KeyScrollLock: "ScrollLock",
	KeyShift:      "Shift",
	KeySymbol:     "Symbol",
	KeySymbolLock: "SymbolLock",
	KeyHyper:      "Hyper",
	KeySuper:      "Super",

	// Whitespace keys
	KeyEnter: "Enter",
	KeyTab:   "Tab",

	// Navigation keys
	KeyArrowDown:  "ArrowDown",
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowRight: "ArrowRight",
	KeyArrowUp:    "ArrowUp",
	KeyEnd:        "End",
	KeyHome:       "Home",
	KeyPageDown:   "PageDown",
	KeyPageUp:     "PageUp",

	// Editing keys
	KeyBackspace: "Backspace",
	KeyClear:     "Clear",
	KeyCopy:      "Copy",
	KeyCrSel:     "CrSel",
	KeyCut:       "Cut",
	KeyDelete:    "Delete",
	KeyEraseEof:  "EraseEof",
	KeyExSel:     "ExSel",
	KeyInsert:    "Insert",
	KeyPaste:     "Paste",
	KeyRedo:      "Redo",
	KeyUndo:      "Undo",

	// UI keys
	KeyAccept:      "Accept",
	KeyAgain:       "Again",
	KeyAttn:        "Attn",
	KeyCancel:      "Cancel",
	KeyContextMenu: "ContextMenu",
	KeyEscape:      "Escape",
	KeyExecute:     "Execute",
	KeyFind:        "Find",
	KeyHelp:        "Help",
	KeyPause:       "Pause",
	KeyPlay:        "Play",
	KeyProps:       "Props",
	KeySelect:      "Select",
	KeyZoomIn:      "ZoomIn",
	KeyZoomOut:     "ZoomOut",

	// Device keys
	KeyBrightnessDown: "BrightnessDown",
	KeyBrightnessUp:   "BrightnessUp",
	KeyEject:          "Eject",
	KeyLogOff:         "LogOff",
	KeyPower:          "Power",
	KeyPowerOff:       "PowerOff",
	KeyPrintScreen:    "PrintScreen",
	KeyHibernate:      "Hibernate",
	KeyStandby:        "Standby",
	KeyWakeUp:         "WakeUp",

	// IME and composition keys
	KeyAllCandidates:     "AllCandidates",
	KeyAlphanumeric:      "Alphanumeric",
	KeyCodeInput:         "CodeInput",
	KeyCompose:           "Compose",
	KeyConvert:           "Convert",
	KeyFinalMode:         "FinalMode",
	KeyGroupFirst:        "GroupFirst",
	KeyGroupLast:         "GroupLast",
	KeyGroupNext:         "GroupNext",
	KeyGroupPrevious:     "GroupPrevious",
	KeyModeChange:        "ModeChange",
	KeyNextCandidate:     "NextCandidate",
	KeyNonConvert:        "NonConvert",
	KeyPreviousCandidate: "PreviousCandidate",
	KeyProcess:           "Process",
	KeySingleCandidate:   "SingleCandidate",

	// Korean, Japanese and Chinese keys
	KeyHangulMode:       "HangulMode",
	KeyHanjaMode:        "HanjaMode",
	KeyJunjaMode:        "JunjaMode",
	KeyEisu:             "Eisu",
	KeyHankaku:          "Hankaku",
	KeyHiragana:         "Hiragana",
	KeyHiraganaKatakana: "HiraganaKatakana",
	KeyKanaMode:         "KanaMode",
	KeyKanjiMode:        "KanjiMode",
	KeyKatakana:         "Katakana",
	KeyRomaji:           "Romaji",
	KeyZenkaku:          "Zenkaku",
	KeyZenkakuHankaku:   "ZenkakuHankaku",

	// General-purpose soft keys
	KeySoft1: "Soft1",
	KeySoft2: "Soft2",
	KeySoft3: "Soft3",
	KeySoft4: "Soft4",

	// Multimedia keys
	KeyChannelDown:        "ChannelDown",
	KeyChannelUp:          "ChannelUp",
	KeyClose:              "Close",
	KeyMailForward:        "MailForward",
	KeyMailReply:          "MailReply",
	KeyMailSend:           "MailSend",
	KeyMediaClose:         "MediaClose",
	KeyMediaFastForward:   "MediaFastForward",
	KeyMediaPause:         "MediaPause",
	KeyMediaPlay:          "MediaPlay",
	KeyMediaPlayPause:     "MediaPlayPause",
	KeyMediaRecord:        "MediaRecord",
	KeyMediaRewind:        "MediaRewind",
	KeyMediaStop:          "MediaStop",
	KeyMediaTrackNext:     "MediaTrackNext",
	KeyMediaTrackPrevious: "MediaTrackPrevious",
	KeyNew:                "New",
	KeyOpen:               "Open",
	KeyPrint:              "Print",
	KeySave:               "Save",
	KeySpellCheck:         "SpellCheck",

	// Multimedia numpad keys
	KeyKey11: "Key11",
	KeyKey12: "Key12",

	// Audio keys
	KeyAudioBalanceLeft:      "AudioBalanceLeft",
	KeyAudioBalanceRight:     "AudioBalanceRight",
	KeyAudioBassBoostDown:    "AudioBassBoostDown",
	KeyAudioBassBoostToggle:  "AudioBassBoostToggle",
	KeyAudioBassBoostUp:      "AudioBassBoostUp",
	KeyAudioFaderFront:       "AudioFaderFront",
	KeyAudioFaderRear:        "AudioFaderRear",
	KeyAudioSurroundModeNext: "AudioSurroundModeNext",
	KeyAudioTrebleDown:       "AudioTrebleDown",
	KeyAudioTrebleUp:         "AudioTrebleUp",
	KeyAudioVolumeDown:       "AudioVolumeDown",
	KeyAudioVolumeUp:         "AudioVolumeUp",
	KeyAudioVolumeMute:       "AudioVolumeMute",
	KeyMicrophoneToggle:      "MicrophoneToggle",
	KeyMicrophoneVolumeDown:  "MicrophoneVolumeDown",
	KeyMicrophoneVolumeUp:    "MicrophoneVolumeUp",
	KeyMicrophoneVolumeMute:  "MicrophoneVolumeMute",

	// Speech keys
	KeySpeechCorrectionList: "SpeechCorrectionList",
	KeySpeechInputToggle:    "SpeechInputToggle",

	// Application launch keys
	KeyLaunchApplication1:  "LaunchApplication1",
	KeyLaunchApplication2:  "LaunchApplication2",
	KeyLaunchCalendar:      "LaunchCalendar",
	KeyLaunchContacts:      "LaunchContacts",
	KeyLaunchMail:          "LaunchMail",
	KeyLaunchMediaPlayer:   "LaunchMediaPlayer",
	KeyLaunchMusicPlayer:   "LaunchMusicPlayer",
	KeyLaunchPhone:         "LaunchPhone",
	KeyLaunchScreenSaver:   "LaunchScreenSaver",
	KeyLaunchSpreadsheet:   "LaunchSpreadsheet",
	KeyLaunchWebBrowser:    "LaunchWebBrowser",
	KeyLaunchWebCam:        "LaunchWebCam",
	KeyLaunchWordProcessor: "LaunchWordProcessor",

	// Browser keys
	KeyBrowserBack:      "BrowserBack",
	KeyBrowserFavorites: "BrowserFavorites",
	KeyBrowserForward:   "BrowserForward",
	KeyBrowserHome:      "BrowserHome",
	KeyBrowserRefresh:   "BrowserRefresh",
	KeyBrowserSearch:    "BrowserSearch",
	KeyBrowserStop:      "BrowserStop",

	// Mobile phone keys
	KeyAppSwitch:        "AppSwitch",
	KeyCall:             "Call",
	KeyCamera:           "Camera",
	KeyCameraFocus:      "CameraFocus",
	KeyEndCall:          "EndCall",
	KeyGoBack:           "GoBack",
	KeyGoHome:           "GoHome",
	KeyHeadsetHook:      "HeadsetHook",
	KeyLastNumberRedial: "LastNumberRedial",
	KeyNotification:     "Notification",
	KeyMannerMode:       "MannerMode",
	KeyVoiceDial:        "VoiceDial",

	// TV keys
	KeyTV:                        "TV",
	KeyTV3DMode:                  "TV3DMode",
	KeyTVAntennaCable:            "TVAntennaCable",
	KeyTVAudioDescription:        "TVAudioDescription",
	KeyTVAudioDescriptionMixDown: "TVAudioDescriptionMixDown",
	KeyTVAudioDescriptionMixUp:   "TVAudioDescriptionMixUp",
	KeyTVContentsMenu:            "TVContentsMenu",
	KeyTVDataService:             "TVDataService",
	KeyTVInput:                   "TVInput",
	KeyTVInputComponent1:         "TVInputComponent1",
	KeyTVInputComponent2:         "TVInputComponent2",
	KeyTVInputComposite1:         "TVInputComposite1",
	KeyTVInputComposite2:         "TVInputComposite2",
	KeyTVInputHDMI1:              "TVInputHDMI1",
	KeyTVInputHDMI2:              "TVInputHDMI2",
	KeyTVInputHDMI3:              "TVInputHDMI3",
	KeyTVInputHDMI4:              "TVInputHDMI4",
	KeyTVInputVGA1:               "TVInputVGA1",
	KeyTVMediaContext:            "TVMediaContext",
	KeyTVNetwork:                 "TVNetwork",
	KeyTVNumberEntry:             "TVNumberEntry",
	KeyTVPower:                   "TVPower",
	KeyTVRadioService:            "TVRadioService",
	KeyTVSatellite:               "TVSatellite",
	KeyTVSatelliteBS:             "TVSatelliteBS",
	KeyTVSatelliteCS:             "TVSatelliteCS",
	KeyTVSatelliteToggle:         "TVSatelliteToggle",
	KeyTVTerrestrialAnalog:       "TVTerrestrialAnalog",
	KeyTVTerrestrialDigital:      "TVTerrestrialDigital",
	KeyTVTimer:                   "TVTimer",

	// Media controller keys
	KeyAVRInput:            "AVRInput",
	KeyAVRPower:            "AVRPower",
	KeyColorF0Red:          "ColorF0Red",
	KeyColorF1Green:        "ColorF1Green",
	KeyColorF2Yellow:       "ColorF2Yellow",
	KeyColorF3Blue:         "ColorF3Blue",
	KeyColorF4Grey:         "ColorF4Grey",
	KeyColorF5Brown:        "ColorF5Brown",
	KeyClosedCaptionToggle: "ClosedCaptionToggle",
	KeyDimmer:              "Dimmer",
	KeyDisplaySwap:         "DisplaySwap",
	KeyDVR:                 "DVR",
	KeyExit:                "Exit",
	KeyFavoriteClear0:      "FavoriteClear0",
	KeyFavoriteClear1:      "FavoriteClear1",
	KeyFavoriteClear2:      "FavoriteClear2",
	KeyFavoriteClear3:      "FavoriteClear3",
	KeyFavoriteRecall0:     "FavoriteRecall0",
	KeyFavoriteRecall1:     "FavoriteRecall1",
	KeyFavoriteRecall2:     "FavoriteRecall2",
	KeyFavoriteRecall3:     "FavoriteRecall3",
	KeyFavoriteStore0:      "FavoriteStore0",
	KeyFavoriteStore1:      "FavoriteStore1",
	KeyFavoriteStore2:      "FavoriteStore2",
	KeyFavoriteStore3:      "FavoriteStore3",
	KeyGuide:               "Guide",
	KeyGuideNextDay:        "GuideNextDay",
	KeyGuidePreviousDay:    "GuidePreviousDay",
	KeyInfo:                "Info",
	KeyInstantReplay:       "InstantReplay",
	KeyLink:                "Link",
	KeyListProgram:         "ListProgram",
	KeyLiveContent:         "LiveContent",
	KeyLock:                "Lock",
	KeyMediaApps:           "MediaApps",
	KeyMediaAudioTrack:     "MediaAudioTrack",
	KeyMediaLast:           "MediaLast",
	KeyMediaSkipBackward:   "MediaSkipBackward",
	KeyMediaSkipForward:    "MediaSkipForward",
	KeyMediaStepBackward:   "MediaStepBackward",
	KeyMediaStepForward:    "MediaStepForward",
	KeyMediaTopMenu:        "MediaTopMenu",
	KeyNavigateIn:          "NavigateIn",
	KeyNavigateNext:        "NavigateNext",
	KeyNavigateOut:         "NavigateOut",
	KeyNavigatePrevious:    "NavigatePrevious",
	KeyNextFavoriteChannel: "NextFavoriteChannel",
	KeyNextUserProfile:     "NextUserProfile",
	KeyOnDemand:            "OnDemand",
	KeyPairing:             "Pairing",
	KeyPinPDown:            "PinPDown",
	KeyPinPMove:            "PinPMove",
	KeyPinPToggle:          "PinPToggle",
	KeyPinPUp:              "PinPUp",
	KeyPlaySpeedDown:       "PlaySpeedDown",
	KeyPlaySpeedReset:      "PlaySpeedReset",
	KeyPlaySpeedUp:         "PlaySpeedUp",
	KeyRandomToggle:        "RandomToggle",
	KeyRcLowBattery:        "RcLowBattery",
	KeyRecordSpeedNext:     "RecordSpeedNext",
	KeyRfBypass:            "RfBypass",
	KeyScanChannelsToggle:  "ScanChannelsToggle",
	KeyScreenModeNext:      "ScreenModeNext",
	KeySettings:            "Settings",
	KeySplitScreenToggle:   "SplitScreenToggle",
	KeySTBInput:            "STBInput",
	KeySTBPower:            "STBPower",
	KeySubtitle:            "Subtitle",
	KeyTeletext:            "Teletext",
	KeyVideoModeNext:       "VideoModeNext",
	KeyWink:                "Wink",
	KeyZoomToggle:          "ZoomToggle",

	// Function keys
	KeyF1:  "F1",
	KeyF2:  "F2",
	KeyF3:  "F3",
	KeyF4:  "F4",
	KeyF5:  "F5",
	KeyF6:  "F6",
	KeyF7:  "F7",
	KeyF8:  "F8",
	KeyF9:  "F9",
	KeyF10: "F10",
	KeyF11: "F11",
	KeyF12: "F12",
	KeyF13: "F13",
	KeyF14: "F14",
	KeyF15: "F15",
	KeyF16: "F16",
	KeyF17: "F17",
	KeyF18: "F18",
	KeyF19: "F19",
	KeyF20: "F20",
	KeyF21: "F21",
	KeyF22: "F22",
	KeyF23: "F23",
	KeyF24: "F24",
	KeyF25: "F25",
	KeyF26: "F26",
	KeyF27: "F27",
	KeyF28: "F28",
	KeyF29: "F29",
	KeyF30: "F30",
	KeyF31: "F31",
	KeyF32: "F32",
	KeyF33: "F33",
	KeyF34: "F34",
	KeyF35: "F35",
}

// Label returns the canonical PascalCase name of k, or "" if k has no
// label. The label of KeyMeta does not depend on the host; use
// Token.Render for host-specific output.
func (k Key) Label() string {
	if k >= keyCount {
		return ""
	}
	return keyLabels[k]
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUnidentified:
		return "Unidentified"
	case KeyCharacter:
		return "Character"
	case KeyDead:
		return "Dead"
	}
	if label := k.Label(); label != "" {
		return label
	}
	return fmt.Sprintf("Key(%d)", k)
}

// IsModifier returns true if this is a modifier key.
func (k Key) IsModifier() bool {
	return k >= KeyAlt && k <= KeySuper
}

// IsFunctionKey returns true if this is a function key (F1-F35).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF35
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyArrowDown && k <= KeyArrowUp
}

// IsNavigationKey returns true if this is a navigation key.
func (k Key) IsNavigationKey() bool {
	return k >= KeyArrowDown && k <= KeyPageUp
}

// Logical is the symbolic value of a key press: either a named key or
// a literal character.
type Logical struct {
	// Key is the named value, or KeyCharacter for literal text.
	Key Key

	// Text is the literal character payload. It is only meaningful
	// when Key is KeyCharacter.
	Text string
}

// Named returns the logical value for a named key.
func Named(k Key) Logical {
	return Logical{Key: k}
}

// Text returns the logical value for a literal character.
func Text(s string) Logical {
	return Logical{Key: KeyCharacter, Text: s}
}

// IsCharacter returns true if the logical value is literal text.
func (l Logical) IsCharacter() bool {
	return l.Key == KeyCharacter
}

// String returns the literal text for characters and the key name
// otherwise.
func (l Logical) String() string {
	if l.IsCharacter() {
		return l.Text
	}
	return l.Key.String()
}
