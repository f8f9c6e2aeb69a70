package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	StatusBg    tcell.Color
	StatusFg    tcell.Color
	DirectoryFg tcell.Color
	AudioFg     tcell.Color
	VideoFg     tcell.Color
	SubtitleFg  tcell.Color
	OtherFg     tcell.Color
	LastItemFg  tcell.Color
	FileFg      tcell.Color
	MatchFg     tcell.Color
	MessageFg   tcell.Color
	ErrorFg     tcell.Color
	HintFg      tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		StatusBg:    tcell.ColorDefault,
		StatusFg:    tcell.ColorDefault,
		DirectoryFg: tcell.ColorBlue,
		AudioFg:     tcell.ColorYellow,
		VideoFg:     tcell.ColorLime,
		SubtitleFg:  tcell.ColorFuchsia,
		OtherFg:     tcell.Color208,
		LastItemFg:  tcell.ColorAqua,
		FileFg:      tcell.ColorDefault,
		MatchFg:     tcell.ColorRed,
		MessageFg:   tcell.ColorDefault,
		ErrorFg:     tcell.ColorRed,
		HintFg:      tcell.Color244,
	}
}
