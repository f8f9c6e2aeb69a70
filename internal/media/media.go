// Package media classifies entries by extension for filtering, coloring and
// launching.
package media

import (
	"strings"

	fsutil "github.com/kk-code-lab/mpl/internal/fs"
)

// Category groups extensions that share a color and launch behavior.
type Category int

const (
	CategoryNone Category = iota
	CategoryDirectory
	CategoryAudio
	CategoryVideo
	CategoryOther
	CategorySubtitle
)

// Extension sets, lower case and without the dot.
var (
	AudioExts    = []string{"aac", "flac", "m4a", "mp3", "ogg", "opus", "wav", "wma"}
	VideoExts    = []string{"avi", "iso", "m2ts", "mkv", "mov", "mp4", "mpg", "webm", "wmv"}
	OtherExts    = []string{"cue", "m3u", "m3u8", "pls"}
	SubtitleExts = []string{"ass", "idx", "lrc", "srt", "sub", "vtt"}
)

// DiscImageExt marks optical-disc images, launched through a disc device.
const DiscImageExt = "iso"

var categoryByExt = buildCategoryIndex()

func buildCategoryIndex() map[string]Category {
	index := make(map[string]Category)
	for _, group := range []struct {
		exts []string
		cat  Category
	}{
		{AudioExts, CategoryAudio},
		{VideoExts, CategoryVideo},
		{OtherExts, CategoryOther},
		{SubtitleExts, CategorySubtitle},
	} {
		for _, ext := range group.exts {
			index[ext] = group.cat
		}
	}
	return index
}

// PlayerExtensions returns every extension the browser shows by default.
func PlayerExtensions() map[string]struct{} {
	set := make(map[string]struct{}, len(categoryByExt))
	for ext := range categoryByExt {
		set[ext] = struct{}{}
	}
	return set
}

// CategoryOf classifies an extension, case-insensitively.
func CategoryOf(ext string) Category {
	return categoryByExt[strings.ToLower(ext)]
}

// Classify returns the category for an entry.
func Classify(entry fsutil.Entry) Category {
	if entry.IsDir {
		return CategoryDirectory
	}
	return CategoryOf(entry.Ext())
}

// IsSubtitle reports whether the entry is a subtitle file.
func IsSubtitle(entry fsutil.Entry) bool {
	return !entry.IsDir && CategoryOf(entry.Ext()) == CategorySubtitle
}

// IsDiscImage reports whether the entry is an optical-disc image.
func IsDiscImage(entry fsutil.Entry) bool {
	return !entry.IsDir && entry.LowerExt() == DiscImageExt
}

// DiscProfile selects the disc device used to open an image.
type DiscProfile int

const (
	DiscDVD DiscProfile = iota
	DiscBluRay
)

// BluRayThreshold is the image size at which a disc is assumed to be Blu-ray.
// A dual-layer DVD holds at most 8.5 GB.
const BluRayThreshold int64 = 8_500_000_000

// ProfileForSize picks DVD below the threshold and Blu-ray at or above it.
func ProfileForSize(size int64) DiscProfile {
	if size < BluRayThreshold {
		return DiscDVD
	}
	return DiscBluRay
}

func (p DiscProfile) String() string {
	switch p {
	case DiscBluRay:
		return "bluray"
	default:
		return "dvd"
	}
}
