package media

import (
	"testing"

	fsutil "github.com/kk-code-lab/mpl/internal/fs"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		entry fsutil.Entry
		want  Category
	}{
		{fsutil.Entry{Name: "music", IsDir: true}, CategoryDirectory},
		{fsutil.Entry{Name: "dir.mkv", IsDir: true}, CategoryDirectory},
		{fsutil.Entry{Name: "song.FLAC"}, CategoryAudio},
		{fsutil.Entry{Name: "film.mkv"}, CategoryVideo},
		{fsutil.Entry{Name: "disc.iso"}, CategoryVideo},
		{fsutil.Entry{Name: "list.m3u8"}, CategoryOther},
		{fsutil.Entry{Name: "film.srt"}, CategorySubtitle},
		{fsutil.Entry{Name: "notes.txt"}, CategoryNone},
	}

	for _, tt := range tests {
		if got := Classify(tt.entry); got != tt.want {
			t.Errorf("Classify(%q)=%v want %v", tt.entry.Name, got, tt.want)
		}
	}
}

func TestSubtitleAndDiscHelpers(t *testing.T) {
	if !IsSubtitle(fsutil.Entry{Name: "a.VTT"}) {
		t.Fatal("expected vtt to be a subtitle")
	}
	if IsSubtitle(fsutil.Entry{Name: "subs.srt", IsDir: true}) {
		t.Fatal("directory must not count as subtitle")
	}
	if !IsDiscImage(fsutil.Entry{Name: "movie.ISO"}) {
		t.Fatal("expected iso to be a disc image")
	}
}

func TestProfileForSize(t *testing.T) {
	tests := []struct {
		size int64
		want DiscProfile
	}{
		{4_000_000_000, DiscDVD},
		{BluRayThreshold - 1, DiscDVD},
		{BluRayThreshold, DiscBluRay},
		{9_000_000_000, DiscBluRay},
	}
	for _, tt := range tests {
		if got := ProfileForSize(tt.size); got != tt.want {
			t.Errorf("ProfileForSize(%d)=%v want %v", tt.size, got, tt.want)
		}
	}
}

func TestPlayerExtensionsCoversAllGroups(t *testing.T) {
	set := PlayerExtensions()
	for _, ext := range []string{"mp3", "mkv", "cue", "srt"} {
		if _, ok := set[ext]; !ok {
			t.Errorf("expected %q in player extensions", ext)
		}
	}
	if _, ok := set["txt"]; ok {
		t.Error("txt must not be a player extension")
	}
}
