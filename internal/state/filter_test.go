package state

import "testing"

func sampleListing() []FileEntry {
	return []FileEntry{
		{Name: ".hidden", IsDir: true},
		{Name: ".secret.mp3", Size: 1},
		{Name: "Albums", IsDir: true},
		{Name: "cover.jpg", Size: 1},
		{Name: "film.MKV", Size: 1},
		{Name: "film.srt", Size: 1},
		{Name: "notes", Size: 1},
		{Name: "track.mp3", Size: 1},
		{Name: "videos.d", IsDir: true},
	}
}

func viewNames(view []FileEntry) []string {
	out := make([]string, len(view))
	for i, e := range view {
		out[i] = e.Name
	}
	return out
}

func assertView(t *testing.T, view []FileEntry, want ...string) {
	t.Helper()
	got := viewNames(view)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestApplyFilterDefaults(t *testing.T) {
	f := DefaultFilterState(ExtensionSet("mp3", "mkv", "srt"))
	assertView(t, ApplyFilter(sampleListing(), f), "Albums", "film.MKV", "film.srt", "track.mp3", "videos.d")
}

func TestApplyFilterExtensionsNeverExcludeDirectories(t *testing.T) {
	f := DefaultFilterState(ExtensionSet("mp3"))
	f.ShowHidden = true

	view := ApplyFilter(sampleListing(), f)
	for _, entry := range view {
		if entry.IsDir {
			continue
		}
		if _, ok := f.Extensions[entry.LowerExt()]; !ok {
			t.Fatalf("entry %q passed the extension restriction", entry.Name)
		}
	}
	assertView(t, view, ".hidden", ".secret.mp3", "Albums", "track.mp3", "videos.d")
}

func TestApplyFilterHideDirectories(t *testing.T) {
	f := DefaultFilterState(nil)
	f.ShowDirs = false
	assertView(t, ApplyFilter(sampleListing(), f), "cover.jpg", "film.MKV", "film.srt", "notes", "track.mp3")
}

func TestApplyFilterSearchAppliesToDirectoriesToo(t *testing.T) {
	f := DefaultFilterState(nil)
	f.Search = "film"
	assertView(t, ApplyFilter(sampleListing(), f), "film.MKV", "film.srt")

	f.Search = "d s"
	assertView(t, ApplyFilter(sampleListing(), f), "videos.d")
}

func TestIndexOf(t *testing.T) {
	view := sampleListing()
	if idx := IndexOf(view, "film.srt"); idx != 5 {
		t.Fatalf("expected 5, got %d", idx)
	}
	if idx := IndexOf(view, "FILM.SRT"); idx != -1 {
		t.Fatalf("lookup must be exact, got %d", idx)
	}
}

func TestExtensionSetNormalises(t *testing.T) {
	set := ExtensionSet(".MP3", " flac ", "")
	if len(set) != 2 {
		t.Fatalf("expected 2 extensions, got %v", set)
	}
	for _, ext := range []string{"mp3", "flac"} {
		if _, ok := set[ext]; !ok {
			t.Fatalf("missing %q in %v", ext, set)
		}
	}
}
