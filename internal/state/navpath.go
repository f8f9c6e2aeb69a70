package state

import (
	"os"
	"path/filepath"
	"strings"
)

// NavPath tracks the current directory as a stack of segments on top of an
// absolute base directory.
type NavPath struct {
	segments []string
}

// NewNavPath starts navigation at dir, falling back to the working directory
// when dir is not a directory.
func NewNavPath(dir string) NavPath {
	var p NavPath
	if !p.Set(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			cwd = string(filepath.Separator)
		}
		p.segments = []string{cwd}
	}
	return p
}

// Set replaces the whole path when dir points to a directory.
func (p *NavPath) Set(dir string) bool {
	if dir == "" {
		return false
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	p.segments = []string{abs}
	return true
}

// Cd descends into name. "." is ignored and ".." ascends.
func (p *NavPath) Cd(name string) {
	name = strings.Trim(name, "/")
	switch name {
	case "", ".":
		return
	case "..":
		p.Up()
		return
	}
	p.segments = append(p.segments, name)
}

// Up moves to the parent directory. At the filesystem root it stays put.
func (p *NavPath) Up() {
	switch len(p.segments) {
	case 0:
		return
	case 1:
		p.segments[0] = filepath.Dir(p.segments[0])
	default:
		p.segments = p.segments[:len(p.segments)-1]
	}
}

// Depth reports how many names were pushed on top of the base directory.
func (p NavPath) Depth() int {
	if len(p.segments) == 0 {
		return 0
	}
	return len(p.segments) - 1
}

// String resolves the segments into an absolute path.
func (p NavPath) String() string {
	if len(p.segments) == 0 {
		return ""
	}
	joined := filepath.Join(p.segments...)
	if abs, err := filepath.Abs(joined); err == nil {
		return abs
	}
	return joined
}

// Base returns the last element of the current path.
func (p NavPath) Base() string {
	return filepath.Base(p.String())
}
