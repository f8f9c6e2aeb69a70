// Package launcher starts media players as detached processes.
package launcher

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
	fsutil "github.com/kk-code-lab/mpl/internal/fs"
	"github.com/kk-code-lab/mpl/internal/media"
)

const (
	DefaultCommand       = "mpv --force-window"
	DefaultPauseFlag     = "--pause"
	DefaultSubFileOption = "--sub-file="
)

var (
	ErrEmptyCommand = errors.New("empty player command")
	ErrProcessGone  = errors.New("process already finished")
)

// commandBuilder is swapped out in tests.
var commandBuilder = exec.Command

// Options configures the player command line.
type Options struct {
	Command       string
	PauseFlag     string
	SubFileOption string
}

// DefaultOptions returns the stock mpv invocation.
func DefaultOptions() Options {
	return Options{
		Command:       DefaultCommand,
		PauseFlag:     DefaultPauseFlag,
		SubFileOption: DefaultSubFileOption,
	}
}

// Request describes one launch.
type Request struct {
	Path    string
	Size    int64
	SubPath string
	Paused  bool
}

// Launcher formats and starts player processes.
type Launcher struct {
	opts Options
}

// New returns a Launcher. Empty flag options fall back to the mpv defaults;
// an empty command is kept and rejected at launch time.
func New(opts Options) *Launcher {
	defaults := DefaultOptions()
	if opts.PauseFlag == "" {
		opts.PauseFlag = defaults.PauseFlag
	}
	if opts.SubFileOption == "" {
		opts.SubFileOption = defaults.SubFileOption
	}
	return &Launcher{opts: opts}
}

// Command returns the full player command line for req. Paths are wrapped
// in double quotes and the parts are joined with spaces.
func (l *Launcher) Command(req Request) (string, error) {
	if strings.TrimSpace(l.opts.Command) == "" {
		return "", ErrEmptyCommand
	}
	if req.Path == "" {
		return "", errors.New("no file to play")
	}

	parts := []string{l.opts.Command}
	if req.Paused {
		parts = append(parts, l.opts.PauseFlag)
	}
	if req.SubPath != "" {
		parts = append(parts, l.opts.SubFileOption+quote(req.SubPath))
	}
	if isDiscImage(req.Path) {
		parts = append(parts, discTarget(req.Path, req.Size))
	} else {
		parts = append(parts, quote(req.Path))
	}
	return strings.Join(parts, " "), nil
}

// Argv splits the command line for req into program and arguments.
func (l *Launcher) Argv(req Request) ([]string, error) {
	line, err := l.Command(req)
	if err != nil {
		return nil, err
	}
	argv, err := shellquote.Split(line)
	if err != nil {
		return nil, fmt.Errorf("parse player command: %w", err)
	}
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}
	return argv, nil
}

func isDiscImage(path string) bool {
	return media.IsDiscImage(fsutil.Entry{Name: filepath.Base(path), FullPath: path})
}

func discTarget(path string, size int64) string {
	switch media.ProfileForSize(size) {
	case media.DiscBluRay:
		return "bd:// --bluray-device=" + quote(path)
	default:
		return "dvd:// --dvd-device=" + quote(path)
	}
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`")

func quote(path string) string {
	return `"` + quoteEscaper.Replace(path) + `"`
}
