package maps

import (
	"io/fs"

	"github.com/charmbracelet/log"
)

// Progress is a loader snapshot. Maps is only set once Done is true.
type Progress struct {
	Percent float64
	Done    bool
	Maps    []*Map
}

// Loader is polled once per frame until it reports Done.
type Loader interface {
	Poll() (Progress, error)
}

// FileLoader parses one map file per poll.
type FileLoader struct {
	fsys   fs.FS
	paths  []string
	opts   Options
	logger *log.Logger

	loaded []*Map
}

func NewFileLoader(fsys fs.FS, paths []string, opts Options, logger *log.Logger) *FileLoader {
	return &FileLoader{
		fsys:   fsys,
		paths:  append([]string(nil), paths...),
		opts:   opts,
		logger: logger,
	}
}

// Poll loads the next pending map and reports how far along the list it is.
// The poll that loads the last map is the one that reports Done.
func (l *FileLoader) Poll() (Progress, error) {
	if n := len(l.loaded); n < len(l.paths) {
		p := l.paths[n]
		l.logger.Debug("loading map", "path", p)
		m, err := Parse(l.fsys, p, l.opts, l.logger)
		if err != nil {
			return Progress{Percent: l.percent()}, err
		}
		l.loaded = append(l.loaded, m)
	}

	if len(l.loaded) < len(l.paths) {
		return Progress{Percent: l.percent()}, nil
	}
	return Progress{Percent: 100, Done: true, Maps: append([]*Map(nil), l.loaded...)}, nil
}

func (l *FileLoader) percent() float64 {
	if len(l.paths) == 0 {
		return 100
	}
	return 100 * float64(len(l.loaded)) / float64(len(l.paths))
}

// Index returns the position of the named map in list, or -1.
func Index(list []*Map, name string) int {
	for i, m := range list {
		if m.Name == name {
			return i
		}
	}
	return -1
}
