package catalog

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Warning describes one document that was skipped or only partially applied.
type Warning struct {
	Path string // slash-separated, relative to the docs root
	Err  error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %v", w.Path, w.Err)
}

var (
	// ErrUnreadable wraps I/O and encoding failures for a single document.
	ErrUnreadable = errors.New("unreadable document")
	// ErrUnknownQuadrant is reported when a header overrides the quadrant with a
	// label outside the fixed set. The directory quadrant is kept.
	ErrUnknownQuadrant = errors.New("unknown quadrant")
	// ErrUnknownRing is the ring counterpart of ErrUnknownQuadrant.
	ErrUnknownRing = errors.New("unknown ring")
)

// Result is the output of one scan.
type Result struct {
	Technologies []Technology
	Warnings     []Warning
	// Quadrants holds the quadrant directories that exist under the root.
	Quadrants []Quadrant
}

// ByQuadrant returns the technologies whose effective quadrant is q, in scan order.
func (r *Result) ByQuadrant(q Quadrant) []Technology {
	var out []Technology
	for _, t := range r.Technologies {
		if t.Quadrant == q {
			out = append(out, t)
		}
	}
	return out
}

// Scanner walks <root>/<quadrant>/<ring>/*.md.
type Scanner struct {
	Root   string
	Logger *zap.Logger
}

// NewScanner returns a Scanner for root. A nil logger discards warnings; they are
// still returned in Result.Warnings.
func NewScanner(root string, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{Root: root, Logger: logger}
}

// Scan reads every markdown document directly inside each existing
// quadrant/ring directory. Quadrants and rings are visited in canonical order and
// files in lexical order, so the result is deterministic for a given tree.
//
// Per-document failures never abort the scan; they are logged and collected as
// warnings. Only a missing or non-directory root is returned as an error.
func (s *Scanner) Scan() (*Result, error) {
	log := s.Logger
	if log == nil {
		log = zap.NewNop()
	}

	info, err := os.Stat(s.Root)
	if err != nil {
		return nil, fmt.Errorf("cannot stat docs directory %s: %w", s.Root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("docs path is not a directory: %s", s.Root)
	}

	res := &Result{Technologies: []Technology{}}
	warn := func(msg, rel string, err error) {
		res.Warnings = append(res.Warnings, Warning{Path: rel, Err: err})
		log.Warn(msg, zap.String("path", rel), zap.Error(err))
	}

	for _, q := range Quadrants {
		qDir := filepath.Join(s.Root, q.Label())
		if !isDir(qDir) {
			log.Debug("quadrant directory not found", zap.String("quadrant", q.Label()))
			continue
		}
		res.Quadrants = append(res.Quadrants, q)

		for _, r := range Rings {
			rDir := filepath.Join(qDir, r.Label())
			entries, err := os.ReadDir(rDir)
			if err != nil {
				if !os.IsNotExist(err) {
					warn("cannot list ring directory", path.Join(q.Label(), r.Label()), fmt.Errorf("%w: %v", ErrUnreadable, err))
				}
				continue
			}

			for _, e := range entries {
				if e.IsDir() || !isMarkdown(e.Name()) {
					continue
				}
				rel := path.Join(q.Label(), r.Label(), e.Name())
				tech, warnings, err := readTechnology(filepath.Join(rDir, e.Name()), rel, q, r)
				for _, w := range warnings {
					warn("ignoring header override", rel, w)
				}
				if err != nil {
					warn("skipping document", rel, err)
					continue
				}
				res.Technologies = append(res.Technologies, tech)
			}
		}
	}

	log.Debug("scan complete",
		zap.String("root", s.Root),
		zap.Int("technologies", len(res.Technologies)),
		zap.Int("warnings", len(res.Warnings)))
	return res, nil
}

// readTechnology builds the record for one document. A non-nil error means the
// document contributes no record; warnings are non-fatal notes about the record.
func readTechnology(file, rel string, q Quadrant, r Ring) (Technology, []error, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return Technology{}, nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if !utf8.Valid(b) {
		return Technology{}, nil, fmt.Errorf("%w: not valid UTF-8", ErrUnreadable)
	}

	fm, body, err := ParseFrontmatter(string(b))
	if err != nil {
		return Technology{}, nil, err
	}
	if len(fm) == 0 {
		return Technology{}, nil, ErrNoFrontmatter
	}

	stem := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	tech := Technology{
		Name:        fm.Text("title"),
		Quadrant:    q,
		Ring:        r,
		Tags:        fm.List("tags"),
		Description: ExtractDescription(body),
		SourcePath:  rel,
	}
	if tech.Name == "" {
		tech.Name = stem
	}

	var warnings []error
	if v := fm.Text("quadrant", "category"); v != "" {
		if oq, ok := ParseQuadrant(v); ok {
			tech.Quadrant = oq
		} else {
			warnings = append(warnings, fmt.Errorf("%w %q, keeping %q", ErrUnknownQuadrant, v, q.Label()))
		}
	}
	if v := fm.Text("ring", "stage"); v != "" {
		if rr, ok := ParseRing(v); ok {
			tech.Ring = rr
		} else {
			warnings = append(warnings, fmt.Errorf("%w %q, keeping %q", ErrUnknownRing, v, r.Label()))
		}
	}
	return tech, warnings, nil
}

func isMarkdown(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".md")
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
