package visualization

import (
	"path/filepath"
	"strings"

	"github.com/EricCWWong/GSimulator/pkg/evaluator"
	"github.com/EricCWWong/GSimulator/pkg/utils/fs"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultFormat is used for figures saved without extension.
	DefaultFormat = "pdf"
	// DifferentialPrefix is prepended to the name of saved contour figure.
	DifferentialPrefix = "diff_"
)

// Renderer turns evaluation result into figures, saves them when asked and
// always hands them to the viewer.
type Renderer struct {
	// Directory receives saved figures. Empty means fs.DefaultResultsDirectory.
	Directory string
	// Format of saved figures without explicit extension.
	Format string
	Viewer Viewer
}

// NewRenderer creates Renderer with log based viewer.
func NewRenderer(directory, format string) *Renderer {
	return &Renderer{Directory: directory, Format: format, Viewer: LogViewer{}}
}

// Rendered lists figures made for single result.
type Rendered struct {
	Conductance  *Figure
	Differential *Figure
	// Files are paths of saved figures in save order.
	Files []string
}

// Render builds the conductance figure and, for batches larger than one,
// the differential contour. Figures are written only when saveName is set.
func (r *Renderer) Render(result *evaluator.Result, graphName, saveName string) (*Rendered, error) {
	rendered := &Rendered{}

	var err error
	rendered.Conductance, err = NewConductanceFigure(result, graphName)
	if err != nil {
		return nil, errors.Wrap(err, "cannot build conductance figure")
	}
	if result.HasContour() {
		rendered.Differential, err = NewDifferentialFigure(result, graphName)
		if err != nil {
			return nil, errors.Wrap(err, "cannot build differential figure")
		}
	}

	if saveName != "" {
		rendered.Files, err = r.save(rendered, saveName)
		if err != nil {
			return nil, err
		}
	}

	viewer := r.Viewer
	if viewer == nil {
		viewer = LogViewer{}
	}
	for _, figure := range []*Figure{rendered.Conductance, rendered.Differential} {
		if figure == nil {
			continue
		}
		if err := viewer.Show(figure); err != nil {
			return nil, errors.Wrapf(err, "cannot show %q", figure.Title())
		}
	}

	return rendered, nil
}

func (r *Renderer) save(rendered *Rendered, saveName string) ([]string, error) {
	directory, err := fs.CreateResultsDir(r.Directory)
	if err != nil {
		return nil, err
	}

	fileName, format := FigureFileName(saveName, r.Format)
	files := []string{}

	if rendered.Differential != nil {
		path := fs.GetResultsPath(directory, DifferentialPrefix+fileName)
		if err := rendered.Differential.Save(path, format); err != nil {
			return nil, errors.Wrap(err, "cannot save differential figure")
		}
		logrus.Infof("Differential figure saved to %q", path)
		files = append(files, path)
	}

	path := fs.GetResultsPath(directory, fileName)
	if err := rendered.Conductance.Save(path, format); err != nil {
		return nil, errors.Wrap(err, "cannot save conductance figure")
	}
	logrus.Infof("Conductance figure saved to %q", path)
	files = append(files, path)

	return files, nil
}

// FigureFileName resolves file name and format for saveName. Extension of
// saveName wins; otherwise format (DefaultFormat when empty) is appended.
func FigureFileName(saveName, format string) (string, string) {
	if extension := strings.TrimPrefix(filepath.Ext(saveName), "."); extension != "" {
		return saveName, strings.ToLower(extension)
	}
	if format == "" {
		format = DefaultFormat
	}
	format = strings.ToLower(format)
	return saveName + "." + format, format
}
