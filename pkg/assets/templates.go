package assets

import (
	"bytes"
	"context"
	stderrors "errors"
	"io/fs"
	"runtime"
	"slices"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"github.com/larktraditionalarts/badge-pdf-creator/pkg/errors"
)

// Template is a decoded badge background ready for embedding.
type Template struct {
	ID     string
	Path   string
	PNG    []byte
	Width  int
	Height int
}

// Templates loads the template image for every id in paths, keyed by id.
func (l *Loader) Templates(ctx context.Context, paths map[string]string) (map[string]*Template, error) {
	ids := make([]string, 0, len(paths))
	for id := range paths {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var mu sync.Mutex
	out := make(map[string]*Template, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, id := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := l.loadTemplate(id, paths[id])
			if err != nil {
				return err
			}
			mu.Lock()
			out[id] = t
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Loader) loadTemplate(id, path string) (*Template, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "template %s", id)
		}
		return nil, errors.Wrap(errors.ErrCodeAssetLoad, err, "template %s", id)
	}

	b := img.Bounds()
	if l.MaxPixels > 0 && (b.Dx() > l.MaxPixels || b.Dy() > l.MaxPixels) {
		img = imaging.Fit(img, l.MaxPixels, l.MaxPixels, imaging.Lanczos)
		l.Logger.Debug("downscaled template", "template", id, "from", b.Size(), "to", img.Bounds().Size())
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, errors.Wrap(errors.ErrCodeAssetLoad, err, "encode template %s", id)
	}

	t := &Template{
		ID:     id,
		Path:   path,
		PNG:    buf.Bytes(),
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	}
	if t.Width != t.Height {
		l.Logger.Warn("template is not square, it will be stretched", "template", id, "width", t.Width, "height", t.Height)
	}
	l.Logger.Debug("loaded template", "template", id, "path", path, "bytes", len(t.PNG))
	return t, nil
}
