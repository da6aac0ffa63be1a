package editor

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

// Source is an image file chosen by the user.
type Source interface {
	Name() string
	Open() (io.ReadCloser, error)
}

type fileSource string

func (f fileSource) Name() string                 { return filepath.Base(string(f)) }
func (f fileSource) Open() (io.ReadCloser, error) { return os.Open(string(f)) }

// FileSource reads the image at path.
func FileSource(path string) Source { return fileSource(path) }

// LoadResult reports one finished image load.
type LoadResult struct {
	Name string
	// Index of the placed image, or -1 when nothing was placed.
	Index int
	Err   error
	// Stale is set when the load finished after its session ended.
	Stale bool

	gen uint64
	img image.Image
}

// LoadImages decodes srcs in the background. Each decoded image is
// appended to the scene by Pump or Await, in completion order, provided
// the session that started the load is still current.
func (e *Editor) LoadImages(ctx context.Context, srcs ...Source) {
	e.mode = idle()
	sess := e.sess
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(sess.ctx, cancel)
	results := e.results
	workers := e.workers

	go func() {
		defer cancel()
		defer stop()

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for _, src := range srcs {
			g.Go(func() error {
				img, err := decode(src)
				if gctx.Err() != nil {
					return gctx.Err()
				}
				r := LoadResult{Name: src.Name(), Index: -1, Err: err, gen: sess.gen, img: img}
				select {
				case results <- r:
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			})
		}
		if err := g.Wait(); err != nil {
			Logger().Debug("image loads abandoned", "session", sess.id, "err", err)
		}
	}()
}

func decode(src Source) (image.Image, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, fmt.Errorf("editor: open %s: %w", src.Name(), err)
	}
	defer rc.Close()
	img, _, err := image.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("editor: decode %s: %w", src.Name(), err)
	}
	return img, nil
}

// Pump applies every load that has completed, without blocking, and
// returns how many images were placed.
func (e *Editor) Pump() int {
	n := 0
	for {
		select {
		case r := <-e.results:
			if r = e.finish(r); r.Index >= 0 {
				n++
			}
		default:
			return n
		}
	}
}

// Await blocks until the next load completes and applies it.
func (e *Editor) Await(ctx context.Context) (LoadResult, error) {
	select {
	case r := <-e.results:
		return e.finish(r), nil
	case <-ctx.Done():
		return LoadResult{}, ctx.Err()
	}
}

func (e *Editor) finish(r LoadResult) LoadResult {
	img := r.img
	r.img = nil
	switch {
	case r.gen != e.sess.gen:
		r.Stale = true
		Logger().Debug("dropping stale image", "name", r.Name)
	case r.Err != nil:
		Logger().Warn("image load failed", "name", r.Name, "err", r.Err)
	default:
		r.Index = e.scene.AddImage(img)
		e.render()
	}
	return r
}
