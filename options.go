package artgen

import "github.com/gogpu/gg/text"

// PipelineOption configures a Pipeline during creation.
//
// Example:
//
//	// Serial rendering with a custom bold face
//	src, _ := text.NewFontSourceFromFile("Inter-Bold.ttf")
//	p := artgen.NewPipeline(artgen.WithWorkers(1), artgen.WithFont(artgen.FontBold, src))
type PipelineOption func(*pipelineOptions)

type pipelineOptions struct {
	workers int
	fonts   map[FontStyle]*text.FontSource
}

func defaultPipelineOptions() pipelineOptions {
	return pipelineOptions{
		workers: 0, // GOMAXPROCS
	}
}

// WithWorkers sets how many goroutines paint per-pixel backgrounds.
// Zero or negative uses GOMAXPROCS; 1 renders on the calling goroutine.
// The raster does not depend on this setting.
func WithWorkers(n int) PipelineOption {
	return func(o *pipelineOptions) {
		o.workers = n
	}
}

// WithFont replaces the built-in Go font used for captions of the given style.
func WithFont(style FontStyle, src *text.FontSource) PipelineOption {
	return func(o *pipelineOptions) {
		if o.fonts == nil {
			o.fonts = make(map[FontStyle]*text.FontSource)
		}
		o.fonts[style] = src
	}
}
