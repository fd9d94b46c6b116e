package services

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/pixelift/pixelift-api/internal/models"
)

// StrategyKind tells how an operation is executed.
type StrategyKind string

const (
	KindLocal       StrategyKind = "local"
	KindRemoteSync  StrategyKind = "remote_sync"
	KindRemoteAsync StrategyKind = "remote_async"
)

// Styles accepted by style transfer
const (
	StyleAnime       = "anime"
	StyleOilPainting = "oil-painting"
	StyleWatercolor  = "watercolor"
	StyleSketch      = "sketch"
	StyleCyberpunk   = "cyberpunk"
)

var stylePrompts = map[string]string{
	StyleAnime:       "anime style illustration, clean line art, vibrant cel shading",
	StyleOilPainting: "classical oil painting, visible brush strokes, rich texture",
	StyleWatercolor:  "soft watercolor painting, flowing pigments, paper texture",
	StyleSketch:      "detailed pencil sketch, graphite shading, hand drawn",
	StyleCyberpunk:   "cyberpunk scene, neon lights, futuristic city glow",
}

// Aspect ratios accepted by generation
var aspectRatios = map[string]bool{"1:1": true, "16:9": true, "9:16": true, "4:3": true, "3:4": true}

const (
	defaultAspectRatio     = "1:1"
	defaultReimaginePrompt = "reimagine this image with a fresh creative interpretation, keep the composition"
	defaultVideoDuration   = 5
)

// Request is a normalised processing request.
type Request struct {
	Operation   models.Operation
	Variant     string
	Scale       int
	Prompt      string
	AspectRatio string
	Upload      *models.Upload
}

// Strategy describes how one (operation, variant) pair is executed and billed.
type Strategy struct {
	Operation     models.Operation
	Variant       string
	Kind          StrategyKind
	Model         string
	RequiresImage bool
	ProOnly       bool
	Cost          func(scale int) int
	Input         func(req Request) map[string]any
}

type strategyKey struct {
	op      models.Operation
	variant string
}

// Registry maps (operation, variant) to a strategy.
type Registry struct {
	strategies map[strategyKey]Strategy
	defaults   map[models.Operation]string
}

func fixedCost(n int) func(int) int {
	return func(int) int { return n }
}

// scaledCost charges base per 2x of upscale factor.
func scaledCost(base int) func(int) int {
	return func(scale int) int { return base * scale / 2 }
}

func dataURI(u *models.Upload) string {
	return "data:" + u.ContentType + ";base64," + base64.StdEncoding.EncodeToString(u.Data)
}

// NewRegistry returns the registry of every supported tool.
func NewRegistry() *Registry {
	r := &Registry{
		strategies: make(map[strategyKey]Strategy),
		defaults: map[models.Operation]string{
			models.OperationUpscale:          models.ImageTypeGeneral,
			models.OperationRemoveBackground: "",
			models.OperationStyleTransfer:    StyleOilPainting,
			models.OperationReimagine:        "",
			models.OperationAIImage:          "",
			models.OperationAIVideo:          "5s",
		},
	}

	r.add(Strategy{
		Operation: models.OperationUpscale, Variant: models.ImageTypeFaithful,
		Kind: KindLocal, Model: "local/catmull-rom", RequiresImage: true,
		Cost: fixedCost(0),
	})
	r.add(Strategy{
		Operation: models.OperationUpscale, Variant: models.ImageTypeGeneral,
		Kind: KindRemoteSync, Model: "nightmareai/real-esrgan", RequiresImage: true,
		Cost: scaledCost(2),
		Input: func(req Request) map[string]any {
			return map[string]any{"image": dataURI(req.Upload), "scale": req.Scale, "face_enhance": false}
		},
	})
	r.add(Strategy{
		Operation: models.OperationUpscale, Variant: models.ImageTypeProduct,
		Kind: KindRemoteSync, Model: "philz1337x/clarity-upscaler", RequiresImage: true,
		Cost: scaledCost(1),
		Input: func(req Request) map[string]any {
			return map[string]any{"image": dataURI(req.Upload), "scale_factor": req.Scale, "creativity": 0.1}
		},
	})
	r.add(Strategy{
		Operation: models.OperationUpscale, Variant: models.ImageTypePortrait,
		Kind: KindRemoteSync, Model: "sczhou/codeformer", RequiresImage: true,
		Cost: scaledCost(3),
		Input: func(req Request) map[string]any {
			return map[string]any{
				"image":               dataURI(req.Upload),
				"upscale":             req.Scale,
				"face_upsample":       true,
				"background_enhance":  true,
				"codeformer_fidelity": 0.7,
			}
		},
	})
	r.add(Strategy{
		Operation: models.OperationRemoveBackground,
		Kind:      KindRemoteSync, Model: "851-labs/background-remover", RequiresImage: true,
		Cost: fixedCost(1),
		Input: func(req Request) map[string]any {
			return map[string]any{"image": dataURI(req.Upload), "format": "png"}
		},
	})
	for style, prompt := range stylePrompts {
		prompt := prompt
		r.add(Strategy{
			Operation: models.OperationStyleTransfer, Variant: style,
			Kind: KindRemoteSync, Model: "fofr/style-transfer", RequiresImage: true,
			Cost: fixedCost(2),
			Input: func(req Request) map[string]any {
				return map[string]any{"structure_image": dataURI(req.Upload), "prompt": prompt}
			},
		})
	}
	r.add(Strategy{
		Operation: models.OperationReimagine,
		Kind:      KindRemoteSync, Model: "black-forest-labs/flux-kontext-pro", RequiresImage: true,
		Cost: fixedCost(2),
		Input: func(req Request) map[string]any {
			prompt := req.Prompt
			if prompt == "" {
				prompt = defaultReimaginePrompt
			}
			return map[string]any{"input_image": dataURI(req.Upload), "prompt": prompt, "output_format": "png"}
		},
	})
	r.add(Strategy{
		Operation: models.OperationAIImage,
		Kind:      KindRemoteSync, Model: "black-forest-labs/flux-schnell",
		Cost: fixedCost(2),
		Input: func(req Request) map[string]any {
			return map[string]any{
				"prompt":        req.Prompt,
				"aspect_ratio":  NormalizeAspectRatio(req.AspectRatio),
				"output_format": "png",
				"num_outputs":   1,
			}
		},
	})
	for _, seconds := range []int{5, 10} {
		seconds := seconds
		r.add(Strategy{
			Operation: models.OperationAIVideo, Variant: VideoVariant(seconds),
			Kind: KindRemoteAsync, Model: "kwaivgi/kling-v1.6-standard", ProOnly: true,
			Cost: fixedCost(seconds * 2),
			Input: func(req Request) map[string]any {
				return map[string]any{
					"prompt":       req.Prompt,
					"duration":     seconds,
					"aspect_ratio": "16:9",
				}
			},
		})
	}

	return r
}

func (r *Registry) add(s Strategy) {
	r.strategies[strategyKey{s.Operation, s.Variant}] = s
}

// Resolve returns the strategy for op and variant. Unknown variants resolve to
// the operation's default; the returned strategy carries the variant used.
func (r *Registry) Resolve(op models.Operation, variant string) (Strategy, error) {
	if s, ok := r.strategies[strategyKey{op, variant}]; ok {
		return s, nil
	}
	def, ok := r.defaults[op]
	if !ok {
		return Strategy{}, fmt.Errorf("unsupported operation %q", op)
	}
	return r.strategies[strategyKey{op, def}], nil
}

// NormalizeScale parses an upscale factor, falling back to the default.
func NormalizeScale(raw string) int {
	scale, err := strconv.Atoi(raw)
	if err != nil {
		return models.DefaultScale
	}
	for _, allowed := range models.AllowedScales {
		if scale == allowed {
			return scale
		}
	}
	return models.DefaultScale
}

// NormalizeImageType returns raw if it is a known image type, general otherwise.
func NormalizeImageType(raw string) string {
	switch raw {
	case models.ImageTypeGeneral, models.ImageTypeProduct, models.ImageTypePortrait, models.ImageTypeFaithful:
		return raw
	}
	return models.ImageTypeGeneral
}

// NormalizeAspectRatio returns raw if it is supported, 1:1 otherwise.
func NormalizeAspectRatio(raw string) string {
	if aspectRatios[raw] {
		return raw
	}
	return defaultAspectRatio
}

// VideoVariant is the variant label of a video duration; unknown durations use 5s.
func VideoVariant(seconds int) string {
	if seconds != 5 && seconds != 10 {
		seconds = defaultVideoDuration
	}
	return strconv.Itoa(seconds) + "s"
}
