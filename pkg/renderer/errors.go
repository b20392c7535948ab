package renderer

import "errors"

var (
	// ErrSceneNotPreprocessed is returned when rendering a scene whose BVH has not been built
	ErrSceneNotPreprocessed = errors.New("renderer: scene has not been preprocessed")

	// ErrInvalidConfig is returned for unusable renderer settings
	ErrInvalidConfig = errors.New("renderer: invalid configuration")
)
