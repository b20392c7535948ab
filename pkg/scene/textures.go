package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

// EarthTextureFile is the texture image used by the earth and final scenes
const EarthTextureFile = "earthmap.jpg"

// textureCamera is the default view of the texture showcase scenes
func textureCamera(center core.Vec3) geometry.CameraConfig {
	return geometry.CameraConfig{
		Width:         1200,
		AspectRatio:   16.0 / 9.0,
		VFov:          20,
		Center:        center,
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		FocusDistance: 10,
	}
}

// NewTwoCheckerScene creates two large spheres sharing a spatial checker texture
func NewTwoCheckerScene(opts BuildOptions) (*Scene, error) {
	s := NewScene(textureCamera(core.NewVec3(13, 2, 3)), DefaultSamplingConfig(), SkyBackground())

	checker := material.NewCheckerColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	id := s.AddMaterial(material.NewTexturedLambertian(checker))
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, id),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, id),
	)
	return s, nil
}

// NewEarthScene creates a globe wrapped in the earth texture from the assets directory
func NewEarthScene(opts BuildOptions) (*Scene, error) {
	earth, err := loadEarthTexture(opts)
	if err != nil {
		return nil, err
	}

	s := NewScene(textureCamera(core.NewVec3(12, 0.3, 0)), DefaultSamplingConfig(), SkyBackground())
	id := s.AddMaterial(material.NewTexturedLambertian(earth))
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, id))
	return s, nil
}

// NewPerlinScene creates a marble ground and sphere from Perlin turbulence
func NewPerlinScene(opts BuildOptions) (*Scene, error) {
	s := NewScene(textureCamera(core.NewVec3(13, 2, 3)), DefaultSamplingConfig(), SkyBackground())

	marble := s.AddMaterial(material.NewTexturedLambertian(material.NewNoiseTexture(4, opts.Random())))
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)
	return s, nil
}

func loadEarthTexture(opts BuildOptions) (*material.ImageTexture, error) {
	path := opts.Asset(EarthTextureFile)
	texture, err := loaders.LoadImageTexture(path)
	if err != nil {
		return nil, fmt.Errorf("loading earth texture: %w", err)
	}
	logger.Debugf("loaded texture %s (%dx%d)", path, texture.Width, texture.Height)
	return texture, nil
}
