package scene

import (
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-pathtracer/pkg/log"
)

var logger = log.New("scene")

// ErrUnknownScene is returned when a scene id is not registered
var ErrUnknownScene = errors.New("scene: unknown scene")

// SceneInfo describes a builtin scene
type SceneInfo struct {
	ID          string   // Unique identifier used on the command line
	DisplayName string   // Human readable name
	Description string   // One line summary
	Group       string   // Grouping category
	Aliases     []string // Alternative ids
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string
	Scenes []SceneInfo
}

// BuildOptions control how a builtin scene is assembled
type BuildOptions struct {
	Seed      int64  // Seed for random placements and noise tables
	AssetsDir string // Directory holding texture images
}

// DefaultBuildOptions returns seed 0 and the ./assets directory
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{Seed: 0, AssetsDir: "assets"}
}

// Random returns a generator seeded from the options
func (o BuildOptions) Random() *rand.Rand {
	return rand.New(rand.NewSource(o.Seed))
}

// Asset resolves a file name inside the assets directory
func (o BuildOptions) Asset(name string) string {
	dir := o.AssetsDir
	if dir == "" {
		dir = "assets"
	}
	return filepath.Join(dir, name)
}

// Builder assembles a scene. The result has not been preprocessed.
type Builder func(opts BuildOptions) (*Scene, error)

type registration struct {
	info  SceneInfo
	build Builder
}

const (
	groupFirstWeekend = "In One Weekend"
	groupNextWeek     = "The Next Week"
	groupDiagnostics  = "Diagnostics"
)

var registry = []registration{
	{SceneInfo{ID: "spheres", Description: "Random grid of diffuse, metal and glass spheres", Group: groupFirstWeekend}, NewSpheresScene},
	{SceneInfo{ID: "moving-spheres", Description: "Sphere grid with motion blur on a checkered ground", Group: groupNextWeek, Aliases: []string{"moving_spheres"}}, NewMovingSpheresScene},
	{SceneInfo{ID: "two-checker", Description: "Two large checker textured spheres", Group: groupNextWeek, Aliases: []string{"two_checker"}}, NewTwoCheckerScene},
	{SceneInfo{ID: "earth", Description: "Image textured globe", Group: groupNextWeek, Aliases: []string{"earthmap"}}, NewEarthScene},
	{SceneInfo{ID: "perlin", Description: "Perlin noise marble spheres", Group: groupNextWeek, Aliases: []string{"perlin_noise"}}, NewPerlinScene},
	{SceneInfo{ID: "quads", Description: "Five colored quads around the camera", Group: groupNextWeek}, NewQuadsScene},
	{SceneInfo{ID: "simple-light", Description: "Noise spheres lit by a quad and a sphere light", Group: groupNextWeek, Aliases: []string{"simple_light"}}, NewSimpleLightScene},
	{SceneInfo{ID: "cornell", Description: "Cornell box with two rotated boxes", Group: groupNextWeek, Aliases: []string{"cornell_box"}}, NewCornellScene},
	{SceneInfo{ID: "cornell-fog", Description: "Cornell box with smoke and fog boxes", Group: groupNextWeek, Aliases: []string{"fog_cornell_box"}}, NewCornellFogScene},
	{SceneInfo{ID: "final", Description: "Every feature at once", Group: groupNextWeek, Aliases: []string{"all_effects"}}, NewFinalScene},
	{SceneInfo{ID: "single-sphere", Description: "One diffuse sphere on a ground sphere, for quick checks", Group: groupDiagnostics}, NewSingleSphereScene},
}

func init() {
	for i := range registry {
		registry[i].info.DisplayName = titleCase(registry[i].info.ID)
	}
}

// ListScenes returns every builtin scene in registration order
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(registry))
	for i, r := range registry {
		scenes[i] = r.info
	}
	return scenes
}

// ListSceneGroups returns the builtin scenes grouped by category, groups sorted by name
func ListSceneGroups() []SceneGroup {
	groupMap := make(map[string][]SceneInfo)
	for _, r := range registry {
		groupMap[r.info.Group] = append(groupMap[r.info.Group], r.info)
	}

	var groupNames []string
	for name := range groupMap {
		groupNames = append(groupNames, name)
	}
	sort.Strings(groupNames)

	groups := make([]SceneGroup, 0, len(groupNames))
	for _, name := range groupNames {
		groups = append(groups, SceneGroup{Name: name, Scenes: groupMap[name]})
	}
	return groups
}

// Lookup finds a scene by id or alias
func Lookup(id string) (SceneInfo, bool) {
	r, ok := lookup(id)
	return r.info, ok
}

func lookup(id string) (registration, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, r := range registry {
		if r.info.ID == id {
			return r, true
		}
		for _, alias := range r.info.Aliases {
			if alias == id {
				return r, true
			}
		}
	}
	return registration{}, false
}

// Build assembles and preprocesses the named scene
func Build(id string, opts BuildOptions) (*Scene, error) {
	r, ok := lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}

	s, err := r.build(opts)
	if err != nil {
		return nil, fmt.Errorf("building scene %s: %w", r.info.ID, err)
	}
	if err := s.Preprocess(); err != nil {
		return nil, fmt.Errorf("preprocessing scene %s: %w", r.info.ID, err)
	}

	logger.Debugf("built scene %s: %d objects, %d primitives, %d materials",
		r.info.ID, len(s.Objects), s.GetPrimitiveCount(), len(s.Materials))
	return s, nil
}

// titleCase converts an id-style string to title case
// e.g., "cornell-fog" -> "Cornell Fog"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
