package scene

import (
	"sort"

	"github.com/pkg/errors"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `yaml:"id"`          // Name used to look the scene up
	DisplayName string `yaml:"displayName"` // Human-readable name
	Description string `yaml:"description"` // One-line summary
}

type builtin struct {
	info  SceneInfo
	build func(opts ...Option) (*Scene, error)
}

var builtins = map[string]builtin{
	"cornell": {
		info: SceneInfo{
			ID:          "cornell",
			DisplayName: "Cornell Box",
			Description: "Classic Cornell box with two blocks and a ceiling quad light",
		},
		build: NewCornellScene,
	},
	"cornell-disc": {
		info: SceneInfo{
			ID:          "cornell-disc",
			DisplayName: "Cornell Box (Disc Light)",
			Description: "Cornell box lit by a round ceiling light of the same area",
		},
		build: NewCornellDiscScene,
	},
	"facing-quads": {
		info: SceneInfo{
			ID:          "facing-quads",
			DisplayName: "Facing Quads",
			Description: "An emissive square above a diffuse square, nothing else",
		},
		build: func(opts ...Option) (*Scene, error) {
			return NewFacingQuadsScene(DefaultFacingQuadsConfig(), opts...)
		},
	},
	"dark-room": {
		info: SceneInfo{
			ID:          "dark-room",
			DisplayName: "Dark Room",
			Description: "The Cornell box without a light; renders black",
		},
		build: NewDarkRoomScene,
	},
}

// List returns the built-in scenes sorted by ID
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		infos = append(infos, b.info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ID < infos[j].ID
	})
	return infos
}

// Lookup builds the built-in scene with the given ID
func Lookup(id string, opts ...Option) (*Scene, error) {
	b, ok := builtins[id]
	if !ok {
		return nil, errors.Errorf("unknown scene %q", id)
	}
	s, err := b.build(opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "building scene %q", id)
	}
	return s, nil
}
