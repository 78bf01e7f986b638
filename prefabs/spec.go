package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec loads and unmarshals a YAML prefab spec by filename.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

type SkinSpec struct {
	Image   string  `yaml:"image"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

// UnitSpec configures a walkable board unit.
type UnitSpec struct {
	Name        string          `yaml:"name"`
	Speed       float64         `yaml:"speed"`
	Range       int             `yaml:"range"`
	Skin        SkinSpec        `yaml:"skin"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

// PlateSpec configures a one-shot trigger plate.
type PlateSpec struct {
	Name        string          `yaml:"name"`
	Target      string          `yaml:"target"`
	Script      string          `yaml:"script"`
	RiseY       float64         `yaml:"rise_y"`
	RiseFrames  int             `yaml:"rise_frames"`
	FadeFrames  int             `yaml:"fade_frames"`
	Skin        SkinSpec        `yaml:"skin"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

type CellSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type UnitPlacementSpec struct {
	Prefab string   `yaml:"prefab"`
	Name   string   `yaml:"name"`
	Cell   CellSpec `yaml:"cell"`
}

type PlatePlacementSpec struct {
	Prefab string   `yaml:"prefab"`
	Cell   CellSpec `yaml:"cell"`
}

// BoardSpec describes a playable board: grid dimensions plus unit and
// plate placements referencing their prefab files.
type BoardSpec struct {
	Name     string               `yaml:"name"`
	Columns  int                  `yaml:"columns"`
	Rows     int                  `yaml:"rows"`
	CellSize float64              `yaml:"cell_size"`
	Units    []UnitPlacementSpec  `yaml:"units"`
	Plates   []PlatePlacementSpec `yaml:"plates"`
}

// LoadBoardSpec loads a board by basename, defaulting to board.yaml.
func LoadBoardSpec(name string) (BoardSpec, error) {
	if name == "" {
		name = "board"
	}
	filename := name
	if len(filename) < 5 || filename[len(filename)-5:] != ".yaml" {
		filename += ".yaml"
	}
	return LoadSpec[BoardSpec](filename)
}
