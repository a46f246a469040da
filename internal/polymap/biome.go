package polymap

import (
	"fmt"
	"image/color"
)

// Biome is the discrete terrain category painted for a cell.
type Biome uint8

const (
	BiomeWater Biome = iota
	BiomeCoast
	BiomeSnow
	BiomeTundra
	BiomeBare
	BiomeScorched
	BiomeTaiga
	BiomeShrubland
	BiomeTemperateDesert
	BiomeTemperateRainForest
	BiomeTemperateDeciduousForest
	BiomeGrassland
	BiomeTropicalRainForest
	BiomeTropicalSeasonalForest
	BiomeSubtropicalDesert

	biomeCount
)

var biomeInfo = [biomeCount]struct {
	name  string
	color color.RGBA
}{
	BiomeWater:                    {"Water", color.RGBA{0x44, 0x44, 0x7A, 0xFF}},
	BiomeCoast:                    {"Coast", color.RGBA{0xA0, 0x90, 0x77, 0xFF}},
	BiomeSnow:                     {"Snow", color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}},
	BiomeTundra:                   {"Tundra", color.RGBA{0xBB, 0xBB, 0xAA, 0xFF}},
	BiomeBare:                     {"Bare", color.RGBA{0x88, 0x88, 0x88, 0xFF}},
	BiomeScorched:                 {"Scorched", color.RGBA{0x55, 0x55, 0x55, 0xFF}},
	BiomeTaiga:                    {"Taiga", color.RGBA{0x99, 0xAA, 0x77, 0xFF}},
	BiomeShrubland:                {"Shrubland", color.RGBA{0x88, 0x99, 0x77, 0xFF}},
	BiomeTemperateDesert:          {"Temperate Desert", color.RGBA{0xC9, 0xD2, 0x9B, 0xFF}},
	BiomeTemperateRainForest:      {"Temperate Rain Forest", color.RGBA{0x44, 0x88, 0x55, 0xFF}},
	BiomeTemperateDeciduousForest: {"Temperate Deciduous Forest", color.RGBA{0x67, 0x94, 0x59, 0xFF}},
	BiomeGrassland:                {"Grassland", color.RGBA{0x88, 0xAA, 0x55, 0xFF}},
	BiomeTropicalRainForest:       {"Tropical Rain Forest", color.RGBA{0x33, 0x77, 0x55, 0xFF}},
	BiomeTropicalSeasonalForest:   {"Tropical Seasonal Forest", color.RGBA{0x55, 0x99, 0x44, 0xFF}},
	BiomeSubtropicalDesert:        {"Subtropical Desert", color.RGBA{0xD2, 0xB9, 0x8B, 0xFF}},
}

func (b Biome) String() string {
	if b >= biomeCount {
		return fmt.Sprintf("Biome(%d)", uint8(b))
	}
	return biomeInfo[b].name
}

// Color is the opaque RGB color the biome is painted with.
func (b Biome) Color() color.RGBA {
	if b >= biomeCount {
		return color.RGBA{A: 0xFF}
	}
	return biomeInfo[b].color
}

// Biomes lists every biome in declaration order.
func Biomes() []Biome {
	out := make([]Biome, 0, biomeCount)
	for b := Biome(0); b < biomeCount; b++ {
		out = append(out, b)
	}
	return out
}

// BiomeOf maps a classified cell to its biome. Water and Coast short-circuit;
// Inner cells branch on depth band first and moisture second.
func BiomeOf(t CellType, depth, moisture float64) Biome {
	switch t {
	case Water:
		return BiomeWater
	case Coast:
		return BiomeCoast
	}

	switch {
	case depth > 0.8:
		switch {
		case moisture > 0.5:
			return BiomeSnow
		case moisture > 0.33:
			return BiomeTundra
		case moisture > 0.16:
			return BiomeBare
		default:
			return BiomeScorched
		}
	case depth > 0.6:
		switch {
		case moisture > 0.6:
			return BiomeTaiga
		case moisture > 0.33:
			return BiomeShrubland
		default:
			return BiomeTemperateDesert
		}
	case depth > 0.3:
		switch {
		case moisture > 0.83:
			return BiomeTemperateRainForest
		case moisture > 0.50:
			return BiomeTemperateDeciduousForest
		case moisture > 0.16:
			return BiomeGrassland
		default:
			return BiomeTemperateDesert
		}
	default:
		switch {
		case moisture > 0.66:
			return BiomeTropicalRainForest
		case moisture > 0.33:
			return BiomeTropicalSeasonalForest
		case moisture > 0.16:
			return BiomeGrassland
		default:
			return BiomeSubtropicalDesert
		}
	}
}
