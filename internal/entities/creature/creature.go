// Package creature defines the domain entities for the monster card wizard:
// the creature being designed, the per-player wizard session that tracks
// progress through the steps, and the static catalogs (types, colors,
// interview questions) the wizard presents.
package creature

import (
	"encoding/base64"
	"fmt"
)

// Creature holds everything the player has told the wizard about their
// monster. Fields are filled in progressively as the wizard advances.
type Creature struct {
	Name                 string       `json:"name"`
	Type                 MonsterType  `json:"type"`
	HP                   int32        `json:"hp"`
	Description          string       `json:"description"`
	SpecialAbility       string       `json:"special_ability"`
	SpecialAbilityDamage int32        `json:"special_ability_damage"`
	Sketch               *ImageBlob   `json:"sketch,omitempty"`
	SketchFeatures       string       `json:"sketch_features"`
	SelectedColors       []string     `json:"selected_colors"`
	ColorHarmony         ColorHarmony `json:"color_harmony"`
}

// NewCreature returns a creature with the wizard's starting defaults
func NewCreature() Creature {
	return Creature{
		Type:                 MonsterTypeFire,
		HP:                   50,
		SpecialAbilityDamage: 40,
		SelectedColors:       []string{},
		ColorHarmony:         HarmonyHarmonize,
	}
}

// ImageBlob is a binary image with its MIME type. Used for both the
// uploaded sketch and the generated card.
type ImageBlob struct {
	MIMEType string `json:"mime_type"`
	Data     []byte `json:"data"`
}

// DataURI renders the blob as a data: URI suitable for an <img> src
func (b *ImageBlob) DataURI() string {
	return fmt.Sprintf("data:%s;base64,%s", b.MIMEType, base64.StdEncoding.EncodeToString(b.Data))
}

// IsEmpty returns true if the blob holds no image data
func (b *ImageBlob) IsEmpty() bool {
	return b == nil || len(b.Data) == 0
}
