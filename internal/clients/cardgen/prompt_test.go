package cardgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/creatureforge/card-api/internal/clients/cardgen"
	"github.com/creatureforge/card-api/internal/entities/creature"
)

func TestBuildCardPrompt(t *testing.T) {
	c := &creature.Creature{
		Name:                 "Blazewing",
		Type:                 creature.MonsterTypeFire,
		HP:                   120,
		Description:          "Lives inside volcanoes.",
		SpecialAbility:       "Lava Burst",
		SpecialAbilityDamage: 65,
		SketchFeatures:       "The triangles are spikes",
		SelectedColors:       []string{"Red", "Orange"},
		ColorHarmony:         creature.HarmonyContrast,
	}

	prompt := cardgen.BuildCardPrompt(c)

	assert.Contains(t, prompt, `"Blazewing"`)
	assert.Contains(t, prompt, `"120 HP"`)
	assert.Contains(t, prompt, `"Fire"`)
	assert.Contains(t, prompt, `"Lava Burst"`)
	assert.Contains(t, prompt, `"65"`)
	assert.Contains(t, prompt, `"Lives inside volcanoes."`)
	assert.Contains(t, prompt, "The triangles are spikes")
	assert.Contains(t, prompt, "Primary Colors to use: Red, Orange.")
	assert.Contains(t, prompt, "Color Harmony Strategy: Contrast.")
	assert.Contains(t, prompt, "3:4 aspect ratio")
	assert.Contains(t, prompt, "Crop perfectly to the card edge.")
}

func TestBuildCardPrompt_NoColorsFallsBackToElement(t *testing.T) {
	c := &creature.Creature{
		Name: "Aquafin",
		Type: creature.MonsterTypeWater,
		HP:   50,
	}

	prompt := cardgen.BuildCardPrompt(c)

	assert.Contains(t, prompt, "Use colors that match the element type.")
	assert.NotContains(t, prompt, "Primary Colors to use")
}

func TestBuildEditPrompt(t *testing.T) {
	prompt := cardgen.BuildEditPrompt("make the wings bigger")

	assert.Contains(t, prompt, `"make the wings bigger"`)
	assert.Contains(t, prompt, "Vertical (Portrait) aspect ratio (3:4)")
	assert.Contains(t, prompt, "No grunge texture.")
}
