package cardgen

import (
	"fmt"
	"strings"

	"github.com/creatureforge/card-api/internal/entities/creature"
)

// BuildCardPrompt creates the generation prompt for a creature card.
// The sketch image is sent as a separate part alongside this text.
func BuildCardPrompt(c *creature.Creature) string {
	colorInstruction := "Use colors that match the element type."
	if len(c.SelectedColors) > 0 {
		colorInstruction = fmt.Sprintf(
			"Primary Colors to use: %s. Color Harmony Strategy: %s.",
			strings.Join(c.SelectedColors, ", "), c.ColorHarmony,
		)
	}

	return fmt.Sprintf(`
    Generate a vertical Trading Card Game card (3:4 aspect ratio) based on the attached sketch.

    Card Data to Display (Must be legible):
    - Name: %q (Place at the top)
    - HP: "%d HP" (Place at the top right)
    - Element: %q (Theme the card border/background around this)
    - Attack Move: %q (Place in the lower text box)
    - Damage: "%d" (Place next to the attack)
    - Flavor Text: %q (Small text at the bottom)

    Design Instructions:
    1. ORIENTATION: Vertical (Portrait). The card must be taller than it is wide.
    2. LAYOUT: Standard monster card layout (like Pokemon).
       - Top Header: Name and HP.
       - Center: Large, vibrant illustration of the monster.
       - Bottom Panel: Attack details, Damage number, and Description.
    3. ART STYLE: High-quality, vibrant 3D render style, similar to popular monster collecting card games.
    4. SKETCH INTERPRETATION: %s. The "scribbles" in the sketch should be interpreted as textures, energy, or specific body parts as described.
    5. COLORS: %s

    IMPORTANT PRINTING INSTRUCTIONS:
    - The card edges must be CLEAN, SOLID, and FLAT.
    - DO NOT ADD grunge, dirt, wear, tear, or realistic paper texture to the card border/frame.
    - This image will be printed and laminated, so it needs to look like a digital vector asset (pristine condition), not a photo of an old card.
    - NO background surface (no table, wood, or paper backdrop).
    - NO perspective tilt; keep the card flat and front-facing (2D view).
    - Crop perfectly to the card edge.
  `,
		c.Name, c.HP, c.Type, c.SpecialAbility, c.SpecialAbilityDamage, c.Description,
		c.SketchFeatures, colorInstruction,
	)
}

// BuildEditPrompt creates the prompt for editing an existing card image.
// The current card image is sent as a separate part alongside this text.
func BuildEditPrompt(instruction string) string {
	return fmt.Sprintf(`
    Edit this trading card image based on: %q.

    Instructions:
    - Maintain the Vertical (Portrait) aspect ratio (3:4).
    - Keep the "Trading Card" layout with clear text sections for Name, HP, and Attack.
    - Ensure the text remains legible and consistent with the previous design.
    - If the user asks to change the color, element, or features, update the monster illustration accordingly.
    - Maintain the high-quality, vibrant 3D art style.

    IMPORTANT PRINTING INSTRUCTIONS:
    - The output must remain perfectly cropped to the card edges.
    - Clean, solid borders. No grunge texture. No table background.
    - Keep the view flat and front-facing (digital asset style).
  `, instruction)
}
