package level

import (
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/william-cutler/platformer/entity"
)

// Terrain shaping for Generate, in blocks
const (
	genBaseline  = 30 // ground top with zero noise
	genAmplitude = 8  // peak-to-trough height variation
	genDepth     = 6  // ground thickness below the surface
	genSafeZone  = 8  // flat columns at the spawn
	genMinFeat   = 6  // shortest flat run that receives a feature
	genWallH     = 40

	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
	noiseScale   = 0.06
)

// Generate builds a procedural stage width blocks wide; the same seed always yields the same stage
func Generate(seed int64, width int) Level {
	if width < genSafeZone+genMinFeat {
		width = genSafeZone + genMinFeat
	}
	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	rng := rand.New(rand.NewSource(seed))

	tops := make([]int, width)
	for x := range tops {
		if x < genSafeZone {
			tops[x] = genBaseline
			continue
		}
		n := (noise.Noise1D(float64(x)*noiseScale) + 1) / 2
		tops[x] = genBaseline - int(n*genAmplitude) + genAmplitude/2
	}

	var ps []Placement
	ps = append(ps,
		Placement{Kind: KindPlayer, X: 2, Y: genBaseline - 3},
		Line(-1, genBaseline-genWallH, false, genWallH+genDepth),
		Line(width, genBaseline-genWallH, false, genWallH+genDepth),
	)

	// merge equal-height columns into single rectangles so the player never catches on seams
	for start := 0; start < width; {
		end := start
		for end < width && tops[end] == tops[start] {
			end++
		}
		top, run := tops[start], end-start
		ps = append(ps, Rectangle(start, top, run, genBaseline+genAmplitude+genDepth-top))
		if start >= genSafeZone && run >= genMinFeat {
			ps = append(ps, feature(rng, start, top, run)...)
		}
		start = end
	}

	return Level{Name: "generated", Placements: ps}
}

// feature decorates one flat run whose surface is at row top
func feature(rng *rand.Rand, start, top, run int) []Placement {
	mid := start + run/2
	switch rng.Intn(5) {
	case 0:
		return []Placement{{Kind: KindMelee, X: start + 1, Y: top - 3, ToX: start + run - 3, ToY: top - 3}}
	case 1:
		return []Placement{{Kind: KindTurret, X: mid - 1, Y: top - 2}}
	case 2:
		n := min(3, run-4)
		return []Placement{{Kind: KindSpikes, X: mid - n/2, Y: top - 1, Direction: entity.DirUp.String(), Length: n}}
	case 3:
		return []Placement{{Kind: KindAmmo, X: mid, Y: top - 2, Slot: entity.SlotPistol, Amount: 3 + rng.Intn(5)}}
	default:
		return nil
	}
}
