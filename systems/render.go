package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/automoto/deadeye/components"
	cfg "github.com/automoto/deadeye/config"
	"github.com/automoto/deadeye/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	skyColor    = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	groundColor = color.RGBA{R: 70, G: 74, B: 70, A: 255}
	gridColor   = color.RGBA{R: 92, G: 96, B: 92, A: 255}

	healthBarBack = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

// Pixels of screen offset per unit of shake amplitude.
const shakePixelScale = 100

// view holds everything needed to project a world point into screen space
// for one frame: camera basis angles, the focal length derived from the
// vertical FOV, and the frame's shake offset.
type view struct {
	pos        gamemath.Vector3
	sinYaw     float64
	cosYaw     float64
	sinPitch   float64
	cosPitch   float64
	focal      float64
	cx, cy     float64
	offX, offY float64
}

func newView(e *ecs.ECS, camera *components.CameraData, screen *ebiten.Image) view {
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())

	yaw := camera.Yaw * math.Pi / 180
	pitch := camera.Pitch * math.Pi / 180

	v := view{
		pos:      camera.Position,
		sinYaw:   math.Sin(yaw),
		cosYaw:   math.Cos(yaw),
		sinPitch: math.Sin(pitch),
		cosPitch: math.Cos(pitch),
		focal:    (h / 2) / math.Tan(cfg.Camera.FOV*math.Pi/360),
		cx:       w / 2,
		cy:       h / 2,
	}

	if entry, ok := components.Session.First(e.World); ok {
		shake := components.ScreenShake.Get(entry)
		if shake.Active() {
			session := components.Session.Get(entry)
			v.offX = (session.Rand.Float64()*2 - 1) * shake.Current * shakePixelScale
			v.offY = (session.Rand.Float64()*2 - 1) * shake.Current * shakePixelScale
		}
	}
	return v
}

// toView rotates a world point into camera space. Depth grows along the
// camera's forward axis; points behind the camera have depth <= 0.
func (v *view) toView(p gamemath.Vector3) (x, y, depth float64) {
	rel := p.Sub(v.pos)

	vx := rel.X*v.cosYaw - rel.Z*v.sinYaw
	vz := rel.X*v.sinYaw + rel.Z*v.cosYaw

	vy := rel.Y*v.cosPitch + vz*v.sinPitch
	vz = -rel.Y*v.sinPitch + vz*v.cosPitch

	return vx, vy, -vz
}

func (v *view) toScreen(x, y, depth float64) (sx, sy float64) {
	sx = v.cx + x*v.focal/depth + v.offX
	sy = v.cy - y*v.focal/depth + v.offY
	return sx, sy
}

// project maps a world point to screen space. ok is false when the point
// is at or behind the near plane.
func (v *view) project(p gamemath.Vector3) (sx, sy, depth float64, ok bool) {
	x, y, depth := v.toView(p)
	if depth <= cfg.Camera.Near {
		return 0, 0, depth, false
	}
	sx, sy = v.toScreen(x, y, depth)
	return sx, sy, depth, true
}

type sprite struct {
	depth float64
	draw  func(screen *ebiten.Image)
}

// DrawWorld renders the 3D scene: sky, ground plane with grid, then all
// billboarded sprites back to front.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	v := newView(e, camera, screen)

	screen.Fill(skyColor)
	drawGround(&v, screen)
	drawGrid(&v, screen)

	sprites := collectSprites(e, &v)
	sort.Slice(sprites, func(i, j int) bool {
		return sprites[i].depth > sprites[j].depth
	})
	for _, s := range sprites {
		s.draw(screen)
	}
}

func drawGround(v *view, screen *ebiten.Image) {
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())

	// The ground plane fills everything below the horizon line.
	horizon := v.cy + v.focal*(v.sinPitch/v.cosPitch) + v.offY
	horizon = gamemath.Clamp(horizon, 0, h)

	vector.FillRect(screen,
		0, float32(horizon),
		float32(w), float32(h-horizon),
		groundColor, false)
}

func drawGrid(v *view, screen *ebiten.Image) {
	half := cfg.Arena.GroundHalf
	step := cfg.Arena.GridStep

	for c := -half; c <= half; c += step {
		drawGroundLine(v, screen,
			gamemath.Vector3{X: c, Y: 0, Z: -half},
			gamemath.Vector3{X: c, Y: 0, Z: half})
		drawGroundLine(v, screen,
			gamemath.Vector3{X: -half, Y: 0, Z: c},
			gamemath.Vector3{X: half, Y: 0, Z: c})
	}
}

// drawGroundLine projects a world-space segment, clipping it at the near
// plane so lines passing beside the camera still render.
func drawGroundLine(v *view, screen *ebiten.Image, a, b gamemath.Vector3) {
	ax, ay, ad := v.toView(a)
	bx, by, bd := v.toView(b)

	near := cfg.Camera.Near
	if ad <= near && bd <= near {
		return
	}
	if ad <= near {
		t := (near - ad) / (bd - ad)
		ax += (bx - ax) * t
		ay += (by - ay) * t
		ad = near
	} else if bd <= near {
		t := (near - bd) / (ad - bd)
		bx += (ax - bx) * t
		by += (ay - by) * t
		bd = near
	}

	x0, y0 := v.toScreen(ax, ay, ad)
	x1, y1 := v.toScreen(bx, by, bd)
	vector.StrokeLine(screen,
		float32(x0), float32(y0),
		float32(x1), float32(y1),
		1, gridColor, false)
}

func collectSprites(e *ecs.ECS, v *view) []sprite {
	var sprites []sprite

	for _, block := range cfg.Arena.Obstacles {
		center := gamemath.Vector3{X: block.X, Y: block.Y, Z: block.Z}
		sx, sy, depth, ok := v.project(center)
		if !ok {
			continue
		}
		scale := v.focal / depth
		w := block.W * scale
		h := block.H * scale
		x, y := sx, sy
		sprites = append(sprites, sprite{depth: depth, draw: func(screen *ebiten.Image) {
			vector.FillRect(screen,
				float32(x-w/2), float32(y-h/2),
				float32(w), float32(h),
				cfg.Gray, false)
		}})
	}

	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		sprites = appendEnemySprite(sprites, v, entry)
	})
	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		sprites = appendParticleSprite(sprites, v, entry)
	})

	return sprites
}

func appendEnemySprite(sprites []sprite, v *view, entry *donburi.Entry) []sprite {
	enemy := components.Enemy.Get(entry)
	health := components.Health.Get(entry)
	pos := components.Transform.Get(entry).Position

	sx, sy, depth, ok := v.project(pos)
	if !ok {
		return sprites
	}
	scale := v.focal / depth
	w := enemy.TypeConfig.Size * scale
	h := 2 * enemy.TypeConfig.Size * scale
	bodyColor := enemy.TypeConfig.Color
	ratio := health.Ratio()

	return append(sprites, sprite{depth: depth, draw: func(screen *ebiten.Image) {
		vector.FillRect(screen,
			float32(sx-w/2), float32(sy-h/2),
			float32(w), float32(h),
			bodyColor, false)

		barW := w
		barH := math.Max(3, h*0.05)
		barX := sx - barW/2
		barY := sy - h/2 - barH - 4
		vector.FillRect(screen,
			float32(barX), float32(barY),
			float32(barW), float32(barH),
			healthBarBack, false)
		vector.FillRect(screen,
			float32(barX), float32(barY),
			float32(barW*gamemath.Clamp(ratio, 0, 1)), float32(barH),
			healthBarColor(ratio), false)
	}})
}

func healthBarColor(ratio float64) color.RGBA {
	switch {
	case ratio > 0.6:
		return cfg.Green
	case ratio > 0.3:
		return cfg.Yellow
	default:
		return cfg.Red
	}
}

func appendParticleSprite(sprites []sprite, v *view, entry *donburi.Entry) []sprite {
	particle := components.Particle.Get(entry)
	pos := components.Transform.Get(entry).Position

	sx, sy, depth, ok := v.project(pos)
	if !ok {
		return sprites
	}
	size := math.Max(1, cfg.Particles.Size*v.focal/depth)
	clr := fadeColor(particle.Color, particle.LifeRatio())

	return append(sprites, sprite{depth: depth, draw: func(screen *ebiten.Image) {
		vector.FillRect(screen,
			float32(sx-size/2), float32(sy-size/2),
			float32(size), float32(size),
			clr, false)
	}})
}

// fadeColor premultiplies a particle color by its remaining life.
func fadeColor(c color.RGBA, ratio float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * ratio),
		G: uint8(float64(c.G) * ratio),
		B: uint8(float64(c.B) * ratio),
		A: uint8(255 * ratio),
	}
}
