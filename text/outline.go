package text

import (
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
)

// OutlinePoint is a point of a glyph outline in layout units (y up).
type OutlinePoint struct {
	X, Y float32
}

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo starts a new contour.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	default:
		return unknownStr
	}
}

// OutlineSegment is one command of a glyph outline.
type OutlineSegment struct {
	Op OutlineOp

	// Points holds the operands:
	//   - MoveTo, LineTo: Points[0] is the target
	//   - QuadTo: Points[0] is the control, Points[1] the target
	//   - CubicTo: Points[0], Points[1] are controls, Points[2] the target
	Points [3]OutlinePoint
}

// GlyphOutline is the filled outline of one glyph, scaled to the face
// size. Contours are implicitly closed: every MoveTo after the first ends
// the previous contour.
type GlyphOutline struct {
	Segments []OutlineSegment

	// Bounds is the control-point bounding box in layout units.
	Bounds Rect

	GID GlyphID
}

// IsEmpty returns true if the outline has no segments (e.g. a space).
func (o *GlyphOutline) IsEmpty() bool {
	return o == nil || len(o.Segments) == 0
}

// Contours returns the number of contours in the outline.
func (o *GlyphOutline) Contours() int {
	if o == nil {
		return 0
	}
	n := 0
	for _, seg := range o.Segments {
		if seg.Op == OutlineOpMoveTo {
			n++
		}
	}
	return n
}

// Translate returns a copy of the outline moved by (dx, dy).
func (o *GlyphOutline) Translate(dx, dy float32) *GlyphOutline {
	if o == nil {
		return nil
	}
	moved := &GlyphOutline{
		Segments: make([]OutlineSegment, len(o.Segments)),
		GID:      o.GID,
		Bounds: Rect{
			MinX: o.Bounds.MinX + float64(dx),
			MinY: o.Bounds.MinY + float64(dy),
			MaxX: o.Bounds.MaxX + float64(dx),
			MaxY: o.Bounds.MaxY + float64(dy),
		},
	}
	for i, seg := range o.Segments {
		moved.Segments[i].Op = seg.Op
		for j, p := range seg.Points {
			moved.Segments[i].Points[j] = OutlinePoint{X: p.X + dx, Y: p.Y + dy}
		}
	}
	return moved
}

// OutlineExtractor extracts glyph outlines from the go-text view of a
// FontSource. It holds no state and is safe for concurrent use.
type OutlineExtractor struct{}

// NewOutlineExtractor creates a new outline extractor.
func NewOutlineExtractor() *OutlineExtractor {
	return &OutlineExtractor{}
}

// Extract returns the outline of gid scaled to face.Size(). Glyphs without
// vector data (spaces, bitmap or SVG glyphs) yield an empty outline.
func (e *OutlineExtractor) Extract(face Face, gid GlyphID) (*GlyphOutline, error) {
	source := face.Source()
	f := source.goTextFont()
	if f == nil {
		return nil, ErrClosedSource
	}
	upem := f.Upem()
	if upem == 0 {
		return nil, &FontError{Font: source.Name(), Reason: "font has zero units per em"}
	}

	outline := &GlyphOutline{GID: gid}
	data, ok := font.NewFace(f).GlyphData(font.GID(gid)).(font.GlyphOutline)
	if !ok || len(data.Segments) == 0 {
		return outline, nil
	}

	scale := float32(face.Size()) / float32(upem)
	outline.Segments = make([]OutlineSegment, 0, len(data.Segments))
	first := true
	for _, seg := range data.Segments {
		out := OutlineSegment{}
		n := 1
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			out.Op = OutlineOpMoveTo
		case opentype.SegmentOpLineTo:
			out.Op = OutlineOpLineTo
		case opentype.SegmentOpQuadTo:
			out.Op = OutlineOpQuadTo
			n = 2
		case opentype.SegmentOpCubeTo:
			out.Op = OutlineOpCubicTo
			n = 3
		default:
			continue
		}
		for i := 0; i < n; i++ {
			p := OutlinePoint{X: seg.Args[i].X * scale, Y: seg.Args[i].Y * scale}
			out.Points[i] = p
			if first {
				outline.Bounds = Rect{MinX: float64(p.X), MinY: float64(p.Y), MaxX: float64(p.X), MaxY: float64(p.Y)}
				first = false
			} else {
				outline.Bounds = extendRect(outline.Bounds, p)
			}
		}
		outline.Segments = append(outline.Segments, out)
	}
	return outline, nil
}

func extendRect(r Rect, p OutlinePoint) Rect {
	x, y := float64(p.X), float64(p.Y)
	if x < r.MinX {
		r.MinX = x
	}
	if y < r.MinY {
		r.MinY = y
	}
	if x > r.MaxX {
		r.MaxX = x
	}
	if y > r.MaxY {
		r.MaxY = y
	}
	return r
}
