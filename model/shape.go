package model

import (
	"fmt"
	"slices"
)

// Shape is the permitted shape for diagram geometry.
type Shape struct {
	Identity
}

// Point is a position on a diagram.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// RectangularShape is a shape with a top-left corner and a size.
type RectangularShape struct {
	Shape

	topLeft Point
	width   int
	height  int
}

// TopLeft returns the top-left corner.
func (r *RectangularShape) TopLeft() Point { return r.topLeft }

// Width returns the width.
func (r *RectangularShape) Width() int { return r.width }

// Height returns the height.
func (r *RectangularShape) Height() int { return r.height }

func (r *RectangularShape) setField(field string, value any) error {
	switch field {
	case "x", "y":
		n, err := asInt(value)
		if err != nil {
			return err
		}
		if field == "x" {
			r.topLeft.X = n
		} else {
			r.topLeft.Y = n
		}
		return nil

	case "width", "height":
		n, err := asInt(value)
		if err != nil {
			return err
		}
		if err := fieldValidate.Var(n, "gt=0"); err != nil {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidValue, field, n)
		}
		if field == "width" {
			r.width = n
		} else {
			r.height = n
		}
		return nil
	}
	return r.Shape.setField(field, value)
}

// Rectangle is a rectangular node view.
type Rectangle struct {
	RectangularShape
}

// NewRectangle creates a rectangle from fields. Width and height default to 1.
func NewRectangle(fields Fields, opts ...Option) (*Rectangle, error) {
	r := &Rectangle{}
	r.width, r.height = 1, 1
	if err := Init(r, KindRectangle, fields, opts...); err != nil {
		return nil, err
	}
	return r, nil
}

// Text is a rectangular text box on a diagram.
type Text struct {
	RectangularShape
}

// NewText creates a text box from fields. Width and height default to 1.
func NewText(fields Fields, opts ...Option) (*Text, error) {
	t := &Text{}
	t.width, t.height = 1, 1
	if err := Init(t, KindText, fields, opts...); err != nil {
		return nil, err
	}
	return t, nil
}

// Path is a polyline connecting diagram points.
type Path struct {
	Shape

	points []Point
}

// NewPath creates a path from fields.
func NewPath(fields Fields, opts ...Option) (*Path, error) {
	p := &Path{}
	if err := Init(p, KindPath, fields, opts...); err != nil {
		return nil, err
	}
	return p, nil
}

// Points returns a copy of the path points.
func (p *Path) Points() []Point { return slices.Clone(p.points) }

func (p *Path) setField(field string, value any) error {
	if field == "points" {
		switch v := value.(type) {
		case nil:
			p.points = nil
		case []Point:
			p.points = slices.Clone(v)
		default:
			return fmt.Errorf("%w: expected []Point, got %T", ErrInvalidType, value)
		}
		return nil
	}
	return p.Shape.setField(field, value)
}
