package core

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestVec2Add(t *testing.T) {
	v := NewVec2(1, 2).Add(NewVec2(3, -4))
	if v.X != 4 || v.Y != -2 {
		t.Errorf("Add() = (%f, %f), expected (4, -2)", v.X, v.Y)
	}
}

func TestVec2Scale(t *testing.T) {
	v := NewVec2(2, -3).Scale(1.5)
	if v.X != 3 || v.Y != -4.5 {
		t.Errorf("Scale() = (%f, %f), expected (3, -4.5)", v.X, v.Y)
	}
}

func TestVec2Length(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		expected float64
	}{
		{"zero vector", NewVec2(0, 0), 0},
		{"unit x", NewVec2(1, 0), 1},
		{"3-4-5 triangle", NewVec2(3, 4), 5},
		{"negative components", NewVec2(-3, -4), 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.Length(); !almostEqual(got, tc.expected) {
				t.Errorf("Length() = %f, expected %f", got, tc.expected)
			}
		})
	}
}

func TestVec2Rotate(t *testing.T) {
	tests := []struct {
		name  string
		v     Vec2
		angle float64
		want  Vec2
	}{
		{"no rotation", NewVec2(1, 0), 0, NewVec2(1, 0)},
		{"quarter turn", NewVec2(1, 0), math.Pi / 2, NewVec2(0, 1)},
		{"half turn", NewVec2(1, 0), math.Pi, NewVec2(-1, 0)},
		{"negative quarter turn", NewVec2(0, 1), -math.Pi / 2, NewVec2(1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Rotate(tc.angle)
			if !almostEqual(got.X, tc.want.X) || !almostEqual(got.Y, tc.want.Y) {
				t.Errorf("Rotate(%f) = (%f, %f), expected (%f, %f)",
					tc.angle, got.X, got.Y, tc.want.X, tc.want.Y)
			}
		})
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		name     string
		angle    float64
		expected float64
	}{
		{"already in range", 1.0, 1.0},
		{"zero", 0.0, 0.0},
		{"exactly two pi", TwoPi, 0.0},
		{"above two pi", TwoPi + 0.5, 0.5},
		{"small negative", -0.1, TwoPi - 0.1},
		{"large negative", -TwoPi - 0.25, TwoPi - 0.25},
		{"many turns negative", -5 * TwoPi, 0.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := WrapAngle(tc.angle)
			if !almostEqual(got, tc.expected) {
				t.Errorf("WrapAngle(%f) = %f, expected %f", tc.angle, got, tc.expected)
			}
			if got < 0 || got >= TwoPi {
				t.Errorf("WrapAngle(%f) = %f, outside [0, 2π)", tc.angle, got)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
}
