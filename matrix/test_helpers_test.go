// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for kernels.
//   - Keep fixtures exactly representable so exact equality stays meaningful.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/libmatrix/matrix"
)

// MustFromRows BUILDS a matrix from a nested literal or fails the test.
func MustFromRows[T matrix.Number](t testing.TB, rows [][]T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows(%v): %v", rows, err)
	}

	return m
}

// MustNew ALLOCATES a width×height matrix seeded with diagonal or fails the test.
func MustNew[T matrix.Number](t testing.TB, diagonal T, width, height int) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.New(diagonal, width, height)
	if err != nil {
		t.Fatalf("New(%v,%d,%d): %v", diagonal, width, height, err)
	}

	return m
}

// MustAt READS (x,y) or fails the test.
func MustAt[T matrix.Number](t testing.TB, m *matrix.Matrix[T], x, y int) T {
	t.Helper()
	v, err := m.At(x, y)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", x, y, err)
	}

	return v
}

// ToRows EXPORTS m as a nested literal (one slice per row).
func ToRows[T matrix.Number](t testing.TB, m *matrix.Matrix[T]) [][]T {
	t.Helper()
	out := make([][]T, m.Height())
	for y := range out {
		row, err := m.Row(y)
		if err != nil {
			t.Fatalf("Row(%d): %v", y, err)
		}
		out[y] = row
	}

	return out
}

// RequireRows COMPARES m against a nested literal exactly and reports a diff.
// -0 and +0 compare equal, as they do under matrix.Equal.
func RequireRows[T matrix.Number](t testing.TB, want [][]T, m *matrix.Matrix[T]) {
	t.Helper()
	got := ToRows(t, m)
	if len(want) == 0 && len(got) == 0 {
		return
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

// RandomIntRows GENERATES an h×w literal of small integer-valued entries in
// [-lim, lim] from a fixed seed.
func RandomIntRows(seed int64, w, h, lim int) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, h)
	for y := range out {
		out[y] = make([]float64, w)
		for x := range out[y] {
			out[y][x] = float64(rng.Intn(2*lim+1) - lim)
		}
	}

	return out
}
