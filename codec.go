// Copyright 2026 The Mat3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat3d

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// stateShape is the canonical textual shape of a transform state: a
// bracketed numeric array of the 16 matrix values followed by the
// four rectangle bounds in parentheses. The array is optional so that
// bounds-only input still parses (with an identity matrix).
var stateShape = regexp.MustCompile(`Mat3D(\[[^\]]*\])?\(([^,)]*),([^,)]*),([^,)]*),([^)]*)\)`)

// String returns the canonical string form of the state:
//
//	Mat3D[<16 matrix values>](<left>, <top>, <right>, <bottom>)
//
// This is the state's only serialized form; [Parse] reconstructs an
// equivalent state from it.
func (t *Mat3D) String() string {
	var sb strings.Builder
	sb.WriteString("Mat3D[")
	for i, v := range t.matrix {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(formatBound(v))
	}
	sb.WriteString("](")
	sb.WriteString(formatBound(t.rect.Min.X))
	sb.WriteString(", ")
	sb.WriteString(formatBound(t.rect.Min.Y))
	sb.WriteString(", ")
	sb.WriteString(formatBound(t.rect.Max.X))
	sb.WriteString(", ")
	sb.WriteString(formatBound(t.rect.Max.Y))
	sb.WriteByte(')')
	return sb.String()
}

// Parse returns a new owning transform state reconstructed from the
// string form produced by [Mat3D.String]. Parsing never fails:
//   - a rectangle bound that is missing or not a number becomes 0;
//   - a matrix array that is missing or does not decode as 16 numbers
//     becomes the identity matrix (the parsed rectangle is kept);
//   - a string that does not match the shape at all yields the
//     default state: identity matrix, empty rectangle.
func Parse(source string) *Mat3D {
	t := New()
	match := stateShape.FindStringSubmatch(source)
	if match == nil {
		return t
	}
	if arr := match[1]; arr != "" {
		var values []float32
		if err := json.Unmarshal([]byte(arr), &values); err == nil && len(values) == 16 {
			copy(t.matrix, values)
		}
	}
	t.rect.Min.X = parseBound(match[2])
	t.rect.Min.Y = parseBound(match[3])
	t.rect.Max.X = parseBound(match[4])
	t.rect.Max.Y = parseBound(match[5])
	return t
}

// formatBound renders a value in the shortest decimal form that
// parses back to the same float32, which is what makes the
// String/Parse round trip exact.
func formatBound(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func parseBound(s string) float32 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0
	}
	return float32(v)
}
