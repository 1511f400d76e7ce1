package perceptron

import (
	"regexp"
	"strconv"
)

// Annotations arrive embedded in the model's text output as XML-like tags:
// <point>, <point_box> and <polygon> items carrying "(x,y)" coordinate
// pairs and an optional mention="..." label, optionally grouped inside
// <collection> tags whose mention is inherited by unlabeled children.

func tagRegexp(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)<` + name + `([^>]*)>([\s\S]*?)</` + name + `>`)
}

var (
	pointRegexp      = tagRegexp("point")
	boxRegexp        = tagRegexp("point_box")
	polygonRegexp    = tagRegexp("polygon")
	collectionRegexp = tagRegexp("collection")

	coordRegexp   = regexp.MustCompile(`\(\s*(\d+)\s*,\s*(\d+)\s*\)`)
	mentionRegexp = regexp.MustCompile(`mention="([^"]*)"`)
)

// extractPointing pulls annotations of the requested format out of model
// output text. Returns nil when the text contains none, and always nil for
// FormatText.
func extractPointing(text string, format OutputFormat) *Pointing {
	switch format {
	case FormatPoint:
		points := extractItems(text, pointRegexp, parsePoint)
		if len(points) == 0 {
			return nil
		}
		return &Pointing{Points: points}
	case FormatBox:
		boxes := extractItems(text, boxRegexp, parseBox)
		if len(boxes) == 0 {
			return nil
		}
		return &Pointing{Boxes: boxes}
	case FormatPolygon:
		polygons := extractItems(text, polygonRegexp, parsePolygon)
		if len(polygons) == 0 {
			return nil
		}
		return &Pointing{Polygons: polygons}
	default:
		return nil
	}
}

// parseMention reports the mention attribute value and whether the
// attribute was present at all. An explicit mention="" is present but
// empty, and is not replaced by a collection's mention.
func parseMention(attrs string) (string, bool) {
	if m := mentionRegexp.FindStringSubmatch(attrs); m != nil {
		return m[1], true
	}
	return "", false
}

func parseCoords(body string) [][2]int {
	var coords [][2]int
	for _, m := range coordRegexp.FindAllStringSubmatch(body, -1) {
		x, errX := strconv.Atoi(m[1])
		y, errY := strconv.Atoi(m[2])
		if errX != nil || errY != nil {
			continue
		}
		coords = append(coords, [2]int{x, y})
	}
	return coords
}

func parsePoint(coords [][2]int, mention string) (Point, bool) {
	if len(coords) == 0 {
		return Point{}, false
	}
	return Point{X: coords[0][0], Y: coords[0][1], Mention: mention}, true
}

func parseBox(coords [][2]int, mention string) (BoundingBox, bool) {
	if len(coords) < 2 {
		return BoundingBox{}, false
	}
	return BoundingBox{
		X1:      coords[0][0],
		Y1:      coords[0][1],
		X2:      coords[1][0],
		Y2:      coords[1][1],
		Mention: mention,
	}, true
}

func parsePolygon(coords [][2]int, mention string) (Polygon, bool) {
	if len(coords) < 3 {
		return Polygon{}, false
	}
	hull := make([][2]int, len(coords))
	copy(hull, coords)
	return Polygon{Hull: hull, Mention: mention}, true
}

// extractItems collects items of the target tag type. Collections are
// processed first and stripped from the text so their children are not
// counted twice; standalone items follow.
func extractItems[T any](text string, target *regexp.Regexp, parse func(coords [][2]int, mention string) (T, bool)) []T {
	var results []T

	remaining := collectionRegexp.ReplaceAllStringFunc(text, func(match string) string {
		groups := collectionRegexp.FindStringSubmatch(match)
		parentMention, _ := parseMention(groups[1])
		for _, inner := range target.FindAllStringSubmatch(groups[2], -1) {
			mention, present := parseMention(inner[1])
			if !present {
				mention = parentMention
			}
			if item, ok := parse(parseCoords(inner[2]), mention); ok {
				results = append(results, item)
			}
		}
		return ""
	})

	for _, m := range target.FindAllStringSubmatch(remaining, -1) {
		mention, _ := parseMention(m[1])
		if item, ok := parse(parseCoords(m[2]), mention); ok {
			results = append(results, item)
		}
	}
	return results
}
