// Package compose renders calculation output for humans: map links, place
// chains and customer-facing money formatting.
package compose

import (
	"fmt"
	"math"
	"route-cost-service/internal/domain"
	"strconv"
	"strings"
)

const mapsBaseURL = "https://www.google.com.ua/maps/dir/"

// MapURL builds a Google Maps directions link through the given points.
func MapURL(points ...domain.GeoPoint) string {
	var b strings.Builder
	b.WriteString(mapsBaseURL)
	for _, p := range points {
		fmt.Fprintf(&b, "%v,%v/", p.Lat, p.Lng)
	}
	return b.String()
}

// PlaceChain joins display names with " - ".
func PlaceChain(names ...string) string {
	return strings.Join(names, " - ")
}

// VisibleRoute drops anchors that coincide with their predecessor, so a trip
// starting at a depot does not show the depot twice.
func VisibleRoute(points []domain.GeoPoint, names []string) ([]domain.GeoPoint, []string) {
	outPoints := make([]domain.GeoPoint, 0, len(points))
	outNames := make([]string, 0, len(names))
	for i := range points {
		if i > 0 && points[i].SamePoint(points[i-1]) {
			continue
		}
		outPoints = append(outPoints, points[i])
		outNames = append(outNames, names[i])
	}
	return outPoints, outNames
}

// RoundCost rounds a gross cost to a human-friendly precision tier. Sub-unit
// precision on a route price is meaningless to customers.
func RoundCost(cost float64) float64 {
	switch {
	case cost <= 1300:
		return math.Round(cost/10) * 10
	case cost <= 35000:
		return math.Round(cost/100) * 100
	default:
		return math.Round(cost/1000) * 1000
	}
}

// FormatCost renders a cost with two decimals and space-separated thousands,
// e.g. 15300 -> "15 300.00".
func FormatCost(cost float64) string {
	s := strconv.FormatFloat(cost, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	return sign + strings.Join(groups, " ") + "." + fracPart
}
