package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Mode describes a game with Teams teams of Size players each
type Mode struct {
	Teams int
	Size  int
}

// ParseMode parses descriptors like "4v4", "3v3v3v3" or "2on2on2". Sizes are plain decimal digits, separators
// are case-insensitive and surrounding whitespace is ignored. Every team must have the same size and a game must
// have at least two teams
func ParseMode(descriptor string) (Mode, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(descriptor)), "on", "v")
	if normalized == "" {
		return Mode{}, fmt.Errorf("%w: empty descriptor", ErrInvalidModeSpec)
	}

	sizes := make([]int, 0)
	for _, field := range strings.Split(normalized, "v") {
		size, err := strconv.Atoi(field)
		if err != nil || size <= 0 || !isDigits(field) {
			return Mode{}, fmt.Errorf("%w: \"%v\" is not a positive team size in \"%v\"", ErrInvalidModeSpec, field, descriptor)
		}
		sizes = append(sizes, size)
	}

	if len(sizes) < 2 {
		return Mode{}, fmt.Errorf("%w: \"%v\" describes a single team", ErrInvalidModeSpec, descriptor)
	} else if len(lo.Uniq(sizes)) != 1 {
		return Mode{}, fmt.Errorf("%w: asymmetric team sizes %v are not supported", ErrInvalidModeSpec, sizes)
	}

	return Mode{Teams: len(sizes), Size: sizes[0]}, nil
}

// Players returns the total number of players in a game of this mode
func (mode Mode) Players() int {
	return mode.Teams * mode.Size
}

// String returns the canonical descriptor (e.g. "4on4" becomes "4v4")
func (mode Mode) String() string {
	return strings.Join(lo.Times(mode.Teams, func(_ int) string { return strconv.Itoa(mode.Size) }), "v")
}

func isDigits(field string) bool {
	return field != "" && strings.Trim(field, "0123456789") == ""
}
