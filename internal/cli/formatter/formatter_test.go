package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/quarterplan/internal/domain"
)

func TestFormatWeeks(t *testing.T) {
	assert.Equal(t, "0", FormatWeeks(0))
	assert.Equal(t, "12", FormatWeeks(12))
	assert.Equal(t, "2.5", FormatWeeks(2.5))
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "100%", FormatPercentage(100))
	assert.Equal(t, "60%", FormatPercentage(60))
	assert.Equal(t, "33.3%", FormatPercentage(33.3))
}

func TestBadge_CoversAllTypes(t *testing.T) {
	for _, b := range []domain.BadgeType{
		domain.BadgeNeutral, domain.BadgeSuccess, domain.BadgeWarning, domain.BadgeError,
	} {
		assert.NotEmpty(t, Badge(b))
	}
	assert.Contains(t, Badge(domain.BadgeSuccess), "ON TARGET")
	assert.Contains(t, Badge(domain.BadgeError), "OFF TARGET")
}

func TestRenderCapacityBar(t *testing.T) {
	bar := RenderCapacityBar(6, 12, 10)
	assert.Contains(t, bar, "6/12w")
	assert.Contains(t, bar, filledBlock)
	assert.Contains(t, bar, emptyBlock)

	full := RenderCapacityBar(12, 12, 10)
	assert.NotContains(t, full, emptyBlock)

	// Over-allocation never overflows the bar.
	over := RenderCapacityBar(24, 12, 10)
	assert.Contains(t, over, "24/12w")
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable([]string{"NAME", "ROLE"}, [][]string{
		{"Alice", "SDE"},
		{"Bo", "AS"},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[2], "Alice")
	assert.Contains(t, lines[3], "Bo")
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestHeader_Underlines(t *testing.T) {
	out := Header("Team")
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "TEAM")
}
