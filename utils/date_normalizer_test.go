package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDateDotFormat(t *testing.T) {
	assert.Equal(t, "2024-01-04", NormalizeDate("04.01.2024"))
	assert.Equal(t, "2023-12-31", NormalizeDate("31.12.2023"))
	assert.Equal(t, "2024-01-04", NormalizeDate("4.1.24"))
}

func TestNormalizeDateDashSlashFormat(t *testing.T) {
	assert.Equal(t, "2024-01-04", NormalizeDate("04-01-2024"))
	assert.Equal(t, "2024-01-04", NormalizeDate("04/01/2024"))
	assert.Equal(t, "2025-10-15", NormalizeDate("15/10/25"))
}

func TestNormalizeDateTextualMonth(t *testing.T) {
	assert.Equal(t, "2024-01-04", NormalizeDate("4 Jan 2024"))
	assert.Equal(t, "2024-01-04", NormalizeDate("Jan 4, 2024"))
	assert.Equal(t, "2024-01-04", NormalizeDate("January 4, 2024"))
	assert.Equal(t, "2024-01-04", NormalizeDate("2024-01-04"))
}

func TestNormalizeDateRejectsImpossibleValues(t *testing.T) {
	assert.Empty(t, NormalizeDate("32.01.2024"))
	assert.Empty(t, NormalizeDate("01.13.2024"))
	assert.Empty(t, NormalizeDate("00-05-2024"))
	assert.Empty(t, NormalizeDate("15/00/2024"))
}

func TestNormalizeDateRejectsGarbage(t *testing.T) {
	assert.Empty(t, NormalizeDate(""))
	assert.Empty(t, NormalizeDate("   "))
	assert.Empty(t, NormalizeDate("not a date"))
	assert.Empty(t, NormalizeDate("549.00"))
}
