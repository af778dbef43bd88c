package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldAccents(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Maestría", "maestria"},
		{"  ESPECIALIZACIÓN ", "especializacion"},
		{"educación superior", "educacion superior"},
		{"Pregrado", "pregrado"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FoldAccents(tt.in))
		})
	}
}

func TestUniqueStrings(t *testing.T) {
	got := UniqueStrings([]string{"Go", " go ", "", "SQL", "Liderazgo", "sql"})
	assert.Equal(t, []string{"Go", "SQL", "Liderazgo"}, got)
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "Custom", FirstNonEmpty("  ", "Custom", "Canonical"))
	assert.Equal(t, "", FirstNonEmpty("", " "))
}

func TestNewPaginationInfo(t *testing.T) {
	p := NewPaginationInfo(25, 3, 10)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 3, p.CurrentPage)

	p = NewPaginationInfo(25, 9, 10)
	assert.Equal(t, 3, p.CurrentPage)

	p = NewPaginationInfo(0, 1, 10)
	assert.Equal(t, 1, p.TotalPages)
}

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(3, 20)
	assert.Equal(t, uint64(40), offset)
	assert.Equal(t, 20, limit)

	offset, limit = CalculateOffsetLimit(0, 500)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, DefaultPageSize, limit)
}

func TestParseOptionalDate(t *testing.T) {
	d, err := ParseOptionalDate("")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = ParseOptionalDate("2023-06-30")
	require.NoError(t, err)
	assert.Equal(t, 2023, d.Year())
	assert.Equal(t, "2023-06-30", FormatOptionalDate(d))

	_, err = ParseOptionalDate("30/06/2023")
	assert.Error(t, err)
}

func TestAgeAt(t *testing.T) {
	birth := time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 33, AgeAt(birth, time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 34, AgeAt(birth, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)))
}

func TestNullableString(t *testing.T) {
	assert.Nil(t, NullableString("   "))
	require.NotNil(t, NullableString(" x "))
	assert.Equal(t, "x", *NullableString(" x "))
}
