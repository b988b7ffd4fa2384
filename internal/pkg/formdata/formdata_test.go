package formdata

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseList_JSONArray(t *testing.T) {
	got := ParseList(`["a","b","c"]`)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestParseList_CommaFallback(t *testing.T) {
	got := ParseList("a,b,c")
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestParseList_BothModesAgree(t *testing.T) {
	// The client may send either encoding for the same field; both must
	// yield the same sequence.
	assert.Equal(t, ParseList(`["a","b","c"]`), ParseList("a,b,c"))
}

func TestParseList_CommaTrimsAndDropsEmpty(t *testing.T) {
	got := ParseList(" a , ,b ,, c ")
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestParseList_Empty(t *testing.T) {
	assert.Equal(t, []string{}, ParseList(""))
	assert.Equal(t, []string{}, ParseList("   "))
}

func TestParseList_PreservesOrderAndDuplicates(t *testing.T) {
	got := ParseList("b,a,b")
	assert.Equal(t, []string{"b", "a", "b"}, got)
}

func TestParseList_InvalidJSONFallsBack(t *testing.T) {
	// A lone bracket is not valid JSON; the comma stage takes over.
	got := ParseList("[oops")
	assert.Equal(t, []string{"[oops"}, got)
}

func TestParseBool(t *testing.T) {
	assert.True(t, ParseBool("true"))
	assert.True(t, ParseBool("TRUE"))
	assert.True(t, ParseBool(" true "))
	assert.False(t, ParseBool("false"))
	assert.False(t, ParseBool(""))
	assert.False(t, ParseBool("1"))
	assert.False(t, ParseBool("yes"))
}

func TestParseDate_Layouts(t *testing.T) {
	for _, input := range []string{
		"2024-06-01",
		"2024-06-01T10:30:00Z",
		"2024-06-01T10:30:00.000Z",
	} {
		got, ok := ParseDate(input)
		require.True(t, ok, "input %q", input)
		assert.Equal(t, 2024, got.Year())
		assert.Equal(t, time.June, got.Month())
	}
}

func TestParseDate_Invalid(t *testing.T) {
	_, ok := ParseDate("next tuesday")
	assert.False(t, ok)
	_, ok = ParseDate("")
	assert.False(t, ok)
}

func TestHas(t *testing.T) {
	values := url.Values{"title": {""}, "summary": {"x"}}
	assert.True(t, Has(values, "title"), "present-but-empty still counts as supplied")
	assert.True(t, Has(values, "summary"))
	assert.False(t, Has(values, "images"))
}
