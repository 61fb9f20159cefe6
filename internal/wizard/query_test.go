package wizard

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_WireRoundTrip(t *testing.T) {
	d, err := ownerSchema.Build(
		SetText{Field: "firstName", Value: "Ann & Co"},
		SetText{Field: "notes", Value: "a=b?c#d ñ"},
		SetList{Field: "phones", Values: []string{"+1 555-0001", "", "555/0002"}},
		SetFlag{Field: "marketingOptIn", Value: true},
	)
	require.NoError(t, err)

	raw := ownerSchema.Encode(d).Encode()
	q, err := url.ParseQuery(raw)
	require.NoError(t, err)

	got := ownerSchema.Decode(ParseQuery(q))
	if diff := cmp.Diff(ownerSchema.Normalize(d).Fields(), got.Fields()); diff != "" {
		t.Fatalf("wire round trip (-want +got):\n%s", diff)
	}
}

func TestQuery_Format(t *testing.T) {
	q := ownerSchema.Encode(annLee()).Query()

	assert.Equal(t, []string{"555-0001", "555-0002"}, q["phones[]"])
	assert.Equal(t, "Ann", q.Get("firstName"))
	assert.Equal(t, "false", q.Get("marketingOptIn"))
	_, hasEmptyList := q["petNames[]"]
	assert.False(t, hasEmptyList, "las listas vacías no generan clave")
	_, bare := q["phones"]
	assert.False(t, bare)
}

func TestParseQuery_ListWinsOverBareKey(t *testing.T) {
	p := ParseQuery(url.Values{
		"phones":    {"555-9999"},
		"phones[]":  {"555-0001"},
		"firstName": {"Ann", "ignored"},
		"[]":        {"x"},
	})

	assert.Equal(t, ListParam("555-0001"), p["phones"])
	assert.Equal(t, TextParam("Ann"), p["firstName"])
	_, ok := p[""]
	assert.False(t, ok)
}

func TestParams_EncodeIsSorted(t *testing.T) {
	p := Params{"b": TextParam("2"), "a": TextParam("1"), "c": ListParam("x", "y")}
	assert.Equal(t, "a=1&b=2&c%5B%5D=x&c%5B%5D=y", p.Encode())
}
