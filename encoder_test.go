package letterhuffman

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	table := makeTestTable(t, "AAB")

	codes, err := Encode("AAB", table)
	require.NoError(t, err)

	actual := make([]string, len(codes))
	for i, hc := range codes {
		actual[i] = hc.BitString()
	}
	if diff := cmp.Diff([]string{"1", "1", "0"}, actual); diff != "" {
		t.Errorf("wrong codes (-want +got):\n%s", diff)
	}
	require.Equal(t, "110", JoinCodes(codes))

	bits, err := EncodeString("AAB", table)
	require.NoError(t, err)
	require.Equal(t, "110", bits)
}

func TestEncode_Empty(t *testing.T) {
	table := makeTestTable(t, "AAB")

	codes, err := Encode("", table)
	require.NoError(t, err)
	require.Empty(t, codes)

	bits, err := EncodeString("", table)
	require.NoError(t, err)
	require.Equal(t, "", bits)
}

func TestEncode_UnknownSymbol(t *testing.T) {
	table := makeTestTable(t, "AB")

	type testRow struct {
		name   string
		input  string
		detail string
	}

	testData := [...]testRow{
		{name: "unseen-letter", input: "ABC", detail: "'C' at offset 2"},
		{name: "space-not-trained", input: "A B", detail: "' ' at offset 1"},
		{name: "outside-alphabet", input: "Ab", detail: "'b' at offset 1"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			codes, err := Encode(row.input, table)
			require.ErrorIs(t, err, ErrUnknownSymbol)
			require.Nil(t, codes)
			if !strings.Contains(err.Error(), row.detail) {
				t.Errorf("expected error to mention %s, got: %v", row.detail, err)
			}

			_, err = EncodeString(row.input, table)
			require.ErrorIs(t, err, ErrUnknownSymbol)
		})
	}
}
