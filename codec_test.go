package letterhuffman

import (
	"math/rand/v2"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomText(rng *rand.Rand) string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ "
	n := 1 + rng.IntN(64)
	var sb strings.Builder
	for sb.Len() < n {
		sb.WriteByte(alphabet[rng.IntN(len(alphabet))])
	}
	text := sb.String()
	if strings.TrimSpace(text) == "" {
		text += "E"
	}
	return text
}

func TestTrain_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 500; i++ {
		text := randomText(rng)

		c, err := Train(text)
		require.NoError(t, err, "Train(%q)", text)
		require.True(t, c.Table().IsPrefixFree())

		bits, err := c.Encode(text)
		require.NoError(t, err, "Encode(%q)", text)

		actual, err := c.Decode(bits)
		require.NoError(t, err, "Decode(%q)", bits)
		require.Equal(t, text, actual)
	}
}

func TestPipeline_RoundTripWithoutSpaces(t *testing.T) {
	for _, text := range []string{"A", "AAAA", "AAB", "ABRACADABRA", "MISSISSIPPI"} {
		root, err := BuildTree(CountFrequencies(text))
		require.NoError(t, err)
		table, err := BuildEncodingTable(root)
		require.NoError(t, err)

		codes, err := Encode(text, table)
		require.NoError(t, err)
		for _, hc := range codes {
			require.NotZero(t, hc.Size, "empty code while encoding %q", text)
		}

		actual, err := Decode(JoinCodes(codes), root)
		require.NoError(t, err)
		require.Equal(t, text, actual)
	}
}

func TestTrain(t *testing.T) {
	c, err := Train("AB A")
	require.NoError(t, err)

	bits, err := c.Encode("AB A")
	require.NoError(t, err)
	require.Equal(t, "1110011", bits)

	text, err := c.Decode("01110")
	require.NoError(t, err)
	require.Equal(t, " AB", text)

	require.Equal(t, 3, c.Table().Len())
	require.Equal(t, Fingerprint(c.Root()), c.Fingerprint())
}

func TestTrain_SingleLetter(t *testing.T) {
	c, err := Train("AAAA")
	require.NoError(t, err)

	hc, found := c.Table().Lookup(0)
	require.True(t, found)
	require.Equal(t, "0", hc.BitString())

	bits, err := c.Encode("AAAA")
	require.NoError(t, err)
	require.Equal(t, "0000", bits)
}

func TestTrain_EmptyAlphabet(t *testing.T) {
	for _, text := range []string{"", " ", "    "} {
		c, err := Train(text)
		require.ErrorIs(t, err, ErrEmptyAlphabet)
		require.Nil(t, c)
	}
}

func TestNewCodec_Malformed(t *testing.T) {
	c, err := NewCodec(&Internal{})
	require.ErrorIs(t, err, ErrMalformedTree)
	require.Nil(t, c)
}

func TestCodec_ConcurrentUse(t *testing.T) {
	const text = "THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG"
	c, err := Train(text)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				bits, err := c.Encode(text)
				if err != nil {
					errs[i] = err
					return
				}
				if _, err := c.Decode(bits); err != nil {
					errs[i] = err
					return
				}
			}
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}
}
