package candidates

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invrep/core/repeat"
)

const sample = `{"sequence_id":"a","start":0,"end":20,"score":8,"selected":true,"segments":[{"left_start":0,"left_end":8,"right_start":12,"right_end":20}],"stem":8,"loop":4}
# comment

{"sequence_id":"b","start":5,"end":15,"score":3,"segments":[{"left_start":5,"left_end":7,"right_start":13,"right_end":15}]}
{"sequence_id":"a","start":30,"end":50,"score":6,"segments":[{"left_start":30,"left_end":34,"right_start":46,"right_end":50},{"left_start":35,"left_end":37,"right_start":40,"right_end":42}]}
`

func TestReadGroupsBySequence(t *testing.T) {
	recs, err := Read(context.Background(), strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "a", recs[0].SequenceID)
	assert.Equal(t, 50, recs[0].Length)
	require.Len(t, recs[0].Repeats, 2)
	assert.Equal(t, 8, recs[0].Repeats[0].Score)
	assert.False(t, recs[0].Repeats[0].Selected)
	assert.Equal(t, "[30,34)~[46,50) [35,37)~[40,42)", recs[0].Repeats[1].String())

	assert.Equal(t, "b", recs[1].SequenceID)
	assert.Equal(t, 15, recs[1].Length)
}

func TestReadRejectsBadRows(t *testing.T) {
	cases := map[string]string{
		"unequal arms": `{"sequence_id":"a","segments":[{"left_start":0,"left_end":3,"right_start":5,"right_end":7}]}`,
		"no segments":  `{"sequence_id":"a","segments":[]}`,
		"not nested":   `{"sequence_id":"a","segments":[{"left_start":0,"left_end":2,"right_start":8,"right_end":10},{"left_start":1,"left_end":3,"right_start":4,"right_end":6}]}`,
		"bad bounds":   `{"sequence_id":"a","start":1,"end":10,"segments":[{"left_start":0,"left_end":2,"right_start":8,"right_end":10}]}`,
		"missing id":   `{"segments":[{"left_start":0,"left_end":2,"right_start":8,"right_end":10}]}`,
	}
	for name, row := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Read(context.Background(), strings.NewReader("\n"+row+"\n"))
			require.Error(t, err)
			assert.ErrorIs(t, err, repeat.ErrInvariantViolation)
			assert.Contains(t, err.Error(), "line 2")
		})
	}
}

func TestReadMalformedJSON(t *testing.T) {
	_, err := Read(context.Background(), strings.NewReader("{nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestReadPathGzip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "c.jsonl.gz")
	f, err := os.Create(p)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(sample))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	recs, err := ReadPath(context.Background(), p)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestReadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Read(ctx, strings.NewReader(sample))
	assert.ErrorIs(t, err, context.Canceled)
}
