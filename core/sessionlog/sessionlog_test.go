package sessionlog

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	r := New(buf)

	require.NoError(t, r.Record(Entry{User: "alice", Dir: "/tmp", Argv: []string{"ls", "-la"}}))
	require.NoError(t, r.Record(Entry{User: "alice", Dir: "/tmp", Argv: []string{"exit"}, Builtin: true}))

	var got []Entry
	require.NoError(t, Read(buf, func(e Entry) {
		got = append(got, e)
	}))

	require.Len(t, got, 2)
	assert.Equal(t, []string{"ls", "-la"}, got[0].Argv)
	assert.False(t, got[0].Builtin)
	assert.False(t, got[0].Time.IsZero(), "time is stamped when unset")
	assert.True(t, got[1].Builtin)
}

func TestRecordKeepsExplicitTime(t *testing.T) {
	buf := &bytes.Buffer{}
	stamp := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, New(buf).Record(Entry{Time: stamp, Argv: []string{"help"}}))

	var got Entry
	require.NoError(t, Read(buf, func(e Entry) { got = e }))
	assert.True(t, stamp.Equal(got.Time))
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	assert.NoError(t, r.Record(Entry{Argv: []string{"ls"}}))
}

func TestReadRejectsGarbage(t *testing.T) {
	err := Read(strings.NewReader("{not json"), func(Entry) {})
	assert.Error(t, err)
}
