package iso8211_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beetlebugorg/iso8211/internal/testutil"
	"github.com/beetlebugorg/iso8211/pkg/iso8211"
)

var entries = []testutil.CatalogEntry{
	{RecordID: 1, File: "CATALOG.031", Impl: "ASC"},
	{RecordID: 2, File: "US5MA22M/US5MA22M.000", Impl: "BIN",
		SLAT: "42.2", WLON: "-71.1", NLAT: "42.4", ELON: "-70.9", CRC: "1A2B3C4D"},
	{RecordID: 3, File: "US4MA04M/US4MA04M.000", Impl: "BIN",
		SLAT: "41.5", WLON: "-71.5", NLAT: "42.5", ELON: "-70.0", CRC: "DEADBEEF"},
}

func TestOpen(t *testing.T) {
	cat, err := iso8211.Open(bytes.NewReader(testutil.CatalogFile(entries...)))
	require.NoError(t, err)
	require.Equal(t, iso8211.SchemaBuilt, cat.State())
	require.Equal(t, []string{"0001", "CATD"}, cat.Schema().Tags())

	var got []string
	for rec, err := range cat.Records() {
		require.NoError(t, err)
		catd, ok := rec.Field("CATD")
		require.True(t, ok)
		v, _ := catd.Value("FILE")
		got = append(got, v.String())
	}
	assert.Equal(t, []string{"CATALOG.031", "US5MA22M/US5MA22M.000", "US4MA04M/US4MA04M.000"}, got)
	assert.Equal(t, iso8211.Exhausted, cat.State())
}

func TestOpenWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cat, err := iso8211.Open(bytes.NewReader(testutil.CatalogFile(entries[0])), iso8211.WithLogger(logger))
	require.NoError(t, err)
	_, err = cat.Next()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"msg":"Schema compiled."`)
	assert.Contains(t, buf.String(), `"msg":"Data record decoded."`)
}

func TestOpenWithOptions(t *testing.T) {
	opts := iso8211.DefaultParseOptions()
	assert.Nil(t, opts.Logger)

	_, err := iso8211.Open(bytes.NewReader(testutil.CatalogDDR()), iso8211.WithOptions(opts))
	require.NoError(t, err)
}

func TestOpenErrorKinds(t *testing.T) {
	_, err := iso8211.Open(bytes.NewReader(nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, iso8211.CouldNotParseCatalog)
	assert.ErrorIs(t, err, iso8211.EOF)

	var perr *iso8211.Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, iso8211.CouldNotParseCatalog, perr.Kind)
}

func TestRecordErrorCarriesLast(t *testing.T) {
	data := testutil.CatalogFile(entries...)
	cat, err := iso8211.Open(bytes.NewReader(data[:len(data)-4]))
	require.NoError(t, err)

	var last *iso8211.Record
	for rec, err := range cat.Records() {
		if err != nil {
			var rerr *iso8211.RecordError
			require.ErrorAs(t, err, &rerr)
			assert.Same(t, last, rerr.Last)
			assert.Equal(t, 2, rerr.Index)
			assert.ErrorIs(t, err, iso8211.EOF)

			chain := iso8211.Chain(err)
			assert.GreaterOrEqual(t, len(chain), 3)
			break
		}
		last = rec
	}
	assert.Equal(t, iso8211.Failed, cat.State())
}

func TestSplitRecords(t *testing.T) {
	records, err := iso8211.SplitRecords(testutil.CatalogFile(entries...))
	require.NoError(t, err)
	require.Len(t, records, len(entries)+1)

	schema, err := iso8211.ParseDDR(records[0])
	require.NoError(t, err)
	assert.Equal(t, 2, schema.Len())

	rec, err := schema.DecodeRecord(records[2])
	require.NoError(t, err)
	catd, _ := rec.Field("CATD")
	slat, _ := catd.Value("SLAT")
	lat, ok := slat.Float()
	require.True(t, ok)
	assert.InDelta(t, 42.2, lat, 1e-9)
}
