// Copyright Fouinot Research, 2026. All rights reserved.

package store

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fouinot/idmp-extract/internal/catalog"
	"github.com/fouinot/idmp-extract/internal/filter"
	"github.com/fouinot/idmp-extract/internal/pipeline"
	"github.com/fouinot/idmp-extract/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.StoreConfig{DBPath: filepath.Join(t.TempDir(), "observations.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// stationFile builds a minimal station file: preamble padding followed
// by full-width data lines with every measurement column set to "v<N>".
func stationFile(datetimes ...string) io.Reader {
	var b strings.Builder
	for i := 0; i < 32; i++ {
		fmt.Fprintf(&b, "preamble line %d\n", i+1)
	}
	for _, dt := range datetimes {
		fields := make([]string, 22)
		fields[0] = dt
		fields[1] = "Q"
		for i := 2; i < len(fields); i++ {
			fields[i] = fmt.Sprintf("v%d", i)
		}
		b.WriteString(strings.Join(fields, "\t"))
		b.WriteByte('\n')
	}
	return strings.NewReader(b.String())
}

func testRequest(t *testing.T, codes ...string) pipeline.Request {
	t.Helper()
	params, err := catalog.Resolve(codes)
	require.NoError(t, err)
	return pipeline.Request{Params: params}
}

func TestIngest(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	src := stationFile("03/21/2003 12:00", "03/21/2003 13:00")
	sum, err := s.Ingest(ctx, src, testRequest(t, "dbt", "ws"))
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Matched)

	// Two records times two parameters.
	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	codes, err := s.Codes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"dbt", "ws"}, codes)
}

func TestIngestIdempotent(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := s.Ingest(ctx, stationFile("03/21/2003 12:00"), testRequest(t, "rh"))
		require.NoError(t, err)
	}

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "re-ingesting the same file must overwrite, not duplicate")
}

func TestIngestAppliesFilters(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	req := testRequest(t, "dbt")
	var err error
	req.Month, err = filter.Parse(filter.Month, "3")
	require.NoError(t, err)

	src := stationFile("03/21/2003 12:00", "04/02/2003 12:00")
	sum, err := s.Ingest(ctx, src, req)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Matched)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestIngestStoresValues(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	_, err := s.Ingest(ctx, stationFile("06/10/1998 08:00"), testRequest(t, "dbt"))
	require.NoError(t, err)

	var date, tm, code, value string
	var month, day, hour int
	row := s.db.QueryRowContext(ctx, `SELECT date, time, month, day, hour, code, value FROM observations`)
	require.NoError(t, row.Scan(&date, &tm, &month, &day, &hour, &code, &value))

	assert.Equal(t, "06/10/1998", date)
	assert.Equal(t, "08:00", tm)
	assert.Equal(t, 6, month)
	assert.Equal(t, 10, day)
	assert.Equal(t, 8, hour)
	assert.Equal(t, "dbt", code)
	assert.Equal(t, "v16", value)
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	cfg := types.StoreConfig{DBPath: filepath.Join(t.TempDir(), "nested", "dir", "obs.db")}
	s, err := Open(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}
