package tlt_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tlt "github.com/zizthefox/thai-language-toolkit"
)

// fakeRomanizerBackend echoes scheme-prefixed text, with per-scheme failures.
type fakeRomanizerBackend struct {
	failing map[string]error
}

func (f *fakeRomanizerBackend) RomanizeWith(_ context.Context, text, scheme string) (string, error) {
	if err, ok := f.failing[scheme]; ok {
		return "", err
	}
	return scheme + ":" + text, nil
}

func TestRomanize(t *testing.T) {
	r := tlt.NewRomanizer(&fakeRomanizerBackend{})

	result, err := r.Romanize(context.Background(), "สวัสดี", tlt.SchemeRoyin)
	require.NoError(t, err)
	assert.Equal(t, "royin:สวัสดี", result)
}

func TestRomanizeUnsupportedScheme(t *testing.T) {
	r := tlt.NewRomanizer(&fakeRomanizerBackend{})

	_, err := r.Romanize(context.Background(), "สวัสดี", "paiboon")
	require.Error(t, err)
	assert.True(t, errors.Is(err, tlt.ErrUnsupportedScheme))

	_, err = r.RomanizeWords(context.Background(), []string{"สวัสดี"}, "")
	assert.True(t, errors.Is(err, tlt.ErrUnsupportedScheme))
}

func TestRomanizeBackendError(t *testing.T) {
	backendErr := fmt.Errorf("model not loaded")
	r := tlt.NewRomanizer(&fakeRomanizerBackend{failing: map[string]error{tlt.SchemeThai2Rom: backendErr}})

	_, err := r.Romanize(context.Background(), "สวัสดี", tlt.SchemeThai2Rom)
	require.Error(t, err)
	assert.True(t, errors.Is(err, backendErr))
}

func TestRomanizeWords(t *testing.T) {
	r := tlt.NewRomanizer(&fakeRomanizerBackend{})

	results, err := r.RomanizeWords(context.Background(), []string{"กิน", "ข้าว"}, tlt.SchemeICU)
	require.NoError(t, err)
	assert.Equal(t, []string{"icu:กิน", "icu:ข้าว"}, results)
}

func TestCompareSchemes(t *testing.T) {
	r := tlt.NewRomanizer(&fakeRomanizerBackend{})

	results := r.CompareSchemes(context.Background(), "สวัสดี")
	assert.Equal(t, "สวัสดี", results["original"])
	for _, scheme := range tlt.SupportedSchemes {
		assert.Equal(t, scheme+":สวัสดี", results[scheme])
	}
	assert.Len(t, results, len(tlt.SupportedSchemes)+1)
}

func TestCompareSchemesPartialFailure(t *testing.T) {
	// A failing scheme contributes an inline error and never aborts the rest.
	r := tlt.NewRomanizer(&fakeRomanizerBackend{
		failing: map[string]error{tlt.SchemeThai2Rom: fmt.Errorf("model not loaded")},
	})

	results := r.CompareSchemes(context.Background(), "สวัสดี")
	assert.Equal(t, "royin:สวัสดี", results[tlt.SchemeRoyin])
	assert.Equal(t, "icu:สวัสดี", results[tlt.SchemeICU])
	assert.True(t, strings.HasPrefix(results[tlt.SchemeThai2Rom], "Error: "))
	assert.Contains(t, results[tlt.SchemeThai2Rom], "model not loaded")
}
