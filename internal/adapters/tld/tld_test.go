// internal/adapters/tld/tld_test.go
package tld

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"domainsearch/internal/platform/errors"
	"domainsearch/internal/platform/httpclient"
	"domainsearch/internal/testutil"
)

func ianaServer(t *testing.T, body string, hits *int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func newStore(t *testing.T, path, url string) *Store {
	logger := testutil.NewTestLogger()
	return New(path, url, httpclient.New(httpclient.DefaultConfig(), logger), logger)
}

func TestParseIANA(t *testing.T) {
	tlds, err := ParseIANA(strings.NewReader(testutil.FixtureIANAList))

	testutil.AssertNoError(t, err, "parse")
	testutil.AssertLen(t, tlds, 5, "comment and blank line skipped")
	testutil.AssertEqual(t, tlds[0], ".aaa", "lowercase with dot")
	testutil.AssertEqual(t, tlds[4], ".xn--p1ai", "punycode tld")
}

func TestParseIANA_Invalid(t *testing.T) {
	_, err := ParseIANA(strings.NewReader("COM\n<html>\n"))
	testutil.AssertTrue(t, errors.Is(err, errors.ErrInvalidResponse), "html is not a tld list")
}

func TestNew_Defaults(t *testing.T) {
	s := New("", "", nil, testutil.NewTestLogger())
	testutil.AssertEqual(t, s.Path(), DefaultPath, "default path")
	testutil.AssertEqual(t, s.url, DefaultURL, "default url")
}

func TestStore_TLDs_LocalFile(t *testing.T) {
	var hits int32
	server := ianaServer(t, testutil.FixtureIANAList, &hits)

	path := filepath.Join(t.TempDir(), "tlds.txt")
	testutil.AssertNoError(t, Save(path, testutil.FixtureTLDs), "seed file")

	tlds, err := newStore(t, path, server.URL).TLDs(context.Background())
	testutil.AssertNoError(t, err, "load")
	testutil.AssertLen(t, tlds, len(testutil.FixtureTLDs), "local list")
	testutil.AssertEqual(t, atomic.LoadInt32(&hits), int32(0), "no download when file exists")
}

func TestStore_TLDs_DownloadsWhenMissing(t *testing.T) {
	var hits int32
	server := ianaServer(t, testutil.FixtureIANAList, &hits)

	path := filepath.Join(t.TempDir(), "tlds.txt")
	store := newStore(t, path, server.URL)

	tlds, err := store.TLDs(context.Background())
	testutil.AssertNoError(t, err, "download")
	testutil.AssertLen(t, tlds, 5, "parsed list")
	testutil.AssertEqual(t, atomic.LoadInt32(&hits), int32(1), "one download")

	data, err := os.ReadFile(path)
	testutil.AssertNoError(t, err, "file saved")
	testutil.AssertEqual(t, string(data), ".aaa\n.com\n.is\n.net\n.xn--p1ai\n", "one tld per line")

	// segunda llamada usa el archivo
	_, err = store.TLDs(context.Background())
	testutil.AssertNoError(t, err, "reload")
	testutil.AssertEqual(t, atomic.LoadInt32(&hits), int32(1), "cached on disk")
}

func TestStore_Refresh_Overwrites(t *testing.T) {
	var hits int32
	server := ianaServer(t, "# header\nCOM\nNET\n", &hits)

	path := filepath.Join(t.TempDir(), "tlds.txt")
	testutil.AssertNoError(t, Save(path, testutil.FixtureTLDs), "seed file")

	tlds, err := newStore(t, path, server.URL).Refresh(context.Background())
	testutil.AssertNoError(t, err, "refresh")
	testutil.AssertLen(t, tlds, 2, "fresh list")

	loaded, err := Load(path)
	testutil.AssertNoError(t, err, "load")
	testutil.AssertLen(t, loaded, 2, "file replaced")
}

func TestStore_Refresh_Errors(t *testing.T) {
	notFound := httptest.NewServer(http.NotFoundHandler())
	defer notFound.Close()

	path := filepath.Join(t.TempDir(), "tlds.txt")
	_, err := newStore(t, path, notFound.URL).TLDs(context.Background())
	testutil.AssertError(t, err, "404 fails")

	_, statErr := os.Stat(path)
	testutil.AssertTrue(t, os.IsNotExist(statErr), "nothing written on failure")

	var hits int32
	empty := ianaServer(t, "# only comments\n", &hits)
	_, err = newStore(t, path, empty.URL).Refresh(context.Background())
	testutil.AssertTrue(t, errors.Is(err, errors.ErrInvalidResponse), "empty list rejected")
}
