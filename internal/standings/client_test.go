package standings

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shimbeld/bsdl/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) (*APIClient, *metrics.Mock) {
	m := metrics.NewMock()
	c := NewClient(serverURL, "BSDL-Proxy/1.0", m)
	return c, m
}

func TestFetchRawRelaysJSONBody(t *testing.T) {
	body := `[["Team","Nights Played"],["Wombles",5]]`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "BSDL-Proxy/1.0", r.Header.Get("User-Agent"))
		fmt.Fprint(w, body)
	}))
	defer server.Close()

	client, m := newTestClient(server.URL)
	got, err := client.FetchRaw(context.Background())
	require.NoError(t, err)
	assert.Equal(t, body, string(got), "body is relayed verbatim")
	assert.Equal(t, 1, m.StandingsFetchCalls)
	assert.Equal(t, 0, m.StandingsFetchFailed)
}

func TestFetchRawObjectBodyAccepted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error":"none"}`)
	}))
	defer server.Close()

	client, _ := newTestClient(server.URL)
	_, err := client.FetchRaw(context.Background())
	assert.NoError(t, err)
}

func TestFetchRawNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, m := newTestClient(server.URL)
	_, err := client.FetchRaw(context.Background())

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusServiceUnavailable, upstream.Status)
	assert.Equal(t, 1, m.StandingsFetchFailed)
}

func TestFetchRawRejectsHTML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body>Sign in</body></html>")
	}))
	defer server.Close()

	client, m := newTestClient(server.URL)
	_, err := client.FetchRaw(context.Background())

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Contains(t, upstream.Message, "non-JSON")
	assert.Equal(t, 1, m.StandingsFetchFailed)
}

func TestFetchRawConnectionRefused(t *testing.T) {
	client, m := newTestClient("http://127.0.0.1:1")
	_, err := client.FetchRaw(context.Background())

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, 0, upstream.Status)
	assert.Equal(t, 1, m.StandingsFetchFailed)
}

func TestFetchTableParsesGrid(t *testing.T) {
	body := `[
		["Team","Nights Played","Nights Won","Nights Lost","Games Won","Games Lost","Win %","Skunk W","X","Y","Skunk L"],
		["Wombles",5,4,1,30,12,"71.4%",2,"junk","junk",0],
		["Shooters",5,1,4,12,30,0.286,0,"junk","junk",1]
	]`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	defer server.Close()

	client, _ := newTestClient(server.URL)
	rows, err := client.FetchTable(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Wombles", rows[0].Team)
	assert.Equal(t, 1, rows[0].Pos)
	require.NotNil(t, rows[0].WinPercentage)
	assert.InDelta(t, 71.4, *rows[0].WinPercentage, 1e-9)
}
