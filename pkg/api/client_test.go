package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/spacepet-lab/client/pkg/logger"
	"github.com/spacepet-lab/client/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_defaultClient_FailoverResendsBody(t *testing.T) {
	var mutex sync.Mutex
	var bodies []string
	live := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		mutex.Lock()
		bodies = append(bodies, string(body))
		mutex.Unlock()

		w.Write([]byte(`{"success": true}`))
	}))
	defer live.Close()

	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead.Close()

	ctx := xcontext.WithLogger(context.Background(), logger.NewLogger("ERROR"))
	generator := NewGenerator(dead.URL, live.URL)

	// Domains are tried in random order, so enough rounds makes at least one
	// failed first attempt all but certain. Every request the live domain
	// receives must carry the full body, drained or not by a prior attempt.
	for i := 0; i < 20; i++ {
		resp, err := generator.New("/delegate").Body(JSON{"value": "1000"}).POST(ctx)
		require.NoError(t, err)
		require.True(t, resp.Success())
	}

	mutex.Lock()
	defer mutex.Unlock()
	require.Len(t, bodies, 20)
	for _, body := range bodies {
		require.JSONEq(t, `{"value": "1000"}`, body)
	}
}
