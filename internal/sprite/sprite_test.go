package sprite_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/victornm/pord/internal/sprite"
)

func fakeAPI(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/pokemon/pikachu", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, `{"sprites":{"front_default":"https://img.test/pikachu.png","other":{"official-artwork":{"front_default":"https://img.test/pikachu-art.png"}}}}`)
	})
	mux.HandleFunc("/pokemon/deoxys-normal", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, `{"sprites":{"front_default":"https://img.test/deoxys.png","other":{"official-artwork":{"front_default":""}}}}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchSpriteURL(t *testing.T) {
	var hits atomic.Int64
	srv := fakeAPI(t, &hits)
	c := sprite.NewClient(sprite.WithBaseURL(srv.URL))

	url := c.FetchSpriteURL(context.Background(), "Pikachu")
	assert.Equal(t, "https://img.test/pikachu-art.png", url, "official artwork preferred")
}

func TestFetchSpriteURL_SpecialFormAndFallbackSprite(t *testing.T) {
	var hits atomic.Int64
	srv := fakeAPI(t, &hits)
	c := sprite.NewClient(sprite.WithBaseURL(srv.URL))

	url := c.FetchSpriteURL(context.Background(), "Deoxys")
	assert.Equal(t, "https://img.test/deoxys.png", url, "falls back to the plain sprite")
}

func TestFetchSpriteURL_CachesLookups(t *testing.T) {
	var hits atomic.Int64
	srv := fakeAPI(t, &hits)
	c := sprite.NewClient(sprite.WithBaseURL(srv.URL))

	for i := 0; i < 3; i++ {
		c.FetchSpriteURL(context.Background(), "Pikachu")
	}
	assert.Equal(t, int64(1), hits.Load(), "repeat lookups served from cache")
}

func TestFetchSpriteURL_UnknownPokemonIsNonFatal(t *testing.T) {
	var hits atomic.Int64
	srv := fakeAPI(t, &hits)
	c := sprite.NewClient(sprite.WithBaseURL(srv.URL))

	url := c.FetchSpriteURL(context.Background(), "Missingno")
	assert.Empty(t, url)
}
